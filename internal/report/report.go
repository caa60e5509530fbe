// Package report serialises hunt results into the supported output
// formats.
package report

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
)

// Format names one of the supported serialisations.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
	FormatXML  Format = "xml"
)

// ParseFormat converts a raw string to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatJSON, FormatCSV, FormatTXT, FormatXML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported report format %q", s)
}

// Document is the top-level report envelope.
type Document struct {
	GeneratedAt time.Time          `json:"generatedAt"`
	Hunts       []model.HuntReport `json:"hunts"`
	Emails      []model.EmailReport `json:"emails,omitempty"`
	Breaches    []model.BreachReport `json:"breaches,omitempty"`
}

// NewDocument stamps an envelope around the given hunts.
func NewDocument(hunts []model.HuntReport) *Document {
	return &Document{GeneratedAt: time.Now().UTC(), Hunts: hunts}
}

// Write serialises the document in the given format.
func Write(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatCSV:
		return writeCSV(w, doc)
	case FormatTXT:
		return writeTXT(w, doc)
	case FormatXML:
		return writeXML(w, doc)
	}
	return fmt.Errorf("unsupported report format %q", format)
}

// Save writes the document to path, creating parent directories as needed.
func Save(path string, doc *Document, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()
	if err := Write(f, doc, format); err != nil {
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, doc *Document) error {
	raw, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = w.Write(raw)
	return err
}

func writeCSV(w io.Writer, doc *Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"identifier", "category", "platform", "status", "url"}); err != nil {
		return err
	}
	for _, h := range doc.Hunts {
		for _, cat := range h.CategoryOrder {
			for _, r := range h.Categories[cat] {
				if err := cw.Write([]string{r.Identifier, cat, r.Platform, string(r.Status), r.ProfileURL}); err != nil {
					return err
				}
			}
		}
	}
	for _, e := range doc.Emails {
		for _, r := range e.Accounts {
			if err := cw.Write([]string{r.Identifier, "email", r.Platform, string(r.Status), r.ProfileURL}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeTXT(w io.Writer, doc *Document) error {
	var b strings.Builder
	b.WriteString("GOTCHA! OSINT REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "Generated: %s\n", doc.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Targets: %d\n\n", len(doc.Hunts)+len(doc.Emails))

	for _, h := range doc.Hunts {
		fmt.Fprintf(&b, "Identifier: %s (%d found)\n", h.Identifier, h.TotalFound())
		b.WriteString(strings.Repeat("-", 20) + "\n")
		for _, cat := range h.CategoryOrder {
			results := h.Categories[cat]
			if len(results) == 0 {
				continue
			}
			fmt.Fprintf(&b, "%s (%d found):\n", titleCase(cat), len(results))
			for _, r := range results {
				fmt.Fprintf(&b, "  [%s] %s: %s\n", r.Status, r.Platform, r.ProfileURL)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for _, e := range doc.Emails {
		fmt.Fprintf(&b, "Email: %s\n", e.Email)
		b.WriteString(strings.Repeat("-", 20) + "\n")
		for _, r := range e.Accounts {
			fmt.Fprintf(&b, "  [%s] %s\n", r.Status, r.Platform)
		}
		if e.Domain.Domain != "" {
			fmt.Fprintf(&b, "  Domain: %s (corporate=%v disposable=%v)\n",
				e.Domain.Domain, e.Domain.IsCorporate, e.Domain.IsDisposable)
		}
		b.WriteString("\n")
	}

	for _, br := range doc.Breaches {
		fmt.Fprintf(&b, "Breach exposure for %s: %s\n", br.Email, br.RiskLevel)
		for _, entry := range br.Entries {
			fmt.Fprintf(&b, "  [%s] %s", entry.Status, entry.Source)
			if entry.Note != "" {
				fmt.Fprintf(&b, " — %s", entry.Note)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// XML mirror types. Categories become repeated elements so the fixed order
// survives serialisation.

type xmlProfile struct {
	Platform string `xml:"platform,attr"`
	Status   string `xml:"status,attr"`
	URL      string `xml:"url,attr"`
}

type xmlCategory struct {
	Name     string       `xml:"name,attr"`
	Profiles []xmlProfile `xml:"profile"`
}

type xmlTarget struct {
	Identifier string        `xml:"identifier,attr"`
	Found      int           `xml:"found,attr"`
	Categories []xmlCategory `xml:"category"`
}

type xmlReport struct {
	XMLName     xml.Name    `xml:"gotcha_report"`
	GeneratedAt string      `xml:"timestamp,attr"`
	Targets     []xmlTarget `xml:"target"`
}

func writeXML(w io.Writer, doc *Document) error {
	out := xmlReport{GeneratedAt: doc.GeneratedAt.Format(time.RFC3339)}
	for _, h := range doc.Hunts {
		target := xmlTarget{Identifier: h.Identifier, Found: h.TotalFound()}
		for _, cat := range h.CategoryOrder {
			xc := xmlCategory{Name: cat}
			for _, r := range h.Categories[cat] {
				xc.Profiles = append(xc.Profiles, xmlProfile{
					Platform: r.Platform,
					Status:   string(r.Status),
					URL:      r.ProfileURL,
				})
			}
			target.Categories = append(target.Categories, xc)
		}
		out.Targets = append(out.Targets, target)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode xml report: %w", err)
	}
	return enc.Close()
}
