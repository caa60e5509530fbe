package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/report"
)

func sampleDocument() *report.Document {
	return report.NewDocument([]model.HuntReport{{
		Identifier: "alice",
		Categories: map[string][]model.ProbeResult{
			"social": {{
				Platform:   "twitter",
				Identifier: "alice",
				ProfileURL: "https://twitter.com/alice",
				Status:     model.StatusFound,
			}},
			"developer": {},
		},
		CategoryOrder: []string{"social", "developer"},
	}})
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", " CSV ", "txt", "XML"} {
		if _, err := report.ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	if _, err := report.ParseFormat("yaml"); err == nil {
		t.Fatal("ParseFormat accepted an unsupported format")
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(&buf, sampleDocument(), report.FormatJSON); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var decoded report.Document
	if err := sonic.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Hunts) != 1 || decoded.Hunts[0].Identifier != "alice" {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestWriteCSVRows(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(&buf, sampleDocument(), report.FormatCSV); err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d csv lines, want header + 1 row:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "twitter") || !strings.Contains(lines[1], "FOUND") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteTXTGroupsByCategory(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(&buf, sampleDocument(), report.FormatTXT); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Identifier: alice (1 found)") {
		t.Errorf("missing summary line:\n%s", out)
	}
	if !strings.Contains(out, "Social (1 found):") {
		t.Errorf("missing category heading:\n%s", out)
	}
	// Empty categories are omitted from the text rendering.
	if strings.Contains(out, "Developer") {
		t.Errorf("empty category rendered:\n%s", out)
	}
}

func TestWriteXMLWellFormed(t *testing.T) {
	var buf bytes.Buffer
	if err := report.Write(&buf, sampleDocument(), report.FormatXML); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("missing declaration:\n%s", out)
	}
	for _, want := range []string{`identifier="alice"`, `platform="twitter"`, `status="FOUND"`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s:\n%s", want, out)
		}
	}
}
