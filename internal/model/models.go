// Package model defines shared data structures for the probing engine.
package model

import "fmt"

// Status is the outcome classification of a single probe.
type Status string

const (
	StatusFound          Status = "FOUND"
	StatusNotFound       Status = "NOT_FOUND"
	StatusTimeout        Status = "TIMEOUT"
	StatusTransportError Status = "TRANSPORT_ERROR"

	// StatusUnverified marks best-effort checks against platforms that
	// deliberately hide account existence (privacy-preserving password
	// resets, keyless breach lookups). It is never promoted to FOUND.
	StatusUnverified Status = "UNVERIFIED"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusFound, StatusNotFound, StatusTimeout, StatusTransportError, StatusUnverified:
		return st, nil
	}
	return "", fmt.Errorf("unknown probe status %q", s)
}

// IsFailure reports whether the status represents a probe that could not
// complete (as opposed to a definitive found / not-found answer).
func (s Status) IsFailure() bool {
	return s == StatusTimeout || s == StatusTransportError
}

// ProbeResult is the normalised outcome of checking one identifier against
// one platform. It is converted to JSON when stored in hunts.report (JSONB).
type ProbeResult struct {
	Platform       string         `json:"platform"`
	Identifier     string         `json:"identifier"`
	ProfileURL     string         `json:"profileUrl"`
	Status         Status         `json:"status"`
	HTTPStatusCode int            `json:"httpStatusCode,omitempty"`
	AdditionalInfo map[string]any `json:"additionalInfo,omitempty"`
	ErrorDetail    string         `json:"errorDetail,omitempty"`
}

// HuntReport aggregates one identifier's results across categories.
// Keys are category names; every hunted category is present, empty or not.
// Immutable once handed to a reporter.
type HuntReport struct {
	Identifier string                   `json:"identifier"`
	Categories map[string][]ProbeResult `json:"categories"`
	// CategoryOrder fixes the grouping order for serialization, independent
	// of probe completion order.
	CategoryOrder []string `json:"categoryOrder"`
}

// TotalFound counts results across all categories.
func (r HuntReport) TotalFound() int {
	n := 0
	for _, results := range r.Categories {
		n += len(results)
	}
	return n
}

// DomainInfo is the DNS/heuristic analysis of an email's domain.
type DomainInfo struct {
	Domain       string   `json:"domain"`
	MXRecords    []string `json:"mxRecords"`
	ARecords     []string `json:"aRecords"`
	NSRecords    []string `json:"nsRecords"`
	TXTRecords   []string `json:"txtRecords"`
	IsDisposable bool     `json:"isDisposable"`
	IsCorporate  bool     `json:"isCorporate"`
}

// BreachEntry is one best-effort breach-source lookup outcome.
type BreachEntry struct {
	Source string `json:"source"`
	Status Status `json:"status"`
	URL    string `json:"url,omitempty"`
	Note   string `json:"note,omitempty"`
}

// BreachReport summarises breach-indicator checks for one email.
type BreachReport struct {
	Email     string        `json:"email"`
	Entries   []BreachEntry `json:"entries"`
	RiskLevel string        `json:"riskLevel"`
}

// EmailReport bundles email-centric adjunct results.
type EmailReport struct {
	Email    string        `json:"email"`
	Accounts []ProbeResult `json:"accounts"`
	Domain   DomainInfo    `json:"domain"`
}
