package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/config"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/probe"
)

// BreachChecker looks an email up in breach-indicator sources. Sources that
// need credentials the operator has not supplied degrade to UNVERIFIED
// entries pointing at the manual lookup page.
type BreachChecker struct {
	client *http.Client
	agents *probe.UserAgentPool
	apiKey string
	logger *slog.Logger
}

// NewBreachChecker builds a checker; cfg.HIBPAPIKey, when set, enables
// authenticated Have I Been Pwned lookups.
func NewBreachChecker(cfg *config.Config, logger *slog.Logger) *BreachChecker {
	return newBreachChecker(cfg, http.DefaultTransport, logger)
}

// NewBreachCheckerWithTransport is NewBreachChecker with the network
// replaced by rt. Tests use it.
func NewBreachCheckerWithTransport(cfg *config.Config, rt http.RoundTripper, logger *slog.Logger) *BreachChecker {
	return newBreachChecker(cfg, rt, logger)
}

func newBreachChecker(cfg *config.Config, rt http.RoundTripper, logger *slog.Logger) *BreachChecker {
	if logger == nil {
		logger = slog.Default()
	}
	return &BreachChecker{
		client: &http.Client{Transport: rt, Timeout: cfg.Timeout},
		agents: probe.NewUserAgentPool(cfg.UserAgents),
		apiKey: cfg.HIBPAPIKey,
		logger: logger,
	}
}

// hibpBreach is the subset of the HIBP v3 breach document the report uses.
type hibpBreach struct {
	Name       string `json:"Name"`
	Title      string `json:"Title"`
	BreachDate string `json:"BreachDate"`
	PwnCount   int    `json:"PwnCount"`
}

// CheckHIBP queries Have I Been Pwned. Without an API key the v3 account
// endpoint rejects the request, so the entry degrades to a manual pointer.
func (c *BreachChecker) CheckHIBP(ctx context.Context, email string) model.BreachEntry {
	manualURL := "https://haveibeenpwned.com/account/" + url.PathEscape(email)
	if c.apiKey == "" {
		return model.BreachEntry{
			Source: "Have I Been Pwned",
			Status: model.StatusUnverified,
			URL:    manualURL,
			Note:   "Automated lookup requires an API key; check manually",
		}
	}

	apiURL := "https://haveibeenpwned.com/api/v3/breachedaccount/" +
		url.PathEscape(email) + "?truncateResponse=false"
	reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, apiURL, nil)
	if err != nil {
		return model.BreachEntry{Source: "Have I Been Pwned", Status: model.StatusTransportError, Note: err.Error()}
	}
	req.Header.Set("hibp-api-key", c.apiKey)
	if ua := c.agents.Pick(); ua != "" {
		req.Header.Set("User-Agent", ua)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		status, note := failureStatus(err)
		return model.BreachEntry{Source: "Have I Been Pwned", Status: status, Note: note}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var breaches []hibpBreach
		if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&breaches); err != nil {
			return model.BreachEntry{Source: "Have I Been Pwned", Status: model.StatusTransportError, Note: err.Error()}
		}
		names := make([]string, 0, len(breaches))
		for _, b := range breaches {
			names = append(names, b.Title)
		}
		return model.BreachEntry{
			Source: "Have I Been Pwned",
			Status: model.StatusFound,
			URL:    manualURL,
			Note:   fmt.Sprintf("%d breaches: %s", len(breaches), strings.Join(names, ", ")),
		}
	case http.StatusNotFound:
		return model.BreachEntry{Source: "Have I Been Pwned", Status: model.StatusNotFound, URL: manualURL}
	default:
		return model.BreachEntry{
			Source: "Have I Been Pwned",
			Status: model.StatusUnverified,
			URL:    manualURL,
			Note:   fmt.Sprintf("Unexpected HTTP %d; check manually", resp.StatusCode),
		}
	}
}

// CheckBreachDirectory has no keyless API; the entry always points at the
// manual search page.
func (c *BreachChecker) CheckBreachDirectory(_ context.Context, email string) model.BreachEntry {
	return model.BreachEntry{
		Source: "Breach Directory",
		Status: model.StatusUnverified,
		URL:    "https://breachdirectory.org/",
		Note:   "Manual check required for " + email,
	}
}

// Check runs every breach source and grades overall exposure.
func (c *BreachChecker) Check(ctx context.Context, email string) model.BreachReport {
	c.logger.Info("checking breach sources", "email", email)

	report := model.BreachReport{
		Email: email,
		Entries: []model.BreachEntry{
			c.CheckHIBP(ctx, email),
			c.CheckBreachDirectory(ctx, email),
		},
	}
	report.RiskLevel = riskLevel(report.Entries)
	return report
}

// riskLevel grades exposure from confirmed hits. Unverified-only results
// stay Unknown rather than pretending the address is clean.
func riskLevel(entries []model.BreachEntry) string {
	found, unverified := 0, 0
	for _, e := range entries {
		switch e.Status {
		case model.StatusFound:
			found++
		case model.StatusUnverified:
			unverified++
		}
	}
	switch {
	case found >= 5:
		return "High"
	case found >= 2:
		return "Medium"
	case found >= 1:
		return "Low"
	case unverified > 0:
		return "Unknown"
	default:
		return "Clean"
	}
}
