package analysis_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/miekg/dns"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/analysis"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/config"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Timeout:    5 * time.Second,
		MaxWorkers: 4,
		UserAgents: []string{"test-agent"},
	}
}

// ─────────────────────────── Domain analysis ───────────────────────────

// fakeResolver scripts DNS answers per query type.
type fakeResolver struct {
	answers map[uint16][]dns.RR
	errs    map[uint16]error
}

func (f *fakeResolver) Exchange(_ context.Context, _ string, qtype uint16) ([]dns.RR, error) {
	if err := f.errs[qtype]; err != nil {
		return nil, err
	}
	return f.answers[qtype], nil
}

func mustRR(t *testing.T, s string) dns.RR {
	t.Helper()
	rr, err := dns.NewRR(s)
	if err != nil {
		t.Fatalf("NewRR(%q): %v", s, err)
	}
	return rr
}

func TestAnalyzeDomainRecords(t *testing.T) {
	r := &fakeResolver{answers: map[uint16][]dns.RR{
		dns.TypeMX:  {mustRR(t, "corp.example. 300 IN MX 10 mail.corp.example.")},
		dns.TypeA:   {mustRR(t, "corp.example. 300 IN A 192.0.2.10")},
		dns.TypeNS:  {mustRR(t, "corp.example. 300 IN NS ns1.corp.example.")},
		dns.TypeTXT: {mustRR(t, `corp.example. 300 IN TXT "v=spf1 -all"`)},
	}}

	info := analysis.AnalyzeDomain(context.Background(), r, "alice@corp.example")
	if info.Domain != "corp.example" {
		t.Fatalf("domain = %q", info.Domain)
	}
	if len(info.MXRecords) != 1 || info.MXRecords[0] != "10 mail.corp.example." {
		t.Errorf("mx = %v", info.MXRecords)
	}
	if len(info.ARecords) != 1 || info.ARecords[0] != "192.0.2.10" {
		t.Errorf("a = %v", info.ARecords)
	}
	if len(info.NSRecords) != 1 || info.NSRecords[0] != "ns1.corp.example." {
		t.Errorf("ns = %v", info.NSRecords)
	}
	if len(info.TXTRecords) != 1 || info.TXTRecords[0] != "v=spf1 -all" {
		t.Errorf("txt = %v", info.TXTRecords)
	}
	if !info.IsCorporate || info.IsDisposable {
		t.Errorf("corp.example classified disposable=%v corporate=%v", info.IsDisposable, info.IsCorporate)
	}
}

func TestAnalyzeDomainToleratesLookupFailures(t *testing.T) {
	r := &fakeResolver{errs: map[uint16]error{
		dns.TypeMX:  fmt.Errorf("SERVFAIL"),
		dns.TypeA:   fmt.Errorf("SERVFAIL"),
		dns.TypeNS:  fmt.Errorf("SERVFAIL"),
		dns.TypeTXT: fmt.Errorf("SERVFAIL"),
	}}
	info := analysis.AnalyzeDomain(context.Background(), r, "bob@gmail.com")
	if len(info.MXRecords) != 0 {
		t.Errorf("mx = %v, want empty", info.MXRecords)
	}
	if info.IsCorporate {
		t.Error("gmail.com classified as corporate")
	}
}

func TestAnalyzeDomainDisposable(t *testing.T) {
	r := &fakeResolver{}
	info := analysis.AnalyzeDomain(context.Background(), r, "x@mailinator.com")
	if !info.IsDisposable {
		t.Error("mailinator.com not flagged disposable")
	}
	if info.IsCorporate {
		t.Error("disposable domain flagged corporate")
	}
}

// ─────────────────────────── Email hunting ───────────────────────────

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestCheckGravatarFound(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.URL.Path, "/avatar/") {
			return response(200, ""), nil
		}
		return response(200, `{"entry":[{"displayName":"Alice"}]}`), nil
	})
	h := analysis.NewEmailHunterWithTransport(testConfig(), rt, discard())

	r := h.CheckGravatar(context.Background(), "alice@example.com")
	if r.Status != model.StatusFound {
		t.Fatalf("status = %s, want FOUND", r.Status)
	}
	wantHash := analysis.EmailHash("alice@example.com")
	if !strings.Contains(r.ProfileURL, wantHash) {
		t.Errorf("profile url %q missing hash", r.ProfileURL)
	}
	profile, ok := r.AdditionalInfo["profile"].(map[string]any)
	if !ok || profile["displayName"] != "Alice" {
		t.Errorf("profile info = %v", r.AdditionalInfo["profile"])
	}
}

func TestCheckGravatarNotFound(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return response(404, ""), nil
	})
	h := analysis.NewEmailHunterWithTransport(testConfig(), rt, discard())
	if r := h.CheckGravatar(context.Background(), "nobody@example.com"); r.Status != model.StatusNotFound {
		t.Fatalf("status = %s, want NOT_FOUND", r.Status)
	}
}

func TestEmailHashNormalises(t *testing.T) {
	a := analysis.EmailHash("  Alice@Example.COM ")
	b := analysis.EmailHash("alice@example.com")
	if a != b {
		t.Fatalf("hash not normalised: %s vs %s", a, b)
	}
	if len(a) != 32 {
		t.Fatalf("hash length %d, want 32", len(a))
	}
}

func TestCheckMicrosoftExists(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", req.Method)
		}
		return response(200, `{"IfExistsResult":0,"HasPassword":true}`), nil
	})
	h := analysis.NewEmailHunterWithTransport(testConfig(), rt, discard())

	r := h.CheckMicrosoft(context.Background(), "alice@example.com")
	if r.Status != model.StatusFound {
		t.Fatalf("status = %s, want FOUND", r.Status)
	}
	if r.AdditionalInfo["hasPassword"] != true {
		t.Errorf("additional info = %v", r.AdditionalInfo)
	}
}

func TestCheckMicrosoftUnknownAccount(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return response(200, `{"IfExistsResult":1}`), nil
	})
	h := analysis.NewEmailHunterWithTransport(testConfig(), rt, discard())
	if r := h.CheckMicrosoft(context.Background(), "nobody@example.com"); r.Status != model.StatusNotFound {
		t.Fatalf("status = %s, want NOT_FOUND", r.Status)
	}
}

func TestCheckOnlyFansNeverConfirms(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return response(200, `{"success":true}`), nil
	})
	h := analysis.NewEmailHunterWithTransport(testConfig(), rt, discard())

	r := h.CheckOnlyFans(context.Background(), "alice@example.com")
	if r.Status != model.StatusUnverified {
		t.Fatalf("status = %s, want UNVERIFIED: reset endpoints answer identically for any address", r.Status)
	}
	if r.AdditionalInfo["note"] == "" {
		t.Error("unverified result must carry a manual-verification note")
	}
}

func TestCheckChaturbateUnverified(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return response(200, "a reset email has been sent"), nil
	})
	h := analysis.NewEmailHunterWithTransport(testConfig(), rt, discard())
	if r := h.CheckChaturbate(context.Background(), "alice@example.com"); r.Status != model.StatusUnverified {
		t.Fatalf("status = %s, want UNVERIFIED", r.Status)
	}
}

func TestHuntAccountsCollectsHitsAndUnverified(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		switch {
		case strings.Contains(req.URL.Host, "gravatar"):
			return response(200, `{"entry":[]}`), nil
		case strings.Contains(req.URL.Host, "live.com"):
			return response(200, `{"IfExistsResult":1}`), nil
		case strings.Contains(req.URL.Host, "onlyfans"):
			return response(200, `{}`), nil
		default:
			return response(404, ""), nil
		}
	})
	h := analysis.NewEmailHunterWithTransport(testConfig(), rt, discard())

	results := h.HuntAccounts(context.Background(), "alice@example.com")
	var statuses []model.Status
	for _, r := range results {
		statuses = append(statuses, r.Status)
		if r.Status != model.StatusFound && r.Status != model.StatusUnverified {
			t.Errorf("%s: status %s leaked into hunt results", r.Platform, r.Status)
		}
	}
	if len(results) != 2 {
		t.Fatalf("got %d results (%v), want gravatar FOUND + onlyfans UNVERIFIED", len(results), statuses)
	}
}

// ─────────────────────────── Breach checking ───────────────────────────

func TestCheckHIBPWithoutKey(t *testing.T) {
	c := analysis.NewBreachCheckerWithTransport(testConfig(), roundTripFunc(func(*http.Request) (*http.Response, error) {
		t.Fatal("keyless checker must not hit the network")
		return nil, nil
	}), discard())

	e := c.CheckHIBP(context.Background(), "alice@example.com")
	if e.Status != model.StatusUnverified {
		t.Fatalf("status = %s, want UNVERIFIED", e.Status)
	}
	if e.URL == "" || e.Note == "" {
		t.Error("keyless entry must point at the manual lookup page")
	}
}

func TestCheckHIBPWithKey(t *testing.T) {
	cfg := testConfig()
	cfg.HIBPAPIKey = "test-key"
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if got := req.Header.Get("hibp-api-key"); got != "test-key" {
			t.Errorf("hibp-api-key = %q", got)
		}
		return response(200, `[{"Name":"Adobe","Title":"Adobe","BreachDate":"2013-10-04","PwnCount":152445165}]`), nil
	})
	c := analysis.NewBreachCheckerWithTransport(cfg, rt, discard())

	e := c.CheckHIBP(context.Background(), "alice@example.com")
	if e.Status != model.StatusFound {
		t.Fatalf("status = %s, want FOUND", e.Status)
	}
	if !strings.Contains(e.Note, "Adobe") {
		t.Errorf("note = %q, want breach title", e.Note)
	}
}

func TestCheckHIBPNotPwned(t *testing.T) {
	cfg := testConfig()
	cfg.HIBPAPIKey = "test-key"
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return response(404, ""), nil
	})
	c := analysis.NewBreachCheckerWithTransport(cfg, rt, discard())
	if e := c.CheckHIBP(context.Background(), "clean@example.com"); e.Status != model.StatusNotFound {
		t.Fatalf("status = %s, want NOT_FOUND", e.Status)
	}
}

func TestBreachReportRiskLevels(t *testing.T) {
	cfg := testConfig()
	cfg.HIBPAPIKey = "test-key"

	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return response(200, `[{"Title":"Adobe"}]`), nil
	})
	c := analysis.NewBreachCheckerWithTransport(cfg, rt, discard())
	report := c.Check(context.Background(), "alice@example.com")
	if report.RiskLevel != "Low" {
		t.Fatalf("risk = %s, want Low for one confirmed breach", report.RiskLevel)
	}

	// Keyless run: only unverified entries, risk unknown.
	keyless := analysis.NewBreachCheckerWithTransport(testConfig(), rt, discard())
	report = keyless.Check(context.Background(), "alice@example.com")
	if report.RiskLevel != "Unknown" {
		t.Fatalf("risk = %s, want Unknown for unverified-only entries", report.RiskLevel)
	}
}
