package probe

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/catalog"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
)

// maxBodyBytes caps how much of a profile page is read for indicator
// matching. Real not-found markers sit well inside this window.
const maxBodyBytes = 2 << 20 // 2 MiB

// Execute probes one platform for one identifier and classifies the
// response. It never returns an error: timeouts and transport failures are
// folded into the result so one bad platform cannot abort a batch.
//
// userAgent is pre-selected by the caller; timeoutOverride of 0 keeps the
// session default.
func Execute(ctx context.Context, s *Session, identifier string, def catalog.Definition, userAgent string, timeoutOverride time.Duration) model.ProbeResult {
	result := model.ProbeResult{
		Platform:   def.Name,
		Identifier: identifier,
		ProfileURL: def.ProfileURL(identifier),
		Status:     model.StatusNotFound,
	}

	timeout := s.Timeout()
	if timeoutOverride > 0 {
		timeout = timeoutOverride
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, result.ProfileURL, nil)
	if err != nil {
		result.Status = model.StatusTransportError
		result.ErrorDetail = err.Error()
		return result
	}
	setBrowserHeaders(req, userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		result.Status, result.ErrorDetail = classifyTransportError(err)
		return result
	}
	defer resp.Body.Close()

	result.HTTPStatusCode = resp.StatusCode

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := readBody(resp)
		if err != nil {
			result.Status, result.ErrorDetail = classifyTransportError(err)
			return result
		}
		result.Status = Classify(body, resp.StatusCode, def.PositiveIndicators, def.NegativeIndicators)
	case resp.StatusCode == http.StatusNotFound:
		// Definitive absence; the body is never inspected.
		result.Status = model.StatusNotFound
	default:
		// Ambiguous responses are not treated as hits.
		result.Status = model.StatusNotFound
	}

	return result
}

// Classify applies the indicator rule to a 200 body: found iff at least
// one positive indicator matches and no negative indicator matches, all
// case-insensitive. Negative indicators always win. Non-200 codes never
// classify as found.
func Classify(body string, statusCode int, positive, negative []string) model.Status {
	if statusCode != http.StatusOK {
		return model.StatusNotFound
	}
	lower := strings.ToLower(body)
	if containsAny(lower, negative) {
		return model.StatusNotFound
	}
	if containsAny(lower, positive) {
		return model.StatusFound
	}
	return model.StatusNotFound
}

func containsAny(lowerBody string, indicators []string) bool {
	for _, ind := range indicators {
		if ind == "" {
			continue
		}
		if strings.Contains(lowerBody, strings.ToLower(ind)) {
			return true
		}
	}
	return false
}

func readBody(resp *http.Response) (string, error) {
	reader, err := decodeBody(resp)
	if err != nil {
		return "", err
	}
	defer reader.Close()
	raw, err := io.ReadAll(io.LimitReader(reader, maxBodyBytes))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// classifyTransportError maps a request failure onto the probe taxonomy.
// Deadline expiry — from the per-probe context or the client timeout — is
// a Timeout; everything else (DNS, refused connection, TLS) is a
// TransportError.
func classifyTransportError(err error) (model.Status, string) {
	var netErr net.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, os.ErrDeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())
	if timedOut {
		return model.StatusTimeout, "Timeout"
	}
	return model.StatusTransportError, err.Error()
}

// setBrowserHeaders applies the rotating identity plus the static browser
// headers platforms expect.
func setBrowserHeaders(req *http.Request, userAgent string) {
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}
