package analysis

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/config"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/probe"
)

// resetCheckTimeout caps the slower password-reset endpoints, which hang
// rather than refuse when they dislike automated traffic.
const resetCheckTimeout = 5 * time.Second

// EmailHunter runs the email-based account checks. Platforms that answer
// password resets identically for any address yield UNVERIFIED results,
// never FOUND.
type EmailHunter struct {
	client  *http.Client
	agents  *probe.UserAgentPool
	timeout time.Duration
	logger  *slog.Logger
}

// NewEmailHunter builds a hunter over the engine configuration.
func NewEmailHunter(cfg *config.Config, logger *slog.Logger) *EmailHunter {
	return newEmailHunter(cfg, http.DefaultTransport, logger)
}

// NewEmailHunterWithTransport is NewEmailHunter with the network replaced
// by rt. Tests use it.
func NewEmailHunterWithTransport(cfg *config.Config, rt http.RoundTripper, logger *slog.Logger) *EmailHunter {
	return newEmailHunter(cfg, rt, logger)
}

func newEmailHunter(cfg *config.Config, rt http.RoundTripper, logger *slog.Logger) *EmailHunter {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailHunter{
		client:  &http.Client{Transport: rt, Timeout: cfg.Timeout},
		agents:  probe.NewUserAgentPool(cfg.UserAgents),
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// EmailHash returns the lowercase MD5 digest Gravatar keys avatars on.
func EmailHash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

// HuntAccounts runs every email-based platform check and returns the
// results that indicate a possible account, confirmed or unverified.
func (h *EmailHunter) HuntAccounts(ctx context.Context, email string) []model.ProbeResult {
	h.logger.Info("hunting email accounts", "email", email)

	checks := []func(context.Context, string) model.ProbeResult{
		h.CheckGravatar,
		h.CheckMicrosoft,
		h.CheckAdobe,
		h.CheckOnlyFans,
		h.CheckChaturbate,
	}
	var results []model.ProbeResult
	for _, check := range checks {
		r := check(ctx, email)
		if r.Status == model.StatusFound || r.Status == model.StatusUnverified {
			results = append(results, r)
		}
	}
	return results
}

// CheckGravatar probes the avatar endpoint with the forced-404 default.
// A 200 means the hash has an avatar; the public profile document, when
// available, is folded into AdditionalInfo.
func (h *EmailHunter) CheckGravatar(ctx context.Context, email string) model.ProbeResult {
	hash := EmailHash(email)
	result := model.ProbeResult{
		Platform:   "gravatar",
		Identifier: email,
		ProfileURL: "https://www.gravatar.com/" + hash,
		Status:     model.StatusNotFound,
	}

	avatarURL := fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=404", hash)
	status, _, err := h.get(ctx, avatarURL, h.timeout)
	if err != nil {
		result.Status, result.ErrorDetail = failureStatus(err)
		return result
	}
	result.HTTPStatusCode = status
	if status != http.StatusOK {
		return result
	}
	result.Status = model.StatusFound
	result.AdditionalInfo = map[string]any{
		"avatarUrl": "https://www.gravatar.com/avatar/" + hash,
	}

	// Profile document is optional extra context.
	profileStatus, body, err := h.get(ctx, fmt.Sprintf("https://www.gravatar.com/%s.json", hash), h.timeout)
	if err != nil || profileStatus != http.StatusOK {
		return result
	}
	var doc struct {
		Entry []map[string]any `json:"entry"`
	}
	if err := sonic.Unmarshal(body, &doc); err == nil && len(doc.Entry) > 0 {
		result.AdditionalInfo["profile"] = doc.Entry[0]
	}
	return result
}

// CheckMicrosoft asks the credential-type endpoint whether the address maps
// to a Microsoft account. IfExistsResult zero is a confirmed account.
func (h *EmailHunter) CheckMicrosoft(ctx context.Context, email string) model.ProbeResult {
	result := model.ProbeResult{
		Platform:   "microsoft",
		Identifier: email,
		ProfileURL: "https://login.live.com",
		Status:     model.StatusNotFound,
	}

	payload, err := sonic.Marshal(map[string]any{
		"username":             email,
		"uaid":                 "11111111-1111-1111-1111-111111111111",
		"isOtherIdpSupported":  true,
		"checkPhones":          true,
		"isRemoteNGCSupported": true,
		"isCookieBannerShown":  false,
		"isFidoSupported":      false,
	})
	if err != nil {
		result.Status, result.ErrorDetail = model.StatusTransportError, err.Error()
		return result
	}

	status, body, err := h.post(ctx, "https://login.live.com/GetCredentialType.srf", "application/json", payload, h.timeout)
	if err != nil {
		result.Status, result.ErrorDetail = failureStatus(err)
		return result
	}
	result.HTTPStatusCode = status
	if status != http.StatusOK {
		return result
	}

	var resp struct {
		IfExistsResult int  `json:"IfExistsResult"`
		HasPassword    bool `json:"HasPassword"`
	}
	if err := sonic.Unmarshal(body, &resp); err != nil {
		result.Status, result.ErrorDetail = model.StatusTransportError, err.Error()
		return result
	}
	if resp.IfExistsResult == 0 {
		result.Status = model.StatusFound
		result.AdditionalInfo = map[string]any{
			"accountType": "Microsoft Account",
			"hasPassword": resp.HasPassword,
		}
	}
	return result
}

// CheckAdobe submits the password-reset form and looks for reset-flow
// indicators in the response.
func (h *EmailHunter) CheckAdobe(ctx context.Context, email string) model.ProbeResult {
	result := model.ProbeResult{
		Platform:   "adobe",
		Identifier: email,
		ProfileURL: "https://accounts.adobe.com",
		Status:     model.StatusNotFound,
	}

	form := url.Values{"username": {email}}
	status, body, err := h.post(ctx, "https://accounts.adobe.com/reactivate/password",
		"application/x-www-form-urlencoded", []byte(form.Encode()), resetCheckTimeout)
	if err != nil {
		result.Status, result.ErrorDetail = failureStatus(err)
		return result
	}
	result.HTTPStatusCode = status

	lower := strings.ToLower(string(body))
	for _, indicator := range []string{"password reset", "check your email", "reset link"} {
		if strings.Contains(lower, indicator) {
			result.Status = model.StatusFound
			result.AdditionalInfo = map[string]any{"accountType": "Adobe Account"}
			break
		}
	}
	return result
}

// CheckOnlyFans submits the reset endpoint. The platform answers the same
// for any address, so a successful submission is only ever UNVERIFIED.
func (h *EmailHunter) CheckOnlyFans(ctx context.Context, email string) model.ProbeResult {
	result := model.ProbeResult{
		Platform:   "onlyfans",
		Identifier: email,
		ProfileURL: "https://onlyfans.com",
		Status:     model.StatusNotFound,
	}

	payload, _ := sonic.Marshal(map[string]string{"email": email})
	status, _, err := h.post(ctx, "https://onlyfans.com/api2/v2/users/password/reset",
		"application/json", payload, resetCheckTimeout)
	if err != nil {
		result.Status, result.ErrorDetail = failureStatus(err)
		return result
	}
	result.HTTPStatusCode = status
	if status == http.StatusOK {
		// Privacy-preserving endpoint: success does not confirm existence.
		result.Status = model.StatusUnverified
		result.AdditionalInfo = map[string]any{
			"note": "Password reset accepted for any address; manual verification recommended",
		}
	}
	return result
}

// CheckChaturbate submits the reset form; like OnlyFans the response does
// not distinguish existing from unknown addresses.
func (h *EmailHunter) CheckChaturbate(ctx context.Context, email string) model.ProbeResult {
	result := model.ProbeResult{
		Platform:   "chaturbate",
		Identifier: email,
		ProfileURL: "https://chaturbate.com",
		Status:     model.StatusNotFound,
	}

	form := url.Values{"email": {email}}
	status, body, err := h.post(ctx, "https://chaturbate.com/auth/password_reset/",
		"application/x-www-form-urlencoded", []byte(form.Encode()), resetCheckTimeout)
	if err != nil {
		result.Status, result.ErrorDetail = failureStatus(err)
		return result
	}
	result.HTTPStatusCode = status

	lower := strings.ToLower(string(body))
	for _, indicator := range []string{"reset", "email", "sent"} {
		if strings.Contains(lower, indicator) {
			result.Status = model.StatusUnverified
			result.AdditionalInfo = map[string]any{
				"note": "Reset form accepted; response does not confirm the account exists",
			}
			break
		}
	}
	return result
}

// ─────────────────────────── HTTP helpers ───────────────────────────

func (h *EmailHunter) get(ctx context.Context, rawURL string, timeout time.Duration) (int, []byte, error) {
	return h.do(ctx, http.MethodGet, rawURL, "", nil, timeout)
}

func (h *EmailHunter) post(ctx context.Context, rawURL, contentType string, body []byte, timeout time.Duration) (int, []byte, error) {
	return h.do(ctx, http.MethodPost, rawURL, contentType, body, timeout)
}

func (h *EmailHunter) do(ctx context.Context, method, rawURL, contentType string, body []byte, timeout time.Duration) (int, []byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, rawURL, reader)
	if err != nil {
		return 0, nil, err
	}
	if ua := h.agents.Pick(); ua != "" {
		req.Header.Set("User-Agent", ua)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}

// failureStatus maps a transport failure to the probe taxonomy.
func failureStatus(err error) (model.Status, string) {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return model.StatusTimeout, "Timeout"
	}
	return model.StatusTransportError, err.Error()
}
