// Package probe implements the per-hunt transport session and the probe
// executor that classifies platform responses.
package probe

import (
	"crypto/tls"
	"math/rand"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/config"
)

// Session owns the pooled HTTP client for one hunt invocation. It is not
// shared across hunts: connection-pool state and identity headers must not
// leak between unrelated scans.
type Session struct {
	client  *http.Client
	timeout time.Duration
}

// NewSession builds a session from the engine configuration. Connection
// limits are sized to the worker cap so the bound queues instead of
// failing.
func NewSession(cfg *config.Config) *Session {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:     &tls.Config{InsecureSkipVerify: !cfg.VerifyTLS},
		MaxIdleConns:        cfg.MaxWorkers,
		MaxIdleConnsPerHost: 2,
		MaxConnsPerHost:     cfg.MaxWorkers,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Session{
		client:  &http.Client{Transport: transport, Timeout: cfg.Timeout},
		timeout: cfg.Timeout,
	}
}

// NewSessionWithTransport builds a session over a caller-supplied
// transport. Tests use this to substitute the network.
func NewSessionWithTransport(cfg *config.Config, rt http.RoundTripper) *Session {
	return &Session{
		client:  &http.Client{Transport: rt, Timeout: cfg.Timeout},
		timeout: cfg.Timeout,
	}
}

// Timeout returns the session's default per-probe timeout.
func (s *Session) Timeout() time.Duration { return s.timeout }

// Close releases pooled connections. Safe to call on a test session whose
// transport is not an *http.Transport.
func (s *Session) Close() error {
	if t, ok := s.client.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
	return nil
}

// UserAgentPool hands out identity headers. The coordinator picks one per
// probe and passes it explicitly; the executor itself never samples
// randomness.
type UserAgentPool struct {
	mu     sync.Mutex
	agents []string
	rng    *rand.Rand
}

// NewUserAgentPool seeds a pool from the configured agents.
func NewUserAgentPool(agents []string) *UserAgentPool {
	return &UserAgentPool{
		agents: agents,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Pick returns one agent at random, or the empty string for an empty pool.
func (p *UserAgentPool) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.agents) == 0 {
		return ""
	}
	return p.agents[p.rng.Intn(len(p.agents))]
}
