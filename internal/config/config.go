// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is malformed, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// defaultUserAgents is the built-in identity-header pool, rotated per probe.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:89.0) Gecko/20100101 Firefox/89.0",
}

// Config holds all runtime configuration for the probing engine and the
// monitor service.
type Config struct {
	Timeout    time.Duration // total per-probe HTTP timeout
	MaxWorkers int           // concurrent in-flight probe cap
	VerifyTLS  bool
	BatchDelay time.Duration // pause between successive identifier batches
	UserAgents []string
	DNSServer  string // host:port of the resolver used by domain analysis

	HIBPAPIKey string // optional; enables real HIBP lookups

	// Monitor service only.
	Port              string
	DatabaseURL       string
	RedisURL          string
	HuntIntervalHours int
}

// Load reads environment variables and returns a validated Config.
// DATABASE_URL and REDIS_URL are only required by the monitor service;
// callers that need them check explicitly.
func Load() (*Config, error) {
	cfg := &Config{
		Timeout:           10 * time.Second,
		MaxWorkers:        50,
		VerifyTLS:         true,
		BatchDelay:        100 * time.Millisecond,
		UserAgents:        defaultUserAgents,
		DNSServer:         "8.8.8.8:53",
		HIBPAPIKey:        os.Getenv("HIBP_API_KEY"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		HuntIntervalHours: 6,
		Port:              "8082",
	}

	if s := os.Getenv("GOTCHA_TIMEOUT_SECONDS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("GOTCHA_TIMEOUT_SECONDS must be a positive integer, got %q", s)
		}
		cfg.Timeout = time.Duration(v) * time.Second
	}

	if s := os.Getenv("GOTCHA_MAX_WORKERS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("GOTCHA_MAX_WORKERS must be a positive integer, got %q", s)
		}
		cfg.MaxWorkers = v
	}

	if s := os.Getenv("GOTCHA_VERIFY_TLS"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("GOTCHA_VERIFY_TLS must be a boolean, got %q", s)
		}
		cfg.VerifyTLS = v
	}

	if s := os.Getenv("GOTCHA_BATCH_DELAY_MS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("GOTCHA_BATCH_DELAY_MS must be a non-negative integer, got %q", s)
		}
		cfg.BatchDelay = time.Duration(v) * time.Millisecond
	}

	if s := os.Getenv("GOTCHA_USER_AGENTS"); s != "" {
		var pool []string
		for _, ua := range strings.Split(s, ",") {
			if ua = strings.TrimSpace(ua); ua != "" {
				pool = append(pool, ua)
			}
		}
		if len(pool) == 0 {
			return nil, fmt.Errorf("GOTCHA_USER_AGENTS is set but contains no usable entries")
		}
		cfg.UserAgents = pool
	}

	if s := os.Getenv("GOTCHA_DNS_SERVER"); s != "" {
		cfg.DNSServer = s
	}

	if s := os.Getenv("HUNT_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("HUNT_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		cfg.HuntIntervalHours = v
	}

	if s := os.Getenv("HUNTD_PORT"); s != "" {
		cfg.Port = s
	}

	return cfg, nil
}

// RequireMonitor validates the variables the monitor service cannot run
// without.
func (c *Config) RequireMonitor() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}
	return nil
}
