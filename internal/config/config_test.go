package config_test

import (
	"testing"
	"time"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.MaxWorkers != 50 {
		t.Errorf("MaxWorkers = %d", cfg.MaxWorkers)
	}
	if !cfg.VerifyTLS {
		t.Error("VerifyTLS default should be true")
	}
	if len(cfg.UserAgents) == 0 {
		t.Error("default user-agent pool is empty")
	}
	if cfg.DNSServer == "" {
		t.Error("default DNS server is empty")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GOTCHA_TIMEOUT_SECONDS", "3")
	t.Setenv("GOTCHA_MAX_WORKERS", "7")
	t.Setenv("GOTCHA_VERIFY_TLS", "false")
	t.Setenv("GOTCHA_BATCH_DELAY_MS", "250")
	t.Setenv("GOTCHA_USER_AGENTS", "agent-one, agent-two")
	t.Setenv("HUNT_INTERVAL_HOURS", "12")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.MaxWorkers != 7 {
		t.Errorf("MaxWorkers = %d", cfg.MaxWorkers)
	}
	if cfg.VerifyTLS {
		t.Error("VerifyTLS override ignored")
	}
	if cfg.BatchDelay != 250*time.Millisecond {
		t.Errorf("BatchDelay = %v", cfg.BatchDelay)
	}
	if len(cfg.UserAgents) != 2 || cfg.UserAgents[1] != "agent-two" {
		t.Errorf("UserAgents = %v", cfg.UserAgents)
	}
	if cfg.HuntIntervalHours != 12 {
		t.Errorf("HuntIntervalHours = %d", cfg.HuntIntervalHours)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"GOTCHA_TIMEOUT_SECONDS": "zero",
		"GOTCHA_MAX_WORKERS":     "-1",
		"GOTCHA_VERIFY_TLS":      "maybe",
		"GOTCHA_BATCH_DELAY_MS":  "-5",
		"HUNT_INTERVAL_HOURS":    "0",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := config.Load(); err == nil {
				t.Fatalf("%s=%q accepted", key, val)
			}
		})
	}
}

func TestRequireMonitor(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.DatabaseURL = ""
	cfg.RedisURL = "redis://localhost:6379"
	if err := cfg.RequireMonitor(); err == nil {
		t.Fatal("missing DATABASE_URL accepted")
	}
	cfg.DatabaseURL = "postgres://localhost/gotcha"
	cfg.RedisURL = ""
	if err := cfg.RequireMonitor(); err == nil {
		t.Fatal("missing REDIS_URL accepted")
	}
	cfg.RedisURL = "redis://localhost:6379"
	if err := cfg.RequireMonitor(); err != nil {
		t.Fatalf("valid monitor config rejected: %v", err)
	}
}
