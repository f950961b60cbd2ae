package config

import (
	"log/slog"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func parse(t *testing.T, vars map[string]string) AppConfig {
	t.Helper()
	var cfg AppConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg.Sanitize()
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parse(t, map[string]string{})

	if cfg.API.BaseURL != "http://localhost:3000/api" {
		t.Fatalf("unexpected base url %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.API.Timeout)
	}
	if cfg.API.UserAgent != "talenthub" {
		t.Fatalf("unexpected user agent %q", cfg.API.UserAgent)
	}
	if cfg.Session.Backend != SessionBackendFile || cfg.Session.TTL != 12*time.Hour {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
	if cfg.Redis.URI != "localhost:6379" || cfg.Redis.UseSentinel {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
	if cfg.Log.Format != "json" || cfg.Log.SlogLevel() != slog.LevelInfo {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if cfg.Metrics.IsEnabled() {
		t.Fatalf("metrics should be disabled by default")
	}
	if cfg.Bulk.Concurrency != 4 {
		t.Fatalf("unexpected bulk concurrency %d", cfg.Bulk.Concurrency)
	}
}

func TestOverrides(t *testing.T) {
	cfg := parse(t, map[string]string{
		"API_BASE_URL":         " https://talent.example.com/api/ ",
		"API_TIMEOUT":          "30s",
		"SESSION_BACKEND":      "REDIS",
		"SESSION_TTL":          "1h",
		"REDIS_URI":            "redis://cache:6379/2",
		"REDIS_DB":             "3",
		"LOG_FORMAT":           "Text",
		"LOG_LEVEL":            "debug",
		"METRICS_TEXTFILE":     "/var/lib/node_exporter/talenthub.prom",
		"BULK_CONCURRENCY":     "8",
		"REDIS_SENTINEL_NODES": "a:26379, ,b:26379",
		"REDIS_USE_SENTINEL":   "true",
	})

	if cfg.API.BaseURL != "https://talent.example.com/api" {
		t.Fatalf("base url not trimmed: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.API.Timeout)
	}
	if cfg.Session.Backend != SessionBackendRedis || cfg.Session.TTL != time.Hour {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
	if cfg.Redis.DB != 3 {
		t.Fatalf("unexpected redis db %d", cfg.Redis.DB)
	}
	if len(cfg.Redis.SentinelNodes) != 2 || !cfg.Redis.UseSentinel {
		t.Fatalf("unexpected sentinel config %+v", cfg.Redis)
	}
	if cfg.Log.Format != "text" || cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if !cfg.Metrics.IsEnabled() {
		t.Fatalf("metrics should be enabled")
	}
	if cfg.Bulk.Concurrency != 8 {
		t.Fatalf("unexpected bulk concurrency %d", cfg.Bulk.Concurrency)
	}
}

func TestSanitizeGuardrails(t *testing.T) {
	tests := []struct {
		name  string
		vars  map[string]string
		check func(AppConfig) bool
	}{
		{"timeout floor", map[string]string{"API_TIMEOUT": "10ms"}, func(c AppConfig) bool { return c.API.Timeout == time.Second }},
		{"blank base url", map[string]string{"API_BASE_URL": "  "}, func(c AppConfig) bool { return c.API.BaseURL == "http://localhost:3000/api" }},
		{"unknown backend", map[string]string{"SESSION_BACKEND": "etcd"}, func(c AppConfig) bool { return c.Session.Backend == SessionBackendFile }},
		{"zero ttl", map[string]string{"SESSION_TTL": "0s"}, func(c AppConfig) bool { return c.Session.TTL == 12*time.Hour }},
		{"bulk floor", map[string]string{"BULK_CONCURRENCY": "0"}, func(c AppConfig) bool { return c.Bulk.Concurrency == 4 }},
		{"bulk ceiling", map[string]string{"BULK_CONCURRENCY": "100"}, func(c AppConfig) bool { return c.Bulk.Concurrency == 16 }},
		{"unknown format", map[string]string{"LOG_FORMAT": "xml"}, func(c AppConfig) bool { return c.Log.Format == "json" }},
		{"unknown level", map[string]string{"LOG_LEVEL": "loud"}, func(c AppConfig) bool { return c.Log.SlogLevel() == slog.LevelInfo }},
		{"sentinel without nodes", map[string]string{"REDIS_USE_SENTINEL": "true"}, func(c AppConfig) bool { return !c.Redis.UseSentinel }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if cfg := parse(t, tt.vars); !tt.check(cfg) {
				t.Fatalf("guardrail not applied: %+v", cfg)
			}
		})
	}
}
