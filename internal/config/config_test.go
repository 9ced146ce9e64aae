package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadReadsAllSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  port: "9090"
redis:
  addr: localhost:6379
  ttl: 5m
quiz:
  ttl: 1m
  fixtures: config/quizzes.yaml
attempt:
  ttl: 30m
cors:
  allowed_origins: ["http://localhost:3000"]
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Redis.Addr != "localhost:6379" || cfg.Quiz.Fixtures != "config/quizzes.yaml" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := TTLDuration(cfg.Attempt.TTL, time.Minute); got != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", got)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 {
		t.Fatalf("expected one origin, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadOrDefaultToleratesMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Port != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestTTLDurationFallback(t *testing.T) {
	cases := map[string]time.Duration{
		"":      time.Minute,
		"bogus": time.Minute,
		"90s":   90 * time.Second,
	}
	for raw, want := range cases {
		if got := TTLDuration(raw, time.Minute); got != want {
			t.Fatalf("TTLDuration(%q): expected %v, got %v", raw, want, got)
		}
	}
}
