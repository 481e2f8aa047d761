package config_test

import (
	"testing"

	"github.com/iho/paymentsengine/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENGINE_STRICT_DISPUTES", "")
	t.Setenv("ENGINE_FACTS_OUT", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if !cfg.StrictDisputes {
		t.Fatalf("expected strict disputes to be on by default")
	}

	if cfg.RejectLocked {
		t.Fatalf("expected locked accounts to accept instructions by default")
	}

	if cfg.FactsOut != "" {
		t.Fatalf("expected facts export to be disabled, got %q", cfg.FactsOut)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("ENGINE_STRICT_DISPUTES", "false")
	t.Setenv("ENGINE_REJECT_LOCKED", "true")
	t.Setenv("ENGINE_VERIFY", "true")
	t.Setenv("ENGINE_METRICS_OUT", "/tmp/engine.prom")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.LogLevel != "debug" || cfg.LogFormat != "console" {
		t.Fatalf("expected logging overrides, got level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}

	if cfg.StrictDisputes || !cfg.RejectLocked || !cfg.Verify {
		t.Fatalf("expected rule overrides, got %+v", cfg)
	}

	if cfg.MetricsOut != "/tmp/engine.prom" {
		t.Fatalf("expected metrics path override, got %s", cfg.MetricsOut)
	}
}

func TestLoadInvalidBool(t *testing.T) {
	t.Setenv("ENGINE_REJECT_LOCKED", "sometimes")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid bool")
	}
}
