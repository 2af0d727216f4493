package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
	if cfg.CreateRateBurst != 5 {
		t.Errorf("expected default burst 5, got %d", cfg.CreateRateBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9999 || cfg.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("expected UTC location, got %v, %v", loc, err)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "not-an-int")
		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "parse env:") {
			t.Fatalf("expected parse env error, got %v", err)
		}
	})

	t.Run("bad timezone", func(t *testing.T) {
		t.Setenv("TIMEZONE", "Mars/Olympus")
		if _, err := Load(); err == nil {
			t.Fatal("expected timezone error")
		}
	})
}
