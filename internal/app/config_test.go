package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "fieldbox.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Window.Width != 900 || cfg.Window.Height != 560 {
		t.Fatalf("unexpected default window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Input.RepeatInitialMs != 400 || cfg.Input.RepeatIntervalMs != 100 {
		t.Fatalf("unexpected default repeat timings %d/%d", cfg.Input.RepeatInitialMs, cfg.Input.RepeatIntervalMs)
	}
	if !cfg.Sound {
		t.Fatal("sound should default to enabled")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldbox.toml")
	doc := `
sound = false

[window]
title = "Custom"
width = 1280
height = 720

[input]
repeat_initial_ms = 250
history_depth = 10
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.Title != "Custom" || cfg.Window.Width != 1280 {
		t.Fatalf("window overrides not applied: %+v", cfg.Window)
	}
	if cfg.Input.RepeatInitialMs != 250 {
		t.Fatalf("repeat_initial_ms override not applied: %d", cfg.Input.RepeatInitialMs)
	}
	// Unset keys keep their defaults.
	if cfg.Input.RepeatIntervalMs != 100 || cfg.Input.MaxWidthChars != 24 {
		t.Fatalf("defaults lost for unset keys: %+v", cfg.Input)
	}
	if cfg.Sound {
		t.Fatal("sound override not applied")
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldbox.toml")
	if err := os.WriteFile(path, []byte("[window]\nwidth = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("negative window width should be rejected")
	}

	if err := os.WriteFile(path, []byte("not toml ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed toml should be rejected")
	}
}
