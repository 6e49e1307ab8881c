package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        string
		width, height int
	}{
		{"9:16", 1080, 1920},
		{"1:1", 1080, 1080},
		{"16:9", 1920, 1080},
	}
	for _, tt := range tests {
		cfg := Default()
		if err := cfg.ApplyPreset(tt.preset); err != nil {
			t.Fatalf("ApplyPreset(%s): %v", tt.preset, err)
		}
		if cfg.Width != tt.width || cfg.Height != tt.height {
			t.Errorf("%s: got %dx%d", tt.preset, cfg.Width, cfg.Height)
		}
	}

	cfg := Default()
	if err := cfg.ApplyPreset("4:3"); err == nil {
		t.Error("Expected error for unknown preset")
	}
	if err := cfg.ApplyPreset(""); err != nil || cfg.Width != 1080 {
		t.Errorf("Empty preset must be a no-op: %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ADREEL_FPS", "60")
	t.Setenv("ADREEL_PRESET", "16:9")
	t.Setenv("ADREEL_SEED", "42")
	t.Setenv("ADREEL_TRANSITION", "0.5")
	t.Setenv("ADREEL_LOCALE", "de")

	cfg := Default()
	if err := FromEnv(cfg, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.FPS != 60 || cfg.Width != 1920 || cfg.Seed != 42 || cfg.TransitionSeconds != 0.5 || cfg.Locale != "de" {
		t.Errorf("Env not applied: %+v", cfg)
	}
}

func TestFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("ADREEL_LIBRARY=lib/custom.yaml\nADREEL_WORKERS=3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("ADREEL_LIBRARY")
		os.Unsetenv("ADREEL_WORKERS")
	})

	cfg := Default()
	if err := FromEnv(cfg, path); err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.LibraryPath != "lib/custom.yaml" || cfg.Workers != 3 {
		t.Errorf(".env not applied: %+v", cfg)
	}
}

func TestFromEnvBadValues(t *testing.T) {
	t.Setenv("ADREEL_FPS", "fast")
	t.Setenv("ADREEL_PRESET", "21:9")

	cfg := Default()
	if err := FromEnv(cfg, filepath.Join(t.TempDir(), "none.env")); err == nil {
		t.Error("Expected error for bad values")
	}
	if cfg.FPS != 30 {
		t.Errorf("Bad value must keep the default, got %d", cfg.FPS)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}

	cfg := Default()
	cfg.FPS = 0
	cfg.Width = -1
	cfg.TransitionSeconds = -0.1
	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error")
	}
}
