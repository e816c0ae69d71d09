package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	config, err := LoadConfig(newViper())
	if err != nil {
		t.Fatalf("missing config file should fall back to defaults, got: %v", err)
	}

	if config.LogLevel != "info" || config.Edition != 1 || config.Seed != 0 {
		t.Fatalf("unexpected defaults %+v", config)
	}

	if config.HistoryFile != ".mafia_history" {
		t.Fatalf("want default history file, got %q", config.HistoryFile)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	body := []byte(`{"log_level": "debug", "seed": 1234, "no_color": true}`)
	if err := os.WriteFile(filepath.Join(dir, "app_config.json"), body, 0o644); err != nil {
		t.Fatalf("writing config failed: %v", err)
	}

	t.Setenv("MAFIA_LOG_LEVEL", "warn")

	config, err := LoadConfig(newViper())
	if err != nil {
		t.Fatalf("loading config failed: %v", err)
	}

	if config.Seed != 1234 || !config.NoColor {
		t.Fatalf("file values not applied: %+v", config)
	}

	if config.LogLevel != "warn" {
		t.Fatalf("env should override file, want warn got %q", config.LogLevel)
	}
}

func TestGetConfig_LoadsOnce(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(func() { cfg = nil })

	cfg = nil
	t.Setenv("MAFIA_SEED", "99")

	first := GetConfig()
	if first.Seed != 99 {
		t.Fatalf("want seed 99 from env, got %d", first.Seed)
	}

	t.Setenv("MAFIA_SEED", "100")

	if second := GetConfig(); second != first {
		t.Fatalf("GetConfig should return the loaded config")
	}
}
