package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set test environment variables
	t.Setenv(FileLoggingEnvVar, "true")
	t.Setenv(SettingsPathEnvVar, " /tmp/crosshair.json ")
	t.Setenv(GlobalRightClickEnvVar, "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if !cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging to be true, got %v", cfg.EnableFileLogging)
	}
	if cfg.SettingsPath != "/tmp/crosshair.json" {
		t.Errorf("Expected SettingsPath to be '/tmp/crosshair.json', got '%s'", cfg.SettingsPath)
	}
	if cfg.GlobalRightClick {
		t.Errorf("Expected GlobalRightClick to be false, got %v", cfg.GlobalRightClick)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(FileLoggingEnvVar, "")
	t.Setenv(SettingsPathEnvVar, "")
	t.Setenv(GlobalRightClickEnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.EnableFileLogging {
		t.Error("Expected file logging disabled by default")
	}
	if cfg.SettingsPath != "" {
		t.Errorf("Expected no settings path, got '%s'", cfg.SettingsPath)
	}
	if !cfg.GlobalRightClick {
		t.Error("Expected global right click enabled by default")
	}
}

func TestLoadWithOptionsOverridesSettingsPath(t *testing.T) {
	t.Setenv(SettingsPathEnvVar, "/from/env.json")

	cfg, err := LoadWithOptions(LoadOptions{SettingsPathOverride: "/from/override.json"})
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.SettingsPath != "/from/override.json" {
		t.Errorf("Expected override path, got '%s'", cfg.SettingsPath)
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "overlay.env")
	if err := os.WriteFile(envFile, []byte("CROSSHAIR_SETTINGS=/from/dotenv.json\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv(EnvFileEnvVar, envFile)
	t.Setenv(SettingsPathEnvVar, "")
	// godotenv.Load does not override variables that are already set.
	os.Unsetenv(SettingsPathEnvVar)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.SettingsPath != "/from/dotenv.json" {
		t.Errorf("Expected SettingsPath from env file, got '%s'", cfg.SettingsPath)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"off", true, false},
		{"no", true, false},
		{"", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBool(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBool(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
