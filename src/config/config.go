package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvFileEnvVar          = "CROSSHAIR_OVERLAY_ENV"
	SettingsPathEnvVar     = "CROSSHAIR_SETTINGS"
	GlobalRightClickEnvVar = "GLOBAL_RIGHT_CLICK"
	FileLoggingEnvVar      = "ENABLE_FILE_LOGGING"
)

type LoadOptions struct {
	SettingsPathOverride string
}

type Config struct {
	EnableFileLogging bool
	// SettingsPath, when set, names a saved crosshair settings file to start from.
	SettingsPath string
	// GlobalRightClick watches the right mouse button system-wide so the
	// hold-to-hide toggle works while the overlay is click-through.
	GlobalRightClick bool
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) .env in the application (executable) directory
	// 2) If not found, use CROSSHAIR_OVERLAY_ENV env var as a path to a config file
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		EnableFileLogging: parseBool(os.Getenv(FileLoggingEnvVar), false),
		SettingsPath:      resolveSettingsPath(opts),
		GlobalRightClick:  parseBool(os.Getenv(GlobalRightClickEnvVar), true),
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	execDir := filepath.Dir(execPath)
	exeEnv := filepath.Join(execDir, ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(EnvFileEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func resolveSettingsPath(opts LoadOptions) string {
	if override := strings.TrimSpace(opts.SettingsPathOverride); override != "" {
		return override
	}
	return strings.TrimSpace(os.Getenv(SettingsPathEnvVar))
}

func parseBool(value string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
