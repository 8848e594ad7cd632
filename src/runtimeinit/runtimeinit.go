package runtimeinit

import (
	"fmt"
	"log"

	"crosshair-overlay/src/config"
	"crosshair-overlay/src/crosshair"
)

type Options struct {
	LoadOptions  config.LoadOptions
	SetupLogging func(bool)
}

type Result struct {
	Config    *config.Config
	Crosshair crosshair.Config
}

func Bootstrap(opts Options) (*Result, error) {
	cfg, err := config.LoadWithOptions(opts.LoadOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.SetupLogging != nil {
		opts.SetupLogging(cfg.EnableFileLogging)
	}

	return &Result{Config: cfg, Crosshair: initialCrosshair(cfg.SettingsPath)}, nil
}

// initialCrosshair never fails: a missing or broken settings file falls back to defaults.
func initialCrosshair(path string) crosshair.Config {
	if path == "" {
		return crosshair.Default()
	}
	ch, err := crosshair.LoadFile(path)
	if err != nil {
		log.Printf("Settings file %s not usable, using defaults: %v", path, err)
		return crosshair.Default()
	}
	log.Printf("Loaded crosshair settings from %s", path)
	return ch
}
