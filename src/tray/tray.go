package tray

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

type Config struct {
	Title          string
	OnShowSettings func()
}

// Install adds the tray menu when the driver supports one. fyne appends its
// own Quit item. It reports whether a tray was installed.
func Install(app fyne.App, cfg Config) bool {
	desk, ok := app.(desktop.App)
	if !ok {
		log.Printf("Tray: system tray not supported by this driver")
		return false
	}
	desk.SetSystemTrayMenu(newMenu(cfg))
	desk.SetSystemTrayIcon(Icon)
	return true
}

func newMenu(cfg Config) *fyne.Menu {
	title := cfg.Title
	if title == "" {
		title = "Crosshair Overlay"
	}
	settings := fyne.NewMenuItem("Settings", func() {
		if cfg.OnShowSettings != nil {
			cfg.OnShowSettings()
		}
	})
	return fyne.NewMenu(title, settings)
}
