package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crosshair-overlay/src/clickthrough"
	"crosshair-overlay/src/clipboard"
	"crosshair-overlay/src/config"
	"crosshair-overlay/src/crosshair"
	"crosshair-overlay/src/display"
	"crosshair-overlay/src/logutil"
	"crosshair-overlay/src/mousehook"
	"crosshair-overlay/src/notification"
	"crosshair-overlay/src/overlay"
	"crosshair-overlay/src/runtimeinit"
	"crosshair-overlay/src/settings"
	"crosshair-overlay/src/singleinstance"
	"crosshair-overlay/src/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	appID   = "io.github.crosshair-overlay"
	appName = "Crosshair Overlay"
)

func main() {
	// Ensure DPI awareness before creating any windows or querying metrics
	enableDPIAwareness()

	settingsPath := flag.String("settings", "", "Crosshair settings file to start from (overrides CROSSHAIR_SETTINGS)")
	flag.Parse()

	boot, err := runtimeinit.Bootstrap(runtimeinit.Options{
		LoadOptions:  config.LoadOptions{SettingsPathOverride: *settingsPath},
		SetupLogging: setupLogging,
	})
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}
	logMonitorConfiguration()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---------- SINGLE INSTANCE ----------
	server := singleinstance.NewServer()
	if err := server.Start(ctx); err != nil {
		if delegateToResident(ctx, singleinstance.NewClient()) {
			fmt.Println("crosshair overlay is already running; showing its settings")
			return
		}
		log.Printf("Single instance port busy but no resident answered; continuing without it")
		server = nil
	} else {
		defer server.Close()
	}
	// -------------------------------------

	bounds, err := display.PrimaryBounds()
	if err != nil {
		notification.ShowBlockingError(appName, fmt.Sprintf("No display available: %v", err))
		os.Exit(1)
	}
	log.Printf("Crosshair overlay initialized on %v", bounds)

	ov := overlay.New(bounds.Dx(), bounds.Dy(), boot.Crosshair)
	windowDone := make(chan struct{})
	go func() {
		defer close(windowDone)
		runOverlayWindow(ctx, ov, bounds)
	}()

	if boot.Config.GlobalRightClick {
		mousehook.Listen(ctx, mousehook.Handlers{
			OnPress:   ov.PressSecondary,
			OnRelease: ov.ReleaseSecondary,
		})
	}

	a := app.NewWithID(appID)
	a.SetIcon(tray.Icon)
	panel := settings.New(a, ov, settings.Options{CopySettings: clipboardCopier()})
	panel.Window().SetMaster()
	tray.Install(a, tray.Config{Title: appName, OnShowSettings: panel.Show})

	if server != nil {
		go serveShowRequests(ctx, server, func() { fyne.Do(panel.Show) })
	}

	// Handle SIGINT/SIGTERM
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-ch:
			log.Printf("Signal received, quitting")
			fyne.Do(a.Quit)
		case <-ctx.Done():
		}
	}()

	panel.Show()
	a.Run()

	cancel()
	select {
	case <-windowDone:
	case <-time.After(2 * time.Second):
		log.Printf("Overlay window did not close in time")
	}
	log.Printf("Crosshair overlay exited")
}

func setupLogging(enableFileLogging bool) {
	logutil.Setup(enableFileLogging)
}

func windowOptions(bounds image.Rectangle) overlay.WindowOptions {
	return overlay.WindowOptions{
		Bounds:       bounds,
		ClickThrough: clickthrough.New(),
		Title:        appName,
	}
}

func runOverlayWindow(ctx context.Context, ov *overlay.Overlay, bounds image.Rectangle) {
	err := overlay.RunWindow(ctx, ov, windowOptions(bounds))
	switch {
	case errors.Is(err, overlay.ErrUnsupported):
		log.Printf("Overlay window unavailable on this platform; settings panel only")
	case err != nil:
		log.Printf("Overlay window stopped: %v", err)
	}
}

// clipboardCopier returns nil when the clipboard cannot be used, which hides the copy button.
func clipboardCopier() func(crosshair.Config) error {
	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
		return nil
	}
	return clipboard.WriteSettings
}

type showClient interface {
	TryShow(ctx context.Context) (bool, error)
}

// delegateToResident asks an already running overlay to raise its settings.
// It reports whether this process should exit.
func delegateToResident(ctx context.Context, client showClient) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	delegated, err := client.TryShow(ctx)
	if err != nil {
		log.Printf("Delegation error: %v", err)
		// A resident answered PING, so a second overlay must not start.
		return delegated
	}
	if delegated {
		log.Printf("Delegated to resident")
	}
	return delegated
}

type requestSource interface {
	Next(ctx context.Context) (singleinstance.Request, error)
}

// serveShowRequests raises the settings panel for every SHOW from a later launch.
func serveShowRequests(ctx context.Context, src requestSource, show func()) {
	for {
		req, err := src.Next(ctx)
		if err != nil {
			return
		}
		if req.Command == singleinstance.CommandShow {
			show()
		}
	}
}
