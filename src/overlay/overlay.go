package overlay

import (
	"image/color"
	"sync"

	"crosshair-overlay/src/crosshair"
)

// Overlay owns the crosshair appearance and the transient visibility flag.
// The settings panel mutates it only through the setters below; each setter
// clamps, assigns and requests a redraw.
type Overlay struct {
	mu        sync.Mutex
	cfg       crosshair.Config
	visible   bool
	width     int
	height    int
	redraw    func()
	listeners []func(visible bool)
}

// New creates an overlay covering a width x height window.
func New(width, height int, cfg crosshair.Config) *Overlay {
	return &Overlay{
		cfg:     cfg.Clamped(),
		visible: true,
		width:   width,
		height:  height,
	}
}

// SetRedrawFunc installs the platform invalidation call. It may be invoked
// from whichever goroutine calls a setter, so it must be thread-safe.
func (o *Overlay) SetRedrawFunc(fn func()) {
	o.mu.Lock()
	o.redraw = fn
	o.mu.Unlock()
}

// OnVisibilityChanged registers a listener called after every visibility flip.
func (o *Overlay) OnVisibilityChanged(fn func(visible bool)) {
	o.mu.Lock()
	o.listeners = append(o.listeners, fn)
	o.mu.Unlock()
}

func (o *Overlay) Config() crosshair.Config {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cfg
}

func (o *Overlay) Visible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible
}

func (o *Overlay) Size() (int, int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.width, o.height
}

// Frame returns what the next paint should draw; nothing while hidden.
func (o *Overlay) Frame() crosshair.Frame {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.visible {
		return crosshair.Frame{}
	}
	return crosshair.Layout(o.cfg, o.width, o.height)
}

func (o *Overlay) SetColor(c color.Color) {
	o.update(func(cfg *crosshair.Config) { cfg.Color = crosshair.Opaque(c) })
}

func (o *Overlay) SetLineThickness(n int) {
	o.update(func(cfg *crosshair.Config) {
		cfg.LineThickness = crosshair.Clamp(n, crosshair.MinLineThickness, crosshair.MaxLineThickness)
	})
}

func (o *Overlay) SetLineLength(n int) {
	o.update(func(cfg *crosshair.Config) {
		cfg.LineLength = crosshair.Clamp(n, crosshair.MinLineLength, crosshair.MaxLineLength)
	})
}

func (o *Overlay) SetGapSize(n int) {
	o.update(func(cfg *crosshair.Config) {
		cfg.GapSize = crosshair.Clamp(n, crosshair.MinGapSize, crosshair.MaxGapSize)
	})
}

func (o *Overlay) SetMiddleDotEnabled(enabled bool) {
	o.update(func(cfg *crosshair.Config) { cfg.MiddleDotEnabled = enabled })
}

func (o *Overlay) SetMiddleDotSize(n int) {
	o.update(func(cfg *crosshair.Config) {
		cfg.MiddleDotSize = crosshair.Clamp(n, crosshair.MinMiddleDotSize, crosshair.MaxMiddleDotSize)
	})
}

// PressSecondary hides the crosshair while the right button is held.
func (o *Overlay) PressSecondary() { o.setVisible(false) }

// ReleaseSecondary restores the crosshair however long the button was held.
func (o *Overlay) ReleaseSecondary() { o.setVisible(true) }

func (o *Overlay) update(mutate func(cfg *crosshair.Config)) {
	o.mu.Lock()
	mutate(&o.cfg)
	redraw := o.redraw
	o.mu.Unlock()

	if redraw != nil {
		redraw()
	}
}

func (o *Overlay) setVisible(v bool) {
	o.mu.Lock()
	changed := o.visible != v
	o.visible = v
	redraw := o.redraw
	listeners := append([]func(bool){}, o.listeners...)
	o.mu.Unlock()

	if redraw != nil {
		redraw()
	}
	if !changed {
		return
	}
	for _, fn := range listeners {
		fn(v)
	}
}
