package overlay

import (
	"errors"
	"image"

	"crosshair-overlay/src/clickthrough"
)

// ErrUnsupported is returned by RunWindow where no native overlay window exists.
var ErrUnsupported = errors.New("overlay window not implemented for this platform")

// WindowOptions configures the native overlay window.
type WindowOptions struct {
	// Bounds is the screen rectangle the window covers, normally the primary display.
	Bounds image.Rectangle
	// ClickThrough makes the window transparent to pointer input. Nil skips it.
	ClickThrough clickthrough.Adapter
	Title        string
}
