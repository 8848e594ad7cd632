package crosshair

import (
	"image/color"
)

// Slider-defined bounds for the numeric fields.
const (
	MinLineThickness = 1
	MaxLineThickness = 10
	MinLineLength    = 0
	MaxLineLength    = 200
	MinGapSize       = 0
	MaxGapSize       = 50
	MinMiddleDotSize = 1
	MaxMiddleDotSize = 20
)

// Config is the persisted appearance of the crosshair. Visibility is not part
// of it; the overlay tracks that separately while the right button is held.
type Config struct {
	Color            color.RGBA
	LineThickness    int
	LineLength       int
	GapSize          int
	MiddleDotEnabled bool
	MiddleDotSize    int
}

// Default returns the appearance a fresh overlay starts with.
func Default() Config {
	return Config{
		Color:            color.RGBA{R: 255, G: 255, B: 255, A: 255},
		LineThickness:    1,
		LineLength:       2,
		GapSize:          1,
		MiddleDotEnabled: true,
		MiddleDotSize:    1,
	}
}

// Clamp forces v into [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamped returns a copy with every numeric field inside its bounds and an opaque color.
func (c Config) Clamped() Config {
	c.Color = Opaque(c.Color)
	c.LineThickness = Clamp(c.LineThickness, MinLineThickness, MaxLineThickness)
	c.LineLength = Clamp(c.LineLength, MinLineLength, MaxLineLength)
	c.GapSize = Clamp(c.GapSize, MinGapSize, MaxGapSize)
	c.MiddleDotSize = Clamp(c.MiddleDotSize, MinMiddleDotSize, MaxMiddleDotSize)
	return c
}

// Opaque converts any color to non-premultiplied RGBA with full alpha.
// A color.RGBA with zero alpha has nothing to un-premultiply, so its channels
// are kept as given.
func Opaque(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok && rgba.A == 0 {
		rgba.A = 255
		return rgba
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}
