package overlay

import (
	"image/color"

	"crosshair-overlay/src/crosshair"
)

// transparentKey fills the overlay background and is keyed out by the
// layered window, so only the crosshair stays visible.
var transparentKey = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// colorRef packs c as a Win32 COLORREF (0x00BBGGRR).
func colorRef(c color.RGBA) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

// paintColor keeps a crosshair color that equals the key visible by moving it one step.
func paintColor(c color.RGBA) color.RGBA {
	if c.R == transparentKey.R && c.G == transparentKey.G && c.B == transparentKey.B {
		c.R--
	}
	c.A = 255
	return c
}

// segmentRect is the rectangle a segment covers when drawn t pixels thick.
// Both endpoints are painted and the thickness is centered on the segment's
// axis; a zero-length segment is a t x t square. Right and bottom are exclusive.
func segmentRect(s crosshair.Segment, t int) (left, top, right, bottom int32) {
	x0, x1 := minMax(int32(s.From.X), int32(s.To.X))
	y0, y1 := minMax(int32(s.From.Y), int32(s.To.Y))
	w := int32(t)
	switch {
	case x0 == x1 && y0 == y1:
		return x0 - w/2, y0 - w/2, x0 - w/2 + w, y0 - w/2 + w
	case x0 == x1:
		return x0 - w/2, y0, x0 - w/2 + w, y1 + 1
	default:
		return x0, y0 - w/2, x1 + 1, y0 - w/2 + w
	}
}

func minMax(a, b int32) (int32, int32) {
	if a > b {
		return b, a
	}
	return a, b
}

// dotRect is the square a dot of d.Size pixels covers, centered on d.At.
// Right and bottom are exclusive, matching GDI fill semantics.
func dotRect(d crosshair.Dot) (left, top, right, bottom int32) {
	size := int32(d.Size)
	left = int32(d.At.X) - size/2
	top = int32(d.At.Y) - size/2
	return left, top, left + size, top + size
}
