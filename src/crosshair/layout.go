package crosshair

import "image/color"

// Point is a pixel position relative to the overlay window origin.
type Point struct {
	X int
	Y int
}

// Segment is one arm of the crosshair.
type Segment struct {
	From Point
	To   Point
}

// Dot is the optional center point, drawn with a stroke of Size pixels.
type Dot struct {
	At   Point
	Size int
}

// Frame is everything one paint pass draws. A zero Frame draws nothing.
type Frame struct {
	Color     color.RGBA
	Thickness int
	Segments  []Segment
	Dot       *Dot
}

// Empty reports whether painting the frame leaves the window fully transparent.
func (f Frame) Empty() bool {
	return len(f.Segments) == 0 && f.Dot == nil
}

// Layout computes the crosshair geometry for a window of the given size.
// Segments are ordered top, bottom, left, right; the dot is painted last.
func Layout(cfg Config, width, height int) Frame {
	cx, cy := width/2, height/2
	gap, length := cfg.GapSize, cfg.LineLength

	f := Frame{
		Color:     cfg.Color,
		Thickness: cfg.LineThickness,
		Segments: []Segment{
			{From: Point{cx, cy - gap - length}, To: Point{cx, cy - gap}},
			{From: Point{cx, cy + gap}, To: Point{cx, cy + gap + length}},
			{From: Point{cx - gap - length, cy}, To: Point{cx - gap, cy}},
			{From: Point{cx + gap, cy}, To: Point{cx + gap + length, cy}},
		},
	}
	if cfg.MiddleDotEnabled {
		f.Dot = &Dot{At: Point{cx, cy}, Size: cfg.MiddleDotSize}
	}
	return f
}
