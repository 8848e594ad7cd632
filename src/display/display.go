package display

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// PrimaryBounds returns the bounds of the primary display (display 0).
func PrimaryBounds() (image.Rectangle, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return image.Rectangle{}, fmt.Errorf("no active displays found")
	}
	bounds := screenshot.GetDisplayBounds(0)
	if bounds.Empty() {
		return image.Rectangle{}, fmt.Errorf("primary display reports empty bounds %v", bounds)
	}
	return bounds, nil
}
