//go:build !windows

package overlay

import (
	"context"
	"log"
)

// RunWindow is a stub for non-Windows platforms.
func RunWindow(ctx context.Context, ov *Overlay, opts WindowOptions) error {
	log.Printf("OVERLAY: native overlay window unavailable on this platform")
	return ErrUnsupported
}
