// Package clickthrough makes a native window transparent to mouse input.
package clickthrough

import "errors"

// ErrUnsupported is returned where the windowing system has no click-through mechanism.
var ErrUnsupported = errors.New("click-through not supported on this platform")

// Adapter applies click-through to a native window handle.
type Adapter interface {
	Apply(hwnd uintptr) error
}

// New returns the adapter for the current platform.
func New() Adapter { return newPlatformAdapter() }
