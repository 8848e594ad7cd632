//go:build windows

package clickthrough

import (
	"fmt"
	"log"

	"golang.org/x/sys/windows"
)

const (
	gwlExStyle       = -20 // GWL_EXSTYLE
	wsExTransparent  = 0x00000020
	wsExLayered      = 0x00080000
	clickThroughBits = wsExLayered | wsExTransparent
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongW = user32.NewProc("GetWindowLongW")
	procSetWindowLongW = user32.NewProc("SetWindowLongW")
)

type windowsAdapter struct{}

func newPlatformAdapter() Adapter { return windowsAdapter{} }

// Apply ORs WS_EX_LAYERED|WS_EX_TRANSPARENT into the window's extended style.
func (windowsAdapter) Apply(hwnd uintptr) error {
	if hwnd == 0 {
		return fmt.Errorf("apply click-through: nil window handle")
	}
	if err := procSetWindowLongW.Find(); err != nil {
		return fmt.Errorf("apply click-through: %w", err)
	}

	index := int32(gwlExStyle)
	style, _, _ := procGetWindowLongW.Call(hwnd, uintptr(index))
	want := uint32(style) | clickThroughBits

	// SetWindowLongW returns the previous style, which may legitimately be
	// zero; read the style back instead of trusting its return value.
	_, _, callErr := procSetWindowLongW.Call(hwnd, uintptr(index), uintptr(want))

	after, _, _ := procGetWindowLongW.Call(hwnd, uintptr(index))
	if uint32(after)&clickThroughBits != clickThroughBits {
		return fmt.Errorf("apply click-through: extended style 0x%08x missing 0x%08x: %v", uint32(after), clickThroughBits, callErr)
	}
	log.Printf("CLICKTHROUGH: extended style 0x%08x -> 0x%08x", uint32(style), uint32(after))
	return nil
}
