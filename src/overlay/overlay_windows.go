//go:build windows

package overlay

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"syscall"
	"time"
	"unsafe"

	"crosshair-overlay/src/crosshair"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const (
	wsExToolWindow = 0x00000080
	wsExLayered    = 0x00080000
	wsExNoActivate = 0x08000000
	lwaColorKey    = 0x00000001
	maNoActivate   = 3
	swShowNA       = 8
)

var (
	user32DLL                      = windows.NewLazySystemDLL("user32.dll")
	procSetLayeredWindowAttributes = user32DLL.NewProc("SetLayeredWindowAttributes")
	procFillRect                   = user32DLL.NewProc("FillRect")

	gdi32DLL             = windows.NewLazySystemDLL("gdi32.dll")
	procCreateSolidBrush = gdi32DLL.NewProc("CreateSolidBrush")
)

// Only one overlay window exists per process; the window procedure finds it here.
var activeOverlay *Overlay

// RunWindow creates the topmost, layered, screen-sized overlay window and
// pumps its messages until ctx is cancelled. It locks the calling goroutine
// to its OS thread, so run it on a dedicated goroutine.
func RunWindow(ctx context.Context, ov *Overlay, opts WindowOptions) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	b := opts.Bounds
	if b.Empty() {
		return fmt.Errorf("overlay bounds are empty: %v", b)
	}
	title := opts.Title
	if title == "" {
		title = "Crosshair Overlay"
	}

	// Register window class with unique name to avoid conflicts
	className := syscall.StringToUTF16Ptr(fmt.Sprintf("CrosshairOverlay_%d", time.Now().UnixNano()))
	wndClass := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		Style:         win.CS_HREDRAW | win.CS_VREDRAW,
		LpfnWndProc:   syscall.NewCallback(overlayWndProc),
		HInstance:     win.GetModuleHandle(nil),
		HbrBackground: 0, // painted by overlayWndProc
		LpszClassName: className,
	}
	if atom := win.RegisterClassEx(&wndClass); atom == 0 {
		return fmt.Errorf("failed to register overlay window class")
	}
	defer win.UnregisterClass(className)

	activeOverlay = ov
	defer func() { activeOverlay = nil }()

	hwnd := win.CreateWindowEx(
		win.WS_EX_TOPMOST|wsExToolWindow|wsExLayered|wsExNoActivate,
		className,
		syscall.StringToUTF16Ptr(title),
		win.WS_POPUP|win.WS_VISIBLE,
		int32(b.Min.X), int32(b.Min.Y), int32(b.Dx()), int32(b.Dy()),
		0, 0, win.GetModuleHandle(nil), nil,
	)
	if hwnd == 0 {
		return fmt.Errorf("failed to create overlay window")
	}
	log.Printf("OVERLAY: window created, hwnd: %v, position: (%d,%d) size: (%d,%d)", hwnd, b.Min.X, b.Min.Y, b.Dx(), b.Dy())

	key := colorRef(transparentKey)
	if ret, _, err := procSetLayeredWindowAttributes.Call(uintptr(hwnd), uintptr(key), 0, lwaColorKey); ret == 0 {
		log.Printf("OVERLAY: SetLayeredWindowAttributes failed, background will not be transparent: %v", err)
	}

	if opts.ClickThrough != nil {
		if err := opts.ClickThrough.Apply(uintptr(hwnd)); err != nil {
			log.Printf("OVERLAY: WARNING click-through unavailable, overlay may intercept mouse input: %v", err)
		} else {
			log.Printf("OVERLAY: click-through applied")
		}
	}

	ov.SetRedrawFunc(func() { win.InvalidateRect(hwnd, nil, false) })
	defer ov.SetRedrawFunc(nil)

	win.ShowWindow(hwnd, swShowNA)
	win.UpdateWindow(hwnd)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
		case <-stop:
		}
	}()

	var msg win.MSG
	for {
		ret := win.GetMessage(&msg, 0, 0, 0)
		if ret == 0 { // WM_QUIT
			log.Printf("OVERLAY: message loop finished")
			return nil
		}
		if ret == -1 {
			win.DestroyWindow(hwnd)
			return fmt.Errorf("overlay GetMessage failed")
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

func overlayWndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	ov := activeOverlay

	switch msg {
	case win.WM_PAINT:
		var ps win.PAINTSTRUCT
		hdc := win.BeginPaint(hwnd, &ps)
		if ov != nil {
			paintFrame(hwnd, hdc, ov.Frame())
		}
		win.EndPaint(hwnd, &ps)
		return 0

	case win.WM_ERASEBKGND:
		return 1

	case win.WM_SETCURSOR:
		win.SetCursor(0)
		return 1

	case win.WM_MOUSEACTIVATE:
		return maNoActivate

	// Only reached when click-through is not in effect.
	case win.WM_RBUTTONDOWN:
		if ov != nil {
			ov.PressSecondary()
		}
		return 0

	case win.WM_RBUTTONUP:
		if ov != nil {
			ov.ReleaseSecondary()
		}
		return 0

	case win.WM_DESTROY:
		log.Printf("OVERLAY: WM_DESTROY received")
		win.PostQuitMessage(0)
		return 0
	}

	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

// paintFrame draws into a back buffer filled with the transparency key and
// blits it in one go to avoid flicker while sliders are dragged.
func paintFrame(hwnd win.HWND, hdc win.HDC, f crosshair.Frame) {
	var rc win.RECT
	win.GetClientRect(hwnd, &rc)
	width, height := rc.Right-rc.Left, rc.Bottom-rc.Top

	memDC := win.CreateCompatibleDC(hdc)
	defer win.DeleteDC(memDC)
	bmp := win.CreateCompatibleBitmap(hdc, width, height)
	defer win.DeleteObject(win.HGDIOBJ(bmp))
	oldBmp := win.SelectObject(memDC, win.HGDIOBJ(bmp))
	defer win.SelectObject(memDC, oldBmp)

	keyBrush, _, _ := procCreateSolidBrush.Call(uintptr(colorRef(transparentKey)))
	procFillRect.Call(uintptr(memDC), uintptr(unsafe.Pointer(&rc)), keyBrush)
	win.DeleteObject(win.HGDIOBJ(keyBrush))

	if !f.Empty() {
		drawCrosshair(memDC, f)
	}

	win.BitBlt(hdc, 0, 0, width, height, memDC, 0, 0, win.SRCCOPY)
}

// drawCrosshair fills rectangles rather than stroking lines: LineTo leaves out
// its end point, which would shift two arms by a pixel.
func drawCrosshair(hdc win.HDC, f crosshair.Frame) {
	brush, _, _ := procCreateSolidBrush.Call(uintptr(colorRef(paintColor(f.Color))))
	defer win.DeleteObject(win.HGDIOBJ(brush))

	for _, s := range f.Segments {
		l, t, r, b := segmentRect(s, f.Thickness)
		fillRect(hdc, brush, l, t, r, b)
	}
	if f.Dot != nil {
		l, t, r, b := dotRect(*f.Dot)
		fillRect(hdc, brush, l, t, r, b)
	}
}

func fillRect(hdc win.HDC, brush uintptr, left, top, right, bottom int32) {
	rc := win.RECT{Left: left, Top: top, Right: right, Bottom: bottom}
	procFillRect.Call(uintptr(hdc), uintptr(unsafe.Pointer(&rc)), brush)
}
