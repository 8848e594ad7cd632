package mousehook

import (
	"context"
	"log"

	gohook "github.com/robotn/gohook"
)

// rightButton is libuiohook's MOUSE_BUTTON2.
const rightButton uint16 = 2

// Handlers receives right-button transitions observed anywhere on screen.
type Handlers struct {
	OnPress   func()
	OnRelease func()
}

type action int

const (
	actionNone action = iota
	actionPress
	actionRelease
)

// classify maps a raw hook event to a right-button transition. gohook names
// libuiohook's PRESSED event MouseHold and RELEASED event MouseDown; its
// MouseUp is the synthetic click and is ignored.
func classify(ev gohook.Event) action {
	if ev.Button != rightButton {
		return actionNone
	}
	switch ev.Kind {
	case gohook.MouseHold:
		return actionPress
	case gohook.MouseDown:
		return actionRelease
	default:
		return actionNone
	}
}

// Listen starts the global hook and dispatches right-button press/release
// until ctx is cancelled. The overlay window cannot see these clicks once it
// is click-through, so this is how the hold-to-hide toggle keeps working.
func Listen(ctx context.Context, h Handlers) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in mouse hook goroutine: %v", r)
			}
		}()

		log.Printf("Starting gohook event loop...")
		evChan := gohook.Start()
		if evChan == nil {
			log.Printf("ERROR: gohook.Start() returned nil channel")
			return
		}
		go func() {
			<-ctx.Done()
			gohook.End()
		}()

		for ev := range evChan {
			dispatch(ev, h)
		}
		log.Printf("Mouse hook event channel closed")
	}()
}

func dispatch(ev gohook.Event, h Handlers) {
	switch classify(ev) {
	case actionPress:
		if h.OnPress != nil {
			h.OnPress()
		}
	case actionRelease:
		if h.OnRelease != nil {
			h.OnRelease()
		}
	}
}
