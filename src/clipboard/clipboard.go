package clipboard

import (
	"fmt"
	"sync"

	"crosshair-overlay/src/crosshair"

	"golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
	writeMu  sync.Mutex
)

// Init prepares the system clipboard. It is safe to call more than once.
func Init() error {
	initOnce.Do(func() { initErr = clipboard.Init() })
	return initErr
}

// Write performs a mutex-guarded clipboard write to prevent corruption under parallel writes.
func Write(text string) error {
	if err := Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	writeMu.Lock()
	defer writeMu.Unlock()
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// WriteSettings copies cfg to the clipboard in the same format the save action writes.
func WriteSettings(cfg crosshair.Config) error {
	data, err := crosshair.Encode(cfg)
	if err != nil {
		return err
	}
	return Write(string(data))
}
