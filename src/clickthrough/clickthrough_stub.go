//go:build !windows

package clickthrough

type unsupportedAdapter struct{}

func newPlatformAdapter() Adapter { return unsupportedAdapter{} }

func (unsupportedAdapter) Apply(uintptr) error { return ErrUnsupported }
