//go:build !windows

package notification

// showBlockingError has nothing beyond the log line on non-Windows platforms.
func showBlockingError(title, message string) {}
