package notification

import (
	"bytes"
	"log"
	"os"
	"runtime"
	"strings"
	"testing"
)

func TestShowBlockingErrorLogs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("would open a modal message box")
	}
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	ShowBlockingError("Overlay unavailable", "no display")

	if !strings.Contains(buf.String(), "Overlay unavailable: no display") {
		t.Errorf("Expected error to be logged, got %q", buf.String())
	}
}
