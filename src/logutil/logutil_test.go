package logutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestArchiveName(t *testing.T) {
	if got := archiveName("/var/log/overlay.log", 2); got != "/var/log/overlay.log.2" {
		t.Errorf("Expected /var/log/overlay.log.2, got %s", got)
	}
}

func TestOpenRotatesOversizedLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), logFileName)
	big := make([]byte, maxSizeBytes+1)
	if err := os.WriteFile(path, big, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	w.(*rotatingWriter).f.Close()

	if st, err := os.Stat(archiveName(path, 1)); err != nil || st.Size() != int64(len(big)) {
		t.Errorf("Expected first archive with %d bytes, err=%v", len(big), err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("Expected fresh log with one line, got %q", data)
	}
}

func TestRotateShiftsArchives(t *testing.T) {
	path := filepath.Join(t.TempDir(), logFileName)
	for i := 1; i <= maxArchives; i++ {
		if err := os.WriteFile(archiveName(path, i), []byte{byte('0' + i)}, 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	if err := os.WriteFile(path, []byte("current"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	rotate(path)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected %s to be moved away, stat err=%v", path, err)
	}
	want := map[int]string{1: "current", 2: "1", 3: "2"}
	for n, content := range want {
		data, err := os.ReadFile(archiveName(path, n))
		if err != nil {
			t.Fatalf("ReadFile archive %d failed: %v", n, err)
		}
		if string(data) != content {
			t.Errorf("Archive %d: expected %q, got %q", n, content, data)
		}
	}
}
