package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, body string) {
	t.Helper()
	path := filepath.Join(Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestWatcherReportsSpecChanges(t *testing.T) {
	Dir = t.TempDir()
	w, err := NewWatcher(Dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	writeFile(t, "notes.txt", "ignored")
	writeFile(t, ShipSpecFile, "name: ship\n")

	deadline := time.After(2 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if name == "notes.txt" {
				t.Fatalf("non-spec file should be filtered")
			}
			if name == ShipSpecFile {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatalf("timed out waiting for %s event", ShipSpecFile)
		}
	}
}

func TestWatcherPollAndClose(t *testing.T) {
	Dir = t.TempDir()
	w, err := NewWatcher(Dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if got := w.Poll(); len(got) != 0 {
		t.Fatalf("expected no events, got %v", got)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close should be a no-op: %v", err)
	}
}
