package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFileReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sales.csv")
	other := filepath.Join(dir, "other.csv")
	if err := os.WriteFile(path, []byte("a,b\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- WatchFile(ctx, path, 20*time.Millisecond, func() { changed <- struct{}{} })
	}()

	// The watcher may not be registered yet, so keep writing until it reports.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-changed:
			break loop
		case <-tick.C:
			if err := os.WriteFile(other, []byte("x\n"), 0644); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no change reported")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WatchFile: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("WatchFile did not stop after cancel")
	}
}

func TestWatchFileMissingDirectory(t *testing.T) {
	err := WatchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "data.csv"), time.Millisecond, func() {})
	if err == nil {
		t.Fatal("expected error for a missing directory")
	}
}
