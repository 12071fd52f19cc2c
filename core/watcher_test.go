package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchTemplates_CallsOnChange(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "main.html")
	if err := os.WriteFile(page, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- WatchTemplates(ctx, dir, func() { changed <- struct{}{} })
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(page, []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected onChange after template write")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected nil error after cancel, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("expected watcher to stop after cancel")
	}
}

func TestWatchTemplates_MissingDir(t *testing.T) {
	err := WatchTemplates(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
