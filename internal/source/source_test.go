package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typereader/internal/logger"
)

func TestFromReaderDropsBlankLines(t *testing.T) {
	text, err := FromReader(strings.NewReader("  first line \n\n\nsecond\n"))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}
	if text != "first line\nsecond" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFromReaderEmpty(t *testing.T) {
	if _, err := FromReader(strings.NewReader(" \n\t\n")); err == nil {
		t.Fatalf("expected error for empty text")
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(path, []byte("the cat sat\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if text != "the cat sat" {
		t.Fatalf("unexpected text: %q", text)
	}
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := make(chan string, 4)
	w, err := NewWatcher(path, logger.Nop(), func(text string) { got <- text })
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Start(ctx) }()

	if err := os.WriteFile(path, []byte("new text"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	select {
	case text := <-got:
		if text != "new text" {
			t.Fatalf("unexpected reloaded text: %q", text)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}
