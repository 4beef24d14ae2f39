package source

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/verte-zerg/typereader/internal/logger"
)

// settle lets editors finish writing before the file is re-read.
const settle = 150 * time.Millisecond

// Watcher reloads a text file whenever it changes on disk.
type Watcher struct {
	path     string
	log      logger.Logger
	watcher  *fsnotify.Watcher
	onChange func(string)
}

// NewWatcher watches the directory of path so that editors replacing the
// file through a rename are still noticed.
func NewWatcher(path string, log logger.Logger, onChange func(string)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{path: abs, log: log, watcher: fw, onChange: onChange}, nil
}

// Start blocks, delivering reloaded text until ctx is done or the watcher is closed.
func (w *Watcher) Start(ctx context.Context) error {
	w.log.Infof("watching %s", w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			time.Sleep(settle)
			text, err := FromFile(w.path)
			if err != nil {
				w.log.Warnf("failed to reload %s: %v", w.path, err)
				continue
			}
			w.log.Debugf("reloaded %s (%d bytes)", w.path, len(text))
			w.onChange(text)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Errorf("watcher error: %v", err)
		}
	}
}

// Stop closes the underlying watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
