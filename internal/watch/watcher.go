// Package watch implements a debounced single-file watcher using
// github.com/fsnotify/fsnotify. It watches the file's directory rather than
// the file itself, because editors often replace files on save (rename +
// create) which silently drops a direct file watch.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval suppresses the bursts of events editors fire per save.
const debounceInterval = 250 * time.Millisecond

// FileWatcher invokes a callback whenever one specific file changes.
type FileWatcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewFileWatcher creates a new file watcher.
func NewFileWatcher() (*FileWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &FileWatcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. onChange is called after each write or
// replacement of the file, debounced. The callback runs on the watcher's
// goroutine.
func (w *FileWatcher) Watch(path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watching directory: %w", err)
	}

	var lastFired time.Time

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if event.Name != absPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}

				now := time.Now()
				if now.Sub(lastFired) < debounceInterval {
					continue
				}
				lastFired = now

				onChange()

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// fsnotify recovers on its own; nothing useful to report mid-draft.

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *FileWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
