// Package reload watches a single file and reports when it has settled after
// a change.
package reload

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hanumantha123456/portfolio"
)

// DefaultDebounce is how long a file must stay quiet before a change is reported.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reports changes to one file. Editors often replace a file by
// renaming over it, so the containing directory is watched and events are
// filtered by name.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   portfolio.Logger
	fsw      *fsnotify.Watcher
	once     sync.Once
}

// New starts watching path. The file need not exist yet, but its directory must.
func New(path string, debounce time.Duration, logger portfolio.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = portfolio.NewDefaultLogger()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, debounce: debounce, logger: logger, fsw: fsw}, nil
}

// Run calls onChange once per burst of changes until ctx is done, then closes
// the watcher. onChange runs on a timer goroutine and never concurrently with
// itself.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.Close()

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	fire := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() == nil {
			onChange()
		}
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("Change detected", "path", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, fire)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", "error", err)
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.fsw.Close()
	})
	return err
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}
