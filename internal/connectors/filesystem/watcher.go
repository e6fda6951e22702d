package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/precis-cli/internal/logger"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 150 * time.Millisecond

// ErrWatcherClosed is returned by Watch after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// Change describes a modification of the watched file.
type Change struct {
	// Path is the watched file.
	Path string

	// Removed is true when the file was deleted or renamed away.
	Removed bool
}

// Watcher reports changes to a single file. The parent directory is
// watched so editors that replace files through a rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration

	mu      sync.Mutex
	closed  bool
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string) *Watcher {
	if abs, err := filepath.Abs(ResolvePath(path)); err == nil {
		path = abs
	}
	return &Watcher{path: path, debounce: DefaultDebounce}
}

// SetDebounce overrides the settle delay. Zero emits every event.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d >= 0 {
		w.debounce = d
	}
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Watch starts watching and returns a channel of changes. The channel is
// closed when ctx is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) (<-chan Change, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, ErrWatcherClosed
	}
	if w.watcher != nil {
		return nil, errors.New("watcher already started")
	}

	info, err := os.Stat(w.path)
	if err != nil {
		return nil, fmt.Errorf("watch path error: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("watch path error: %s is a directory", w.path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.watcher = fsw

	changes := make(chan Change)
	go w.loop(ctx, fsw, changes)
	return changes, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, changes chan<- Change) {
	defer close(changes)

	var (
		pending *Change
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	emit := func(c Change) bool {
		select {
		case changes <- c:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			change, ok := handleFsEvent(event, w.path)
			if !ok {
				continue
			}
			logger.Debug("watch: %s %s", event.Op, event.Name)
			if w.debounce == 0 {
				if !emit(change) {
					return
				}
				continue
			}
			pending = &change
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if pending != nil {
				change := *pending
				pending = nil
				if !emit(change) {
					return
				}
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch: %v", err)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

// handleFsEvent maps a directory event to a change of target.
// Events for other files and attribute-only changes are ignored.
func handleFsEvent(event fsnotify.Event, target string) (Change, bool) {
	if filepath.Clean(event.Name) != target {
		return Change{}, false
	}

	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return Change{Path: target}, true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return Change{Path: target, Removed: true}, true
	default:
		return Change{}, false
	}
}
