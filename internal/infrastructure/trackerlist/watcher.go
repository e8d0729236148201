package trackerlist

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/tinyguard/internal/logging"
)

// DefaultDebounce coalesces bursts of write events from editors and atomic renames.
const DefaultDebounce = 250 * time.Millisecond

// Watcher calls a reload function whenever the watched document changes.
// It watches the parent directory so atomic replacements are seen too.
type Watcher struct {
	path     string
	debounce time.Duration
	reload   func(context.Context) error

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for path. reload runs on its own goroutine
// after changes settle; its errors are logged and the previous catalog is kept.
func NewWatcher(path string, debounce time.Duration, reload func(context.Context) error) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		reload:   reload,
	}
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.Component(ctx, "tracker-list-watcher").With().
		Str("path", w.path).
		Logger()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.mu.Lock()
	w.watcher = fw
	w.mu.Unlock()

	log.Debug().Msg("watching tracker list")

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case e, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
				continue
			}
			log.Debug().Str("op", e.Op.String()).Msg("tracker list change detected")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			if err := w.reload(ctx); err != nil {
				log.Warn().Err(err).Msg("tracker list reload failed, keeping previous catalog")
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}

// Watching reports whether Run has set up its watch.
func (w *Watcher) Watching() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.watcher != nil
}
