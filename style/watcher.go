package style

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is how often a Watcher checks the file when fsnotify
// is unavailable.
const DefaultPollInterval = 500 * time.Millisecond

// Watcher keeps a Style in sync with a style file on disk.
//
// A failed reload is logged and the previous style stays in effect, so a
// half-written or invalid file never leaves callers without a style.
type Watcher struct {
	path         string
	pollInterval time.Duration

	mu      sync.RWMutex
	current Style
	modTime time.Time

	updates chan Style
}

// NewWatcher loads the style at path and returns a Watcher for it.
// The file must exist and hold a valid style.
func NewWatcher(path string) (*Watcher, error) {
	s, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:         path,
		pollInterval: DefaultPollInterval,
		current:      s,
		updates:      make(chan Style, 1),
	}
	if info, err := os.Stat(path); err == nil {
		w.modTime = info.ModTime()
	}
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Style returns the most recently loaded style.
func (w *Watcher) Style() Style {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Updates delivers each new style after a successful reload. Only the newest
// undelivered style is kept. The channel is closed when the watcher stops.
func (w *Watcher) Updates() <-chan Style {
	return w.updates
}

// Start follows the file in a background goroutine until ctx is cancelled.
// Uses fsnotify with a polling fallback. Start must be called at most once.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		defer close(w.updates)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			slog.Debug("fsnotify unavailable, polling style file",
				slog.String("path", w.path), slog.Any("error", err))
			w.poll(ctx)
			return
		}
		defer watcher.Close()

		// Watch the directory so editors that replace the file are seen.
		if err := watcher.Add(filepath.Dir(w.path)); err != nil {
			slog.Debug("cannot watch style directory, polling style file",
				slog.String("path", w.path), slog.Any("error", err))
			w.poll(ctx)
			return
		}

		w.watch(ctx, watcher)
	}()
}

func (w *Watcher) watch(ctx context.Context, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("style watcher error", slog.String("path", w.path), slog.Any("error", err))
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			w.mu.RLock()
			unchanged := info.ModTime().Equal(w.modTime)
			w.mu.RUnlock()
			if unchanged {
				continue
			}
			w.reload()
		}
	}
}

// reload reads the file again and publishes the style if it changed.
func (w *Watcher) reload() {
	var modTime time.Time
	if info, err := os.Stat(w.path); err == nil {
		modTime = info.ModTime()
	}

	s, err := LoadFile(w.path)
	if err != nil {
		slog.Warn("style reload failed, keeping previous style",
			slog.String("path", w.path), slog.Any("error", err))
		return
	}

	w.mu.Lock()
	changed := !w.current.Equal(s)
	w.current = s
	w.modTime = modTime
	w.mu.Unlock()

	if !changed {
		return
	}
	slog.Debug("style reloaded", slog.String("path", w.path))
	w.publish(s)
}

// publish replaces any undelivered style with s. Only the watcher goroutine
// sends on updates.
func (w *Watcher) publish(s Style) {
	select {
	case w.updates <- s:
		return
	default:
	}
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- s:
	default:
	}
}
