package format

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/singleflight"

	"github.com/firmforge/fwtool/internal/config"
)

// Watcher monitors the core directories and reports changed source files so
// watch mode can re-check them for drift. It never mutates anything itself.
type Watcher struct {
	cfg    *config.Config
	logger *slog.Logger
	Ready  chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)
	group      singleflight.Group
}

// NewWatcher creates a new Watcher over the configured core directories.
func NewWatcher(cfg *config.Config, logger *slog.Logger) *Watcher {
	return &Watcher{
		cfg:        cfg,
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch starts monitoring and calls callback with the path of each relevant
// change. Events are debounced, and re-checks for a path still being checked
// are collapsed into the in-flight one. Blocks until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, callback func(path string)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range w.cfg.CoreDirs {
		if _, sErr := os.Stat(dir); os.IsNotExist(sErr) {
			continue
		}
		if aErr := w.addRecursive(watcher, dir); aErr != nil {
			return aErr
		}
	}

	w.logger.Info("Watching for changes", "dirs", strings.Join(w.cfg.CoreDirs, ", "))
	if w.Ready != nil {
		close(w.Ready)
	}

	var timer *time.Timer
	const debounceDuration = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case wErr := <-watcher.Errors:
			w.logger.Error("Watcher error", "error", wErr)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			path := w.handleEvent(watcher, event)
			if path == "" {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDuration, func() {
				w.group.Do(path, func() (interface{}, error) {
					callback(path)
					return nil, nil
				})
			})
		}
	}
}

// handleEvent processes a single fsnotify event. New directories are added to
// the watch set; relevant file changes return the file path.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) string {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return ""
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if aErr := w.addRecursive(watcher, event.Name); aErr != nil {
				w.logger.Error("Failed to watch new directory", "path", event.Name, "error", aErr)
			}
			return ""
		}
	}

	if !w.cfg.HasSourceSuffix(event.Name) || w.cfg.ContainsIgnored(event.Name) {
		return ""
	}

	return event.Name
}

// addRecursive adds the given path and all its subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}
