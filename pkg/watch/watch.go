package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"dataextract/pkg/extractor"
	"dataextract/pkg/utils"
)

// DefaultDebounce coalesces the burst of events editors emit for one save.
const DefaultDebounce = 100 * time.Millisecond

// Handler receives the result of every extraction. On failure e is nil.
type Handler func(e extractor.Extractor, err error)

// Watcher re-runs the factory on a local file whenever it changes.
type Watcher struct {
	Factory  *extractor.Factory
	Debounce time.Duration
}

func (w *Watcher) factory() *extractor.Factory {
	if w.Factory == nil {
		return extractor.DefaultFactory
	}
	return w.Factory
}

// Watch extracts path once, then again after each write, create or rename
// onto it, until ctx is done. The parent directory is watched so files
// replaced by editors keep being tracked. Calls to fn are serial.
func (w *Watcher) Watch(ctx context.Context, path string, fn Handler) error {
	f := w.factory()
	if _, ok := extractor.Supported(path, f.Strict); !ok {
		return &extractor.Error{Code: extractor.CodeUnsupportedFormat, Path: path}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	target := filepath.Clean(path)
	dir := filepath.Dir(target)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	utils.LogDebug("Watching %s for changes to %s", dir, target)

	fn(f.Create(path))

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			utils.LogDebug("Change detected: %s", ev)
			timer.Reset(debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			utils.LogWarning("Watcher error on %s: %v", target, err)
		case <-timer.C:
			fn(f.Create(path))
		}
	}
}
