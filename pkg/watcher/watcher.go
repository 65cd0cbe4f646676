package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/dtnitsch/seo-copywriter/pkg/logging"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before a change fires.
const DefaultDebounce = 200 * time.Millisecond

// FileWatcher reports changes to a single file. It watches the parent
// directory so editors that replace the file on save are still seen.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   *slog.Logger
}

// New starts watching path. Events that arrive before Run is called are kept.
func New(path string, debounce time.Duration, logger *slog.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logging.Discard()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &FileWatcher{watcher: w, path: abs, debounce: debounce, logger: logger}, nil
}

// Path returns the absolute path being watched.
func (fw *FileWatcher) Path() string {
	return fw.path
}

// Run calls onChange once per burst of write or create events on the file.
// It returns when ctx is cancelled or the watcher is closed.
func (fw *FileWatcher) Run(ctx context.Context, onChange func(path string)) error {
	defer fw.watcher.Close()

	timer := time.NewTimer(fw.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fw.logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			pending = true
			timer.Reset(fw.debounce)

		case <-timer.C:
			if pending {
				pending = false
				onChange(fw.path)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Error("watcher error", "error", err)
		}
	}
}
