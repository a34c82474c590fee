package dictionary

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ppiankov/akkad/internal/cache"
)

// Watcher evicts cached letter files when they change on disk, so a running
// server picks up dictionary edits without a restart.
type Watcher struct {
	dir     string
	cache   cache.Cache
	logger  *zap.Logger
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching dir. Call Run to process events.
func NewWatcher(dir string, c cache.Cache, logger *zap.Logger) (*Watcher, error) {
	if c == nil {
		c = cache.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{dir: dir, cache: c, logger: logger, watcher: fw}, nil
}

// Run handles events until ctx is done, then closes the watcher
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("dictionary watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !isLetterFile(event.Name) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	w.cache.Delete(cache.CacheKey(event.Name))
	w.logger.Info("letter file changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
}

func isLetterFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range letterExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
