package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ppiankov/akkad/internal/cache"
	"github.com/ppiankov/akkad/internal/dictionary"
	"github.com/ppiankov/akkad/internal/model"
	"github.com/ppiankov/akkad/internal/pipeline"
)

// backend is an opened dictionary plus what it needs released afterwards
type backend struct {
	finder dictionary.Finder
	cache  cache.Cache // nil for sqlite
	close  func() error
}

// openBackend opens the configured dictionary backend
func openBackend(c *model.Config, log *zap.Logger) (*backend, error) {
	switch c.Dictionary.Backend {
	case model.BackendSQLite:
		store, err := dictionary.OpenSQLite(c.Dictionary.DBPath)
		if err != nil {
			return nil, err
		}
		log.Debug("using sqlite dictionary", zap.String("db", c.Dictionary.DBPath))
		return &backend{finder: store, close: store.Close}, nil

	case model.BackendFiles:
		mc := cache.NewMemoryCache(c.Dictionary.CacheTTL, 2*c.Dictionary.CacheTTL)
		log.Debug("using file dictionary",
			zap.String("dir", c.Dictionary.Dir),
			zap.Duration("cache_ttl", c.Dictionary.CacheTTL))
		return &backend{
			finder: dictionary.NewFileFinder(c.Dictionary.Dir, mc, c.Dictionary.CacheTTL, log),
			cache:  mc,
			close:  func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unknown dictionary backend %q", c.Dictionary.Backend)
	}
}

// newPipeline opens the backend and wraps it in a pipeline; call the returned func when done
func newPipeline() (*pipeline.Pipeline, *backend, error) {
	b, err := openBackend(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open dictionary: %w", err)
	}
	return pipeline.NewPipeline(b.finder, logger), b, nil
}
