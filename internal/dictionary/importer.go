package dictionary

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Importer copies every letter file of a directory into a SQLiteStore
type Importer struct {
	dir     string
	store   *SQLiteStore
	workers int
	logger  *zap.Logger
}

// NewImporter creates an importer; workers bounds concurrent file parsing
func NewImporter(dir string, store *SQLiteStore, workers int, logger *zap.Logger) *Importer {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{dir: dir, store: store, workers: workers, logger: logger}
}

// Import parses all letter files concurrently, then writes every entry in one
// transaction. It returns the number of verbs written.
func (im *Importer) Import(ctx context.Context) (int, error) {
	paths, err := LetterFiles(im.dir)
	if err != nil {
		return 0, err
	}

	files := make([]*LetterFile, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.workers)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lf, err := LoadLetterFile(p)
			if err != nil {
				return err
			}
			files[i] = lf
			im.logger.Debug("parsed letter file", zap.String("path", p), zap.Int("verbs", len(lf.Entries)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("load dictionary: %w", err)
	}

	tx, err := im.store.DB().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	count := 0
	for _, lf := range files {
		verbs := make([]string, 0, len(lf.Entries))
		for v := range lf.Entries {
			verbs = append(verbs, v)
		}
		sort.Strings(verbs)
		for _, v := range verbs {
			if err := Upsert(ctx, tx, v, lf.Entries[v]); err != nil {
				return 0, err
			}
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	im.logger.Info("dictionary imported", zap.String("dir", im.dir), zap.Int("files", len(files)), zap.Int("verbs", count))
	return count, nil
}
