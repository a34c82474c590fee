// Package pipeline joins dictionary lookup to the conjugation engine.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ppiankov/akkad/internal/conjugate"
	"github.com/ppiankov/akkad/internal/dictionary"
	"github.com/ppiankov/akkad/internal/model"
)

// Pipeline orchestrates lookup, parsing and conjugation of one verb
type Pipeline struct {
	finder dictionary.Finder
	logger *zap.Logger
}

// NewPipeline creates a pipeline over finder. A nil logger discards logs.
func NewPipeline(finder dictionary.Finder, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{finder: finder, logger: logger}
}

// Lookup returns the raw dictionary entry for verb
func (p *Pipeline) Lookup(ctx context.Context, verb string) (*model.Entry, error) {
	e, err := p.finder.Find(ctx, verb)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	return e, nil
}

// ConjugateVerb looks verb up and conjugates it
func (p *Pipeline) ConjugateVerb(ctx context.Context, verb string) (*model.ConjugatedVerb, error) {
	start := time.Now()

	// 1. Look up the raw entry
	e, err := p.Lookup(ctx, verb)
	if err != nil {
		return nil, err
	}

	// 2. Parse, classify and build every form
	cv, err := conjugate.Entry(dictionary.NormalizeVerb(verb), *e)
	if err != nil {
		p.logger.Debug("conjugation failed", zap.String("verb", verb), zap.Error(err))
		return nil, err
	}

	p.logger.Debug("conjugated",
		zap.String("verb", cv.Verb),
		zap.Stringer("variant", cv.Stem),
		zap.Duration("elapsed", time.Since(start)))
	return cv, nil
}
