package worker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ppiankov/akkad/internal/model"
)

// Conjugator looks a verb up and conjugates it
type Conjugator interface {
	ConjugateVerb(ctx context.Context, verb string) (*model.ConjugatedVerb, error)
}

// ConjugateJob conjugates one verb of a batch
type ConjugateJob struct {
	Index      int
	Verb       string
	Conjugator Conjugator
}

// Execute executes the conjugation job
func (j *ConjugateJob) Execute(ctx context.Context) Result {
	cv, err := j.Conjugator.ConjugateVerb(ctx, j.Verb)
	return &ConjugateResult{
		Index:      j.Index,
		Verb:       j.Verb,
		Conjugated: cv,
		Error:      err,
	}
}

// ConjugateResult is the outcome for one verb
type ConjugateResult struct {
	Index      int
	Verb       string
	Conjugated *model.ConjugatedVerb
	Error      error
}

// GetError returns the error from the conjugation
func (r *ConjugateResult) GetError() error {
	return r.Error
}

// BatchProcessor conjugates many verbs concurrently
type BatchProcessor struct {
	conjugator Conjugator
	workers    int
	logger     *zap.Logger
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(conjugator Conjugator, workers int, logger *zap.Logger) *BatchProcessor {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchProcessor{
		conjugator: conjugator,
		workers:    workers,
		logger:     logger,
	}
}

// ProcessVerbs conjugates verbs concurrently. The returned slice is in input
// order; verbs never reached because ctx was canceled carry ctx's error.
func (b *BatchProcessor) ProcessVerbs(ctx context.Context, verbs []string) []*ConjugateResult {
	if len(verbs) == 0 {
		return []*ConjugateResult{}
	}

	pool := NewPool(ctx, b.workers)
	defer pool.Shutdown()

	jobs := make([]Job, len(verbs))
	for i, verb := range verbs {
		jobs[i] = &ConjugateJob{Index: i, Verb: verb, Conjugator: b.conjugator}
	}

	ordered := make([]*ConjugateResult, len(verbs))
	for _, r := range pool.Run(jobs) {
		cr := r.(*ConjugateResult)
		ordered[cr.Index] = cr
	}

	failed := 0
	for i, cr := range ordered {
		if cr == nil {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			ordered[i] = &ConjugateResult{Index: i, Verb: verbs[i], Error: err}
			cr = ordered[i]
		}
		if cr.Error != nil {
			failed++
			b.logger.Debug("verb failed", zap.String("verb", cr.Verb), zap.Error(cr.Error))
		}
	}

	b.logger.Info("batch complete",
		zap.Int("verbs", len(verbs)),
		zap.Int("failed", failed),
		zap.Int("workers", b.workers))
	return ordered
}

// ProcessFile reads verbs from a file and conjugates them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ConjugateResult, error) {
	verbs, err := ReadVerbsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read verbs: %w", err)
	}

	return b.ProcessVerbs(ctx, verbs), nil
}

// Failed counts the results that carry an error
func Failed(results []*ConjugateResult) int {
	n := 0
	for _, r := range results {
		if r.Error != nil {
			n++
		}
	}
	return n
}

// ReadVerbsFromFile reads verbs from a file (one per line)
func ReadVerbsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadVerbs(file)
}

// ReadVerbs reads one verb per line, skipping blanks, # comments and duplicates
func ReadVerbs(r io.Reader) ([]string, error) {
	var verbs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			verbs = append(verbs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan verbs: %w", err)
	}

	return verbs, nil
}
