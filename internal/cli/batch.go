package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/akkad/internal/model"
	"github.com/ppiankov/akkad/internal/render"
	"github.com/ppiankov/akkad/internal/worker"
)

var batchTimeout time.Duration

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Conjugate every verb listed in a file in parallel",
	Long: `Batch conjugates many verbs concurrently:
- Read verbs from the input file (one per line, "-" for stdin)
- Blank lines, # comments and duplicates are skipped
- Results are printed in input order
- Exits non-zero if any verb failed

Example:
  akkad batch verbs.txt
  akkad batch verbs.txt --concurrency 8 --format json
  cat verbs.txt | akkad batch -`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("concurrency", 0, "number of concurrent workers (default: concurrency.workers)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
	_ = viper.BindPFlag("concurrency.workers", batchCmd.Flags().Lookup("concurrency"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	var verbs []string
	if file == "-" {
		verbs, err = worker.ReadVerbs(cmd.InOrStdin())
	} else {
		verbs, err = worker.ReadVerbsFromFile(file)
	}
	if err != nil {
		return fmt.Errorf("read verbs: %w", err)
	}

	workers := cfg.Concurrency.Workers
	stderr := cmd.ErrOrStderr()

	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "  akkad Batch Conjugation\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(stderr, "  Verbs:        %d\n", len(verbs))
	fmt.Fprintf(stderr, "  Workers:      %d\n", workers)
	fmt.Fprintf(stderr, "  Dictionary:   %s\n", dictionaryLabel())
	fmt.Fprintf(stderr, "\n")

	p, b, err := newPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = b.close() }()

	start := time.Now()
	processor := worker.NewBatchProcessor(p, workers, logger)
	results := processor.ProcessVerbs(ctx, verbs)

	if err := render.NewRenderer(format).Batch(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	failed := worker.Failed(results)
	if format != render.FormatText {
		// Text output already lists failures inline
		for _, r := range results {
			if r.Error != nil {
				fmt.Fprintf(stderr, "✗ %s: %v\n", r.Verb, r.Error)
			}
		}
	}

	// Summary
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "  Batch Complete\n")
	fmt.Fprintf(stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "  Total:     %d verbs\n", len(results))
	fmt.Fprintf(stderr, "  Success:   %d\n", len(results)-failed)
	fmt.Fprintf(stderr, "  Failures:  %d\n", failed)
	fmt.Fprintf(stderr, "  Elapsed:   %v\n", time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(stderr, "\n")

	if failed > 0 {
		return fmt.Errorf("%d of %d verbs failed", failed, len(results))
	}
	return nil
}

func dictionaryLabel() string {
	if cfg.Dictionary.Backend == model.BackendSQLite {
		return "sqlite " + cfg.Dictionary.DBPath
	}
	return cfg.Dictionary.Dir
}
