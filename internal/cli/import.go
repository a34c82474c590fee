package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/akkad/internal/dictionary"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the letter files into a SQLite dictionary",
	Long: `Import parses every letter file of --dict-dir concurrently and writes all
entries into the SQLite database at --db in a single transaction. Re-importing
replaces existing entries; a malformed file aborts the import with no writes.

Example:
  akkad import
  akkad import --dict-dir ./data/verbs --db ./akkad.db
  akkad conjugate parāsum --backend sqlite`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	store, err := dictionary.OpenSQLite(cfg.Dictionary.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	start := time.Now()
	n, err := dictionary.NewImporter(cfg.Dictionary.Dir, store, cfg.Concurrency.Workers, logger).Import(cmd.Context())
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d verbs from %s into %s (%v)\n",
		n, cfg.Dictionary.Dir, cfg.Dictionary.DBPath, time.Since(start).Round(time.Millisecond))
	return nil
}
