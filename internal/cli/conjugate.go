package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/akkad/internal/render"
)

// conjugateCmd represents the conjugate command
var conjugateCmd = &cobra.Command{
	Use:   "conjugate <verb> [verb...]",
	Short: "Conjugate one or more verbs",
	Long: `Conjugate looks each verb up in the dictionary and prints:
- the stem variant (strong, weak-initial-n, weak-final-root)
- the eight G-stem preterite forms
- the masculine and feminine verbal adjective

Example:
  akkad conjugate parāsum
  akkad conjugate nadānum šemûm --format json
  akkad conjugate damāqum --backend sqlite --db akkad.db`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConjugate,
}

func init() {
	rootCmd.AddCommand(conjugateCmd)
}

func runConjugate(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	p, b, err := newPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = b.close() }()

	renderer := render.NewRenderer(format)
	out := cmd.OutOrStdout()

	for i, verb := range args {
		cv, err := p.ConjugateVerb(cmd.Context(), verb)
		if err != nil {
			return fmt.Errorf("conjugate %s: %w", verb, err)
		}
		if i > 0 && format == render.FormatText {
			fmt.Fprintln(out)
		}
		if err := renderer.Conjugated(out, cv); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}
	return nil
}
