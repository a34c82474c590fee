package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/akkad/internal/dictionary"
	"github.com/ppiankov/akkad/internal/render"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <verb>",
	Short: "Print the raw dictionary entry of a verb",
	Long: `Lookup prints the dictionary record for a verb without conjugating it.

Example:
  akkad lookup parāsum
  akkad lookup šaqûm --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	p, b, err := newPipeline()
	if err != nil {
		return err
	}
	defer func() { _ = b.close() }()

	verb := dictionary.NormalizeVerb(args[0])
	e, err := p.Lookup(cmd.Context(), verb)
	if err != nil {
		return fmt.Errorf("%s: %w", verb, err)
	}
	return render.NewRenderer(format).Entry(cmd.OutOrStdout(), verb, e)
}
