package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/pipeline"
)

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [file]",
		Short: "Run every algorithm and compare colors used",
		Long: `Run Greedy, RLF and DSatur on the same graph, verify each coloring and
print a table of colors used and time taken. The best row is highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			result, err := c.newRunner().Execute(ctx, pipeline.Options{
				Input:      args[0],
				Algorithms: []string{pipeline.AlgorithmAll},
				Verify:     true,
				Logger:     loggerFromContext(ctx),
			})
			if err != nil {
				return err
			}
			warnHeaderMismatch(result)

			best, _ := result.Best()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, statsLine(result.Stats.VertexCount, result.Stats.EdgeCount))
			fmt.Fprintln(out, compareTable(result.Runs, best.Algorithm))
			printSuccess("%s used the fewest colors (%d)", best.Algorithm, best.Coloring.Count)
			return nil
		},
	}
}
