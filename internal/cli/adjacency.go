package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// adjacencyCommand creates the adjacency command, which prints each vertex
// followed by its neighbors.
func (c *CLI) adjacencyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "adjacency [file]",
		Short: "Print the adjacency list of a graph",
		Long: `Print the adjacency list of a graph read from an edge-list file.

Each line has the form "v => n1 n2 ...", with vertices in first-seen order
and neighbors in edge order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, _, err := c.newRunner().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			g := el.Graph()
			if err := g.Dump(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("write adjacency: %w", err)
			}
			loggerFromContext(cmd.Context()).Debug("printed adjacency", "vertices", g.VertexCount())
			return nil
		},
	}
}
