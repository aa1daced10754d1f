package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/chromatic/pkg/io"
	"github.com/matzehuels/chromatic/pkg/pipeline"
	"github.com/matzehuels/chromatic/pkg/render/nodelink"
)

// colorOpts holds the command-line flags for the color command.
type colorOpts struct {
	algorithm string // algorithm name(s), comma-separated, or "all"
	format    string // output format: "text" or "json"
	output    string // output file (or base path for several algorithms)
	verify    bool   // check each coloring before printing
	table     bool   // print a styled table instead of plain lines
}

// colorCommand creates the color command.
func (c *CLI) colorCommand() *cobra.Command {
	opts := colorOpts{
		algorithm: pipeline.DefaultAlgorithm,
		format:    pipeline.FormatText,
	}

	cmd := &cobra.Command{
		Use:   "color [file]",
		Short: "Color a graph read from an edge-list file",
		Long: `Color a graph read from an edge-list file.

The first line of the file is a header and is skipped. Every other line
holds one edge as two whitespace-separated vertex ids.

Examples:
  chromatic color graph.txt
  chromatic color graph.txt -a rlf --verify
  chromatic color graph.txt -a all -f json -o coloring.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("verify") {
				opts.verify = c.Config.Verify
			}
			opts.algorithm = stringSetting(cmd, "algorithm", opts.algorithm, c.Config.Algorithm)
			opts.format = stringSetting(cmd, "format", opts.format, c.Config.Format)
			return c.runColor(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "algorithm(s): greedy, rlf, dsatur (default), all (comma-separated)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single algorithm) or base path (multiple)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "verify each coloring is proper and compact")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print a table with color swatches")

	return cmd
}

func (c *CLI) runColor(cmd *cobra.Command, input string, opts colorOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Input:      input,
		Algorithms: splitList(opts.algorithm),
		Verify:     opts.verify,
		Format:     opts.format,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	warnHeaderMismatch(result)

	out := cmd.OutOrStdout()
	multi := len(result.Runs) > 1

	for _, run := range result.Runs {
		switch {
		case opts.output != "":
			path := outputPath(opts.output, run.Algorithm, opts.format, multi)
			if err := pkgio.ExportColoring(path, opts.format, run.Algorithm, result.Graph, run.Coloring); err != nil {
				return err
			}
			printFile(path)
		case opts.table:
			fmt.Fprintln(out, StyleTitle.Render(run.Algorithm))
			fmt.Fprintln(out, coloringTable(result.Graph, run.Coloring, nodelink.Palette(c.Config.Render.Palette).OrDefault()))
			fmt.Fprintf(out, "Number of colors: %d\n", run.Coloring.Count)
		default:
			if multi && opts.format == pipeline.FormatText {
				fmt.Fprintf(out, "# %s\n", run.Algorithm)
			}
			if err := pkgio.Write(out, opts.format, run.Algorithm, result.Graph, run.Coloring); err != nil {
				return err
			}
		}
	}

	prog.done(fmt.Sprintf("Colored %d vertices with %s", result.Stats.VertexCount, algorithmsLabel(result.Runs)))
	return nil
}

// outputPath returns the file for one algorithm's export. With several
// algorithms, the algorithm name is inserted before the extension.
func outputPath(base, algorithm, format string, multi bool) string {
	if !multi {
		return base
	}
	ext := filepath.Ext(base)
	if ext == "" {
		ext = "." + format
		if format == pipeline.FormatText {
			ext = ".txt"
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + algorithm + ext
}

func algorithmsLabel(runs []pipeline.Run) string {
	names := make([]string, len(runs))
	for i, run := range runs {
		names[i] = run.Algorithm
	}
	return strings.Join(names, ", ")
}
