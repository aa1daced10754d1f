package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/pipeline"
	"github.com/matzehuels/chromatic/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	algorithm string   // algorithm whose coloring is drawn
	formats   []string // output formats: "dot", "svg", "png"
	output    string   // output base path (extension added per format)
	detailed  bool     // show color indices in vertex labels
}

// renderCommand creates the render command for drawing colored graphs.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{algorithm: pipeline.DefaultAlgorithm}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a colored graph as DOT, SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.algorithm = stringSetting(cmd, "algorithm", opts.algorithm, c.Config.Algorithm)
			opts.formats = renderFormats(cmd, formatsStr, c.Config.Render.Formats)
			if err := pipeline.ValidateRenderFormats(opts.formats); err != nil {
				return err
			}
			if strings.Contains(opts.algorithm, ",") || opts.algorithm == pipeline.AlgorithmAll {
				return errors.New(errors.ErrCodeInvalidAlgorithm, "render draws a single algorithm, got %q", opts.algorithm)
			}
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "algorithm: greedy, rlf, dsatur (default)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: input file name)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show color indices in vertex labels")

	return cmd
}

// renderFormats resolves the format list from the flag, then config, then
// the svg default.
func renderFormats(cmd *cobra.Command, flag string, configured []string) []string {
	if cmd.Flags().Changed("format") {
		return splitList(flag)
	}
	if len(configured) > 0 {
		return configured
	}
	return []string{nodelink.FormatSVG}
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	runner := c.newRunner()

	sp := startSpinner(ctx, os.Stderr, "Coloring "+filepath.Base(input)+"...")

	popts := pipeline.Options{
		Input:      input,
		Algorithms: []string{opts.algorithm},
		Detailed:   opts.detailed,
		Palette:    c.Config.Render.Palette,
		Logger:     logger,
	}
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return renderFailed(ctx, sp, err)
	}
	run := result.Runs[0]

	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	written := make([]string, 0, len(opts.formats))
	for i, format := range opts.formats {
		sp.update("Rendering %s (%d/%d)...", format, i+1, len(opts.formats))
		popts.RenderFormats = []string{format}
		artifacts, err := runner.Render(ctx, result.Graph, run.Coloring, popts)
		if err != nil {
			return renderFailed(ctx, sp, err)
		}
		path := base + "." + format
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return renderFailed(ctx, sp, errors.Wrap(errors.ErrCodeInternal, err, "write %s", path))
		}
		written = append(written, path)
	}
	sp.succeed("Rendered %s coloring (%d colors)", run.Algorithm, run.Coloring.Count)
	for _, path := range written {
		printFile(path)
	}

	prog.done("Render complete")
	if len(opts.formats) == 1 && opts.formats[0] == nodelink.FormatDOT {
		printNextStep("Draw it with Graphviz", "neato -Tsvg "+base+".dot")
	}
	return nil
}

// renderFailed stops the spinner and reports err, or the context error when
// the command was interrupted.
func renderFailed(ctx context.Context, sp *spinner, err error) error {
	if ctx.Err() != nil {
		sp.halt()
		return ctx.Err()
	}
	sp.fail("Render failed")
	return err
}
