package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/chromatic/pkg/coloring"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/observability"
	"github.com/matzehuels/chromatic/pkg/render/nodelink"
)

// Render draws g colored by c in every format of opts.RenderFormats.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, c coloring.Coloring, opts Options) (map[string][]byte, error) {
	if err := ValidateRenderFormats(opts.RenderFormats); err != nil {
		return nil, err
	}

	dot := nodelink.ToDOT(g, c, opts.NodelinkOptions())
	artifacts := make(map[string][]byte, len(opts.RenderFormats))
	hooks := observability.Pipeline()

	for _, format := range opts.RenderFormats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		hooks.OnRenderStart(ctx, format)
		start := time.Now()

		data, err := nodelink.Render(ctx, dot, format)
		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data

		r.Logger.Debug("rendered format", "format", format, "bytes", len(data))
	}

	return artifacts, nil
}
