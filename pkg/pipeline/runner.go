package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/chromatic/pkg/coloring"
	"github.com/matzehuels/chromatic/pkg/graph"
	pkgio "github.com/matzehuels/chromatic/pkg/io"
	"github.com/matzehuels/chromatic/pkg/observability"
)

// Runner executes pipeline stages with logging and instrumentation.
// Both the CLI and the server use it.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → color → render pipeline on opts.Input.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	el, loadTime, err := r.Load(ctx, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result, err := r.Process(ctx, opts.Input, el, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// Process runs the color and render stages on an already parsed edge list.
// source labels the input in logs and hooks.
func (r *Runner) Process(ctx context.Context, source string, el *pkgio.EdgeList, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.New(),
		Source:    source,
		EdgeList:  el,
		Graph:     el.Graph(),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.VertexCount = result.Graph.VertexCount()
	result.Stats.EdgeCount = result.Graph.EdgeCount()
	logger := opts.Logger.With("run", result.RunID.String()[:8])

	logger.Debug("built graph",
		"source", source,
		"vertices", result.Stats.VertexCount,
		"edges", result.Stats.EdgeCount)

	// Stage 2: Color
	colorStart := time.Now()
	for _, name := range opts.ExpandAlgorithms() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		run, err := r.Color(ctx, result.Graph, name, opts.Verify)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		result.Runs = append(result.Runs, run)
		logger.Info("colored graph",
			"algorithm", run.Algorithm,
			"colors", run.Coloring.Count,
			"duration", run.Duration)
	}
	result.Stats.ColorTime = time.Since(colorStart)

	// Stage 3: Render
	if len(opts.RenderFormats) == 0 {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result.Graph, result.Runs[0].Coloring, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered outputs",
		"formats", opts.RenderFormats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the edge-list file at path.
func (r *Runner) Load(ctx context.Context, path string) (*pkgio.EdgeList, time.Duration, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()

	el, err := pkgio.ImportEdgeList(path)
	elapsed := time.Since(start)
	if err != nil {
		hooks.OnLoadComplete(ctx, path, 0, 0, elapsed, err)
		return nil, elapsed, err
	}
	hooks.OnLoadComplete(ctx, path, countVertices(el), len(el.Edges), elapsed, nil)

	r.Logger.Debug("loaded edge list",
		"path", path,
		"edges", len(el.Edges),
		"declared_vertices", el.DeclaredVertices,
		"declared_edges", el.DeclaredEdges,
		"duration", elapsed)
	return el, elapsed, nil
}

// LoadReader parses an edge list from rd. When asJSON is set, rd holds a
// {"edges": [...]} document instead of the text format.
func (r *Runner) LoadReader(ctx context.Context, source string, rd io.Reader, asJSON bool) (*pkgio.EdgeList, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	var (
		el  *pkgio.EdgeList
		err error
	)
	if asJSON {
		el, err = pkgio.ReadEdgesJSON(rd)
	} else {
		el, err = pkgio.ReadEdgeList(rd)
	}
	if err != nil {
		hooks.OnLoadComplete(ctx, source, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnLoadComplete(ctx, source, countVertices(el), len(el.Edges), time.Since(start), nil)
	return el, nil
}

// Color runs one algorithm on g and, when verify is set, checks the result.
func (r *Runner) Color(ctx context.Context, g *graph.Graph, algorithm string, verify bool) (Run, error) {
	fn, err := coloring.Lookup(algorithm)
	if err != nil {
		return Run{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnColorStart(ctx, algorithm, g.VertexCount())
	start := time.Now()
	c := fn(g)
	elapsed := time.Since(start)

	if verify {
		if err := coloring.Verify(g, c); err != nil {
			hooks.OnColorComplete(ctx, algorithm, c.Count, elapsed, err)
			return Run{}, fmt.Errorf("%s: %w", algorithm, err)
		}
		r.Logger.Debug("verified coloring", "algorithm", algorithm)
	}
	hooks.OnColorComplete(ctx, algorithm, c.Count, elapsed, nil)

	return Run{Algorithm: algorithm, Coloring: c, Duration: elapsed}, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func countVertices(el *pkgio.EdgeList) int {
	seen := make(map[int]struct{}, len(el.Edges))
	for _, e := range el.Edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	return len(seen)
}
