// Package pipeline provides the load → color → render pipeline for chromatic.
//
// The CLI and the HTTP server both run colorings through this package, so
// option defaults, validation, logging and instrumentation behave the same
// for every entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read an edge list and build the adjacency-list graph
//  2. Color: Run one or more coloring algorithms, optionally verifying each
//  3. Render: Draw the first coloring as a node-link diagram (DOT, SVG, PNG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:      "graph.txt",
//	    Algorithms: []string{"dsatur"},
//	    Verify:     true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Runs[0].Coloring.Count)
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/chromatic/pkg/coloring"
	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	pkgio "github.com/matzehuels/chromatic/pkg/io"
	"github.com/matzehuels/chromatic/pkg/render/nodelink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// DefaultAlgorithm is the algorithm used when none is requested.
const DefaultAlgorithm = string(coloring.AlgorithmDSatur)

// AlgorithmAll expands to every registered algorithm.
const AlgorithmAll = "all"

// Output formats for colorings.
const (
	FormatText = pkgio.FormatText
	FormatJSON = pkgio.FormatJSON
)

// ValidFormats is the set of supported coloring output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// ValidRenderFormats is the set of supported drawing formats.
var ValidRenderFormats = map[string]bool{
	nodelink.FormatDOT: true,
	nodelink.FormatSVG: true,
	nodelink.FormatPNG: true,
}

// ValidAlgorithms is the set of accepted algorithm names, including "all".
var ValidAlgorithms = map[string]bool{
	string(coloring.AlgorithmGreedy): true,
	string(coloring.AlgorithmRLF):    true,
	string(coloring.AlgorithmDSatur): true,
	AlgorithmAll:                     true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Input string `json:"input,omitempty"`

	// Color options
	Algorithms []string `json:"algorithms,omitempty"`
	Verify     bool     `json:"verify,omitempty"`

	// Output options
	Format string `json:"format,omitempty"`

	// Render options
	RenderFormats []string `json:"render_formats,omitempty"`
	Detailed      bool     `json:"detailed,omitempty"`
	Palette       []string `json:"palette,omitempty"`

	// Runtime options (not serialized). A nil Logger means the runner's.
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and API responses.
	RunID uuid.UUID

	// Source names where the edge list came from (a path or "request").
	Source string

	// EdgeList is the parsed input, including any declared header counts.
	EdgeList *pkgio.EdgeList

	// Graph is the adjacency-list graph built from EdgeList.
	Graph *graph.Graph

	// Runs holds one entry per requested algorithm, in request order.
	Runs []Run

	// Artifacts contains rendered drawings keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Run is the outcome of one coloring algorithm.
type Run struct {
	Algorithm string
	Coloring  coloring.Coloring
	Duration  time.Duration
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount int
	EdgeCount   int
	LoadTime    time.Duration
	ColorTime   time.Duration
	RenderTime  time.Duration
}

// Best returns the run that used the fewest colors. Ties go to the earlier
// run. It returns false when there are no runs.
func (r *Result) Best() (Run, bool) {
	if len(r.Runs) == 0 {
		return Run{}, false
	}
	best := r.Runs[0]
	for _, run := range r.Runs[1:] {
		if run.Coloring.Count < best.Coloring.Count {
			best = run
		}
	}
	return best, true
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateAlgorithm checks that an algorithm name is valid.
func ValidateAlgorithm(name string) error {
	if !ValidAlgorithms[name] {
		return errors.New(errors.ErrCodeInvalidAlgorithm,
			"invalid algorithm: %q (must be one of: greedy, rlf, dsatur, all)", name)
	}
	return nil
}

// ValidateFormat checks that an output format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, json)", format)
	}
	return nil
}

// ValidateRenderFormats checks that all drawing formats are valid.
func ValidateRenderFormats(formats []string) error {
	for _, f := range formats {
		if !ValidRenderFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid render format: %q (must be one of: dot, svg, png)", f)
		}
	}
	return nil
}

// ValidatePalette checks that every palette entry is a hex color.
func ValidatePalette(palette []string) error {
	if !nodelink.Palette(palette).Valid() {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid palette: every entry must be a #rrggbb color")
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields and normalizes algorithm names. Logger is
// left alone so the runner can supply its own.
func (o *Options) SetDefaults() {
	if len(o.Algorithms) == 0 {
		o.Algorithms = []string{DefaultAlgorithm}
	}
	algos := make([]string, len(o.Algorithms))
	for i, a := range o.Algorithms {
		algos[i] = strings.ToLower(strings.TrimSpace(a))
	}
	o.Algorithms = algos
	if o.Format == "" {
		o.Format = FormatText
	}
}

// Validate applies defaults and checks every field.
func (o *Options) Validate() error {
	o.SetDefaults()
	for _, a := range o.Algorithms {
		if err := ValidateAlgorithm(a); err != nil {
			return err
		}
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := ValidateRenderFormats(o.RenderFormats); err != nil {
		return err
	}
	return ValidatePalette(o.Palette)
}

// ExpandAlgorithms returns the concrete algorithms to run, with "all"
// expanded and duplicates removed, in request order.
func (o *Options) ExpandAlgorithms() []string {
	var out []string
	for _, a := range o.Algorithms {
		if a == AlgorithmAll {
			for _, name := range coloring.Names() {
				if !slices.Contains(out, string(name)) {
					out = append(out, string(name))
				}
			}
			continue
		}
		if !slices.Contains(out, a) {
			out = append(out, a)
		}
	}
	return out
}

// NodelinkOptions returns the drawing options for this run.
func (o *Options) NodelinkOptions() nodelink.Options {
	return nodelink.Options{
		Detailed: o.Detailed,
		Palette:  nodelink.Palette(o.Palette),
	}
}
