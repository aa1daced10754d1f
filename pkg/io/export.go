package io

import (
	"bufio"
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/chromatic/pkg/coloring"
	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
)

// Export formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Assignment is one vertex/color pair in the JSON export.
type Assignment struct {
	Vertex int `json:"vertex"`
	Color  int `json:"color"`
}

// Document is the JSON export of a coloring.
type Document struct {
	Algorithm string       `json:"algorithm,omitempty"`
	Count     int          `json:"count"`
	Colors    []Assignment `json:"colors"`
}

// NewDocument converts a coloring to its JSON form, vertices ascending.
func NewDocument(algorithm string, c coloring.Coloring) Document {
	doc := Document{
		Algorithm: algorithm,
		Count:     c.Count,
		Colors:    make([]Assignment, 0, len(c.Colors)),
	}
	for v, col := range c.Colors {
		doc.Colors = append(doc.Colors, Assignment{Vertex: v, Color: col})
	}
	slices.SortFunc(doc.Colors, func(a, b Assignment) int { return cmp.Compare(a.Vertex, b.Vertex) })
	return doc
}

// WriteJSON encodes the coloring as an indented JSON [Document].
func WriteJSON(w io.Writer, algorithm string, c coloring.Coloring) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(algorithm, c)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteText prints "Vertex v: Color c" for every vertex of g in graph order,
// then "Number of colors: n".
func WriteText(w io.Writer, g *graph.Graph, c coloring.Coloring) error {
	bw := bufio.NewWriter(w)
	for _, v := range g.Vertices() {
		fmt.Fprintf(bw, "Vertex %d: Color %d\n", v, c.Colors[v])
	}
	fmt.Fprintf(bw, "Number of colors: %d\n", c.Count)
	return bw.Flush()
}

// Write dispatches on format (FormatText or FormatJSON).
func Write(w io.Writer, format, algorithm string, g *graph.Graph, c coloring.Coloring) error {
	switch format {
	case FormatText, "":
		return WriteText(w, g, c)
	case FormatJSON:
		return WriteJSON(w, algorithm, c)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid output format %q (must be text or json)", format)
	}
}

// ExportColoring writes the coloring to a file at path in the given format.
func ExportColoring(path, format, algorithm string, g *graph.Graph, c coloring.Coloring) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, format, algorithm, g, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
