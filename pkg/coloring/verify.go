package coloring

import (
	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
)

// Verify checks that c is a complete, dense, proper coloring of g.
//
// It reports the first violation found:
//   - a graph vertex without a color, or a colored vertex not in the graph
//   - a negative color
//   - two adjacent distinct vertices sharing a color (self-loops are exempt)
//   - Count different from max color + 1, or an unused color below Count
func Verify(g *graph.Graph, c Coloring) error {
	vertices := g.Vertices()
	if len(c.Colors) != len(vertices) {
		for v := range c.Colors {
			if !g.HasVertex(v) {
				return errors.New(errors.ErrCodeInvalidColoring, "vertex %d is colored but not in the graph", v)
			}
		}
	}

	maxColor := -1
	for _, v := range vertices {
		col, ok := c.Colors[v]
		if !ok {
			return errors.New(errors.ErrCodeInvalidColoring, "vertex %d has no color", v)
		}
		if col < 0 {
			return errors.New(errors.ErrCodeInvalidColoring, "vertex %d has negative color %d", v, col)
		}
		maxColor = max(maxColor, col)
	}

	for _, v := range vertices {
		col := c.Colors[v]
		for _, w := range g.MustNeighbors(v) {
			if w != v && c.Colors[w] == col {
				return errors.New(errors.ErrCodeInvalidColoring, "adjacent vertices %d and %d share color %d", v, w, col)
			}
		}
	}

	if c.Count != maxColor+1 {
		return errors.New(errors.ErrCodeInvalidColoring, "count is %d but largest color is %d", c.Count, maxColor)
	}
	used := make([]bool, c.Count)
	for _, col := range c.Colors {
		used[col] = true
	}
	for col, ok := range used {
		if !ok {
			return errors.New(errors.ErrCodeInvalidColoring, "color %d is unused", col)
		}
	}
	return nil
}
