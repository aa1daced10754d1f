package coloring

import (
	"slices"

	"github.com/matzehuels/chromatic/pkg/graph"
)

// Coloring is the result of a coloring algorithm.
type Coloring struct {
	// Colors maps every vertex of the graph to a color index >= 0.
	Colors map[int]int `json:"colors"`
	// Count is the number of colors used (max color + 1, or 0 when empty).
	Count int `json:"count"`
}

// Color returns the color of v and whether v is colored.
func (c Coloring) Color(v int) (int, bool) {
	col, ok := c.Colors[v]
	return col, ok
}

// Classes groups vertices by color. Index i holds the vertices colored i,
// sorted ascending.
func (c Coloring) Classes() [][]int {
	classes := make([][]int, c.Count)
	for v, col := range c.Colors {
		if col >= 0 && col < c.Count {
			classes[col] = append(classes[col], v)
		}
	}
	for _, cls := range classes {
		slices.Sort(cls)
	}
	return classes
}

// newColoring wraps a finished color map and derives the count.
func newColoring(colors map[int]int) Coloring {
	maxColor := -1
	for _, col := range colors {
		maxColor = max(maxColor, col)
	}
	return Coloring{Colors: colors, Count: maxColor + 1}
}

// usedColors collects the colors of v's already-colored neighbors.
func usedColors(g *graph.Graph, v int, colors map[int]int) map[int]struct{} {
	used := make(map[int]struct{})
	for _, n := range g.MustNeighbors(v) {
		if col, ok := colors[n]; ok {
			used[col] = struct{}{}
		}
	}
	return used
}

// smallestFree returns the smallest non-negative integer not in used.
func smallestFree(used map[int]struct{}) int {
	col := 0
	for {
		if _, taken := used[col]; !taken {
			return col
		}
		col++
	}
}

// assign gives v the smallest color not used by its colored neighbors.
func assign(g *graph.Graph, v int, colors map[int]int) int {
	col := smallestFree(usedColors(g, v, colors))
	colors[v] = col
	return col
}
