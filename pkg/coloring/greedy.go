package coloring

import "github.com/matzehuels/chromatic/pkg/graph"

// Greedy colors vertices one at a time in graph order.
//
// When a vertex is processed, only neighbors earlier in the order have a
// color, so the result depends on vertex order. This is the defining weakness
// of greedy coloring and is kept as is.
func Greedy(g *graph.Graph) Coloring {
	vertices := g.Vertices()
	colors := make(map[int]int, len(vertices))
	for _, v := range vertices {
		assign(g, v, colors)
	}
	return newColoring(colors)
}
