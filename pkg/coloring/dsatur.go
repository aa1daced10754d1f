package coloring

import "github.com/matzehuels/chromatic/pkg/graph"

// DSatur repeatedly colors the uncolored vertex with the highest saturation
// degree.
//
// Ties go to the earliest vertex in graph order. Textbook DSatur breaks ties
// by degree among uncolored neighbors; this variant does not.
func DSatur(g *graph.Graph) Coloring {
	vertices := g.Vertices()
	colors := make(map[int]int, len(vertices))
	remaining := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		remaining[v] = true
	}
	// sat[v] holds the distinct colors among v's colored neighbors, kept
	// only for uncolored vertices. len(sat[v]) equals SaturationDegree.
	sat := make(map[int]map[int]struct{}, len(vertices))

	for len(remaining) > 0 {
		pick, best := 0, -1
		for _, v := range vertices {
			if !remaining[v] {
				continue
			}
			if d := len(sat[v]); d > best {
				pick, best = v, d
			}
		}
		col := assign(g, pick, colors)
		delete(remaining, pick)
		delete(sat, pick)

		nbrs, _ := g.Neighbors(pick)
		for _, n := range nbrs {
			if !remaining[n] {
				continue
			}
			if sat[n] == nil {
				sat[n] = make(map[int]struct{})
			}
			sat[n][col] = struct{}{}
		}
	}
	return newColoring(colors)
}

// SaturationDegree returns the number of distinct colors among v's neighbors
// that have an entry in colors. It returns 0 for vertices not in g.
func SaturationDegree(g *graph.Graph, v int, colors map[int]int) int {
	nbrs, ok := g.Neighbors(v)
	if !ok {
		return 0
	}
	seen := make(map[int]struct{})
	for _, n := range nbrs {
		if col, ok := colors[n]; ok {
			seen[col] = struct{}{}
		}
	}
	return len(seen)
}
