package coloring

import "github.com/matzehuels/chromatic/pkg/graph"

// frame is one level of the RLF cascade: the vertex being expanded and the
// index of the next neighbor to visit.
type frame struct {
	v    int
	next int
}

// RLF colors the graph by seeding from high-degree vertices and cascading.
//
// While uncolored vertices remain, the one with the longest neighbor list is
// colored (ties go to the earliest in graph order). Coloring then cascades
// depth-first: each neighbor still uncolored at the moment it is reached is
// colored and expanded before its siblings. The cascade runs on an explicit
// stack, so dense graphs cannot exhaust the goroutine stack.
//
// This is not textbook RLF, which builds one color class at a time.
func RLF(g *graph.Graph) Coloring {
	vertices := g.Vertices()
	colors := make(map[int]int, len(vertices))
	remaining := make(map[int]bool, len(vertices))
	for _, v := range vertices {
		remaining[v] = true
	}

	var stack []frame
	for len(remaining) > 0 {
		seed, best := 0, -1
		for _, v := range vertices {
			if remaining[v] && g.Degree(v) > best {
				seed, best = v, g.Degree(v)
			}
		}

		assign(g, seed, colors)
		delete(remaining, seed)
		stack = append(stack[:0], frame{v: seed})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := g.MustNeighbors(top.v)
			if top.next >= len(nbrs) {
				stack = stack[:len(stack)-1]
				continue
			}
			w := nbrs[top.next]
			top.next++
			if remaining[w] {
				assign(g, w, colors)
				delete(remaining, w)
				stack = append(stack, frame{v: w})
			}
		}
	}
	return newColoring(colors)
}
