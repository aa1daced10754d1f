// Package coloring implements heuristic vertex coloring of undirected graphs.
//
// Three algorithms are provided, each a pure function of a [graph.Graph]:
//
//   - [Greedy]: colors vertices in graph order, each with the smallest color
//     not already used by a colored neighbor.
//   - [RLF]: seeds from the remaining vertex with the longest neighbor list and
//     cascades depth-first through uncolored neighbors.
//   - [DSatur]: repeatedly colors the remaining vertex with the highest
//     saturation degree (see [SaturationDegree]).
//
// All three share one color-assignment rule: start at 0 and increment while
// the candidate is used by an already-colored neighbor. Colors are therefore
// dense, and [Coloring.Count] equals the largest color plus one.
//
// None of the algorithms is exact. The number of colors used is an upper
// bound on the chromatic number and depends on vertex order; see the package
// graph documentation for how that order is fixed.
//
// # Verification
//
// [Verify] checks a result against the graph: proper (adjacent vertices
// differ, self-loops exempt), dense, and covering every vertex exactly once.
//
// # Registry
//
// Algorithms are addressable by name for the CLI and HTTP API:
//
//	fn, err := coloring.Lookup("dsatur")
//	c := fn(g)
//	fmt.Println(c.Count)
package coloring
