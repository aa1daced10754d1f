// Package graph provides the undirected adjacency-list graph that the coloring
// algorithms consume.
//
// # Model
//
// A [Graph] maps integer vertex identifiers to ordered neighbor lists. Vertices
// exist only as endpoints of edges: there is no AddVertex. [Graph.AddEdge]
// appends each endpoint to the other's list, so the adjacency relation is
// always symmetric. Parallel edges produce duplicate entries and a self-loop
// makes a vertex its own neighbor; neither is filtered.
//
// # Ordering
//
// [Graph.Vertices] returns vertices in the order they were first seen as edge
// endpoints, and neighbor lists keep append order. Every algorithm in
// pkg/coloring walks the graph in this order, which makes results reproducible
// for a fixed edge sequence.
//
// # Usage
//
//	g := graph.FromEdges([]graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
//	nbrs, ok := g.Neighbors(1) // [0 2], true
//	_ = g.Dump(os.Stdout)      // "0 => 1", "1 => 0 2", "2 => 1"
//
// A Graph is not safe for concurrent mutation. Once built it is only read, and
// concurrent readers are fine.
package graph
