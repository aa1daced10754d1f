// Package pkg provides the core libraries for chromatic graph coloring.
//
// # Overview
//
// Chromatic assigns a color to every vertex of an undirected graph so that
// no edge joins two vertices of the same color, using one of three
// heuristics. The pkg directory is organized as:
//
//  1. [graph] - Adjacency-list graph store with first-seen vertex order
//  2. [coloring] - Greedy, RLF and DSatur, plus verification
//  3. [io] - Edge-list parsing and coloring export (text, JSON)
//  4. [render/nodelink] - Colored node-link drawings (DOT, SVG, PNG)
//  5. [pipeline] - Orchestration (load → color → render)
//  6. [errors] and [observability] - Coded errors and instrumentation hooks
//
// # Architecture
//
// The typical data flow:
//
//	Edge-list file or request body
//	         ↓
//	    [io] package (parse edges)
//	         ↓
//	    [graph] package (adjacency lists)
//	         ↓
//	    [coloring] package (assign colors)
//	         ↓
//	    text / JSON / DOT / SVG / PNG output
//
// # Quick Start
//
//	el, _ := io.ImportEdgeList("graph.txt")
//	g := el.Graph()
//	c := coloring.DSatur(g)
//	if err := coloring.Verify(g, c); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.Count)
package pkg
