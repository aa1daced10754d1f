package coloring_test

import (
	"fmt"

	"github.com/matzehuels/chromatic/pkg/coloring"
	"github.com/matzehuels/chromatic/pkg/graph"
)

func ExampleDSatur() {
	// A 4-cycle is bipartite.
	g := graph.FromEdges([]graph.Edge{
		{From: 0, To: 1},
		{From: 1, To: 2},
		{From: 2, To: 3},
		{From: 3, To: 0},
	})

	c := coloring.DSatur(g)
	fmt.Println("colors:", c.Count)
	fmt.Println("classes:", c.Classes())
	// Output:
	// colors: 2
	// classes: [[0 2] [1 3]]
}

func ExampleLookup() {
	g := graph.FromEdges([]graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}})

	for _, name := range coloring.Names() {
		fn, _ := coloring.Lookup(string(name))
		fmt.Printf("%s: %d\n", name, fn(g).Count)
	}
	// Output:
	// greedy: 3
	// rlf: 3
	// dsatur: 3
}

func ExampleVerify() {
	g := graph.FromEdges([]graph.Edge{{From: 0, To: 1}})

	bad := coloring.Coloring{Colors: map[int]int{0: 0, 1: 0}, Count: 1}
	fmt.Println(coloring.Verify(g, bad))
	// Output:
	// INVALID_COLORING: adjacent vertices 0 and 1 share color 0
}
