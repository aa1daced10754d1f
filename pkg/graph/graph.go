package graph

import (
	"bufio"
	"fmt"
	"io"

	"github.com/matzehuels/chromatic/pkg/errors"
)

// Edge is an undirected edge between two vertices, as read from an edge list.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Graph is an undirected graph stored as adjacency lists.
//
// The zero value is not usable - use New or FromEdges.
type Graph struct {
	adj   map[int][]int
	order []int  // vertices in first-seen order
	edges []Edge // edges in insertion order
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{adj: make(map[int][]int)}
}

// FromEdges builds a graph by adding every edge in order.
func FromEdges(edges []Edge) *Graph {
	g := New()
	for _, e := range edges {
		g.AddEdge(e.From, e.To)
	}
	return g
}

// AddEdge appends v to u's neighbor list and u to v's neighbor list, creating
// either vertex if needed. Self-loops and duplicates are not rejected.
func (g *Graph) AddEdge(u, v int) {
	g.touch(u)
	g.touch(v)
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.edges = append(g.edges, Edge{From: u, To: v})
}

func (g *Graph) touch(v int) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
		g.order = append(g.order, v)
	}
}

// Neighbors returns the neighbor list of v. The boolean is false when v has
// never been an edge endpoint. The returned slice must not be modified.
func (g *Graph) Neighbors(v int) ([]int, bool) {
	nbrs, ok := g.adj[v]
	return nbrs, ok
}

// MustNeighbors is like Neighbors but panics when v is not in the graph.
//
// Algorithms that only look up vertices taken from [Graph.Vertices] use it:
// a miss there means the caller's vertex source is out of sync with the graph,
// and no partial result is meaningful.
func (g *Graph) MustNeighbors(v int) []int {
	nbrs, ok := g.adj[v]
	if !ok {
		panic(errors.New(errors.ErrCodeInternal, "vertex %d is not in the graph", v))
	}
	return nbrs
}

// HasVertex reports whether v is an endpoint of at least one edge.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adj[v]
	return ok
}

// Degree returns the length of v's neighbor list (0 for unknown vertices).
// Self-loops count twice and parallel edges count once per copy.
func (g *Graph) Degree(v int) int {
	return len(g.adj[v])
}

// Vertices returns all vertices in first-seen order.
func (g *Graph) Vertices() []int {
	out := make([]int, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of AddEdge calls, duplicates included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Dump writes the adjacency structure, one "v => n1 n2 ..." line per vertex.
func (g *Graph) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range g.order {
		fmt.Fprintf(bw, "%d =>", v)
		for _, n := range g.adj[v] {
			fmt.Fprintf(bw, " %d", n)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
