package coloring

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
)

type namedFunc struct {
	name string
	fn   Func
}

var algorithms = []namedFunc{
	{"greedy", Greedy},
	{"rlf", RLF},
	{"dsatur", DSatur},
}

func edges(pairs ...[2]int) *graph.Graph {
	g := graph.New()
	for _, p := range pairs {
		g.AddEdge(p[0], p[1])
	}
	return g
}

func randomGraph(seed uint64, n, m int) *graph.Graph {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	g := graph.New()
	for i := 0; i < m; i++ {
		g.AddEdge(r.IntN(n), r.IntN(n))
	}
	return g
}

func TestEndToEndExamples(t *testing.T) {
	tests := []struct {
		name      string
		g         *graph.Graph
		wantCount int
	}{
		{"triangle", edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}), 3},
		{"single edge", edges([2]int{0, 1}), 2},
		{"star", edges([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}), 2},
		{"self-loop only", edges([2]int{5, 5}), 1},
		{"self-loop with edge", edges([2]int{0, 0}, [2]int{0, 1}), 2},
		{"parallel edges", edges([2]int{0, 1}, [2]int{1, 0}, [2]int{0, 1}), 2},
		{"negative ids", edges([2]int{-3, -2}, [2]int{-2, -1}), 2},
	}

	for _, tt := range tests {
		for _, alg := range algorithms {
			t.Run(tt.name+"/"+alg.name, func(t *testing.T) {
				c := alg.fn(tt.g)
				assert.Equal(t, tt.wantCount, c.Count)
				require.NoError(t, Verify(tt.g, c))
			})
		}
	}
}

func TestTriangleDistinctColors(t *testing.T) {
	g := edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			c := alg.fn(g)
			assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2}, c.Colors)
		})
	}
}

func TestStarLeavesShareColor(t *testing.T) {
	g := edges([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			c := alg.fn(g)
			leaf := c.Colors[1]
			assert.NotEqual(t, c.Colors[0], leaf)
			assert.Equal(t, leaf, c.Colors[2])
			assert.Equal(t, leaf, c.Colors[3])
		})
	}
}

func TestEmptyGraph(t *testing.T) {
	g := graph.New()
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			c := alg.fn(g)
			assert.NotNil(t, c.Colors)
			assert.Empty(t, c.Colors)
			assert.Equal(t, 0, c.Count)
			assert.NoError(t, Verify(g, c))
		})
	}
}

func TestGreedyOrderDependence(t *testing.T) {
	// Path 0-1-2-3, but 3 is seen before 2, so 2 meets two colored neighbors.
	g := edges([2]int{0, 1}, [2]int{3, 2}, [2]int{1, 2})

	c := Greedy(g)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 0, 2: 2}, c.Colors)
	assert.Equal(t, 3, c.Count)
	require.NoError(t, Verify(g, c))

	assert.Equal(t, 2, DSatur(g).Count)
	assert.Equal(t, 2, RLF(g).Count)
}

func TestRLFCascadeOrder(t *testing.T) {
	// Path 0-1-2-3-4: seed is 1 (first vertex of maximum degree), the cascade
	// visits 0 before walking 2, 3, 4.
	g := edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	c := RLF(g)
	assert.Equal(t, map[int]int{1: 0, 0: 1, 2: 1, 3: 0, 4: 1}, c.Colors)
	assert.Equal(t, 2, c.Count)
}

func TestRLFReseedsDisconnectedComponents(t *testing.T) {
	// The first seed is 10, the only vertex of degree 2; once its component is
	// done, the outer loop reseeds from 0.
	g := edges([2]int{0, 1}, [2]int{11, 10}, [2]int{10, 12})

	c := RLF(g)
	assert.Equal(t, 0, c.Colors[0])
	assert.Equal(t, 1, c.Colors[1])
	assert.Equal(t, 0, c.Colors[10])
	assert.Equal(t, 1, c.Colors[11])
	assert.Equal(t, 1, c.Colors[12])
	require.NoError(t, Verify(g, c))
}

func TestRLFLongPath(t *testing.T) {
	const n = 200_000
	g := graph.New()
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1)
	}

	c := RLF(g)
	assert.Len(t, c.Colors, n)
	assert.Equal(t, 2, c.Count)
	require.NoError(t, Verify(g, c))
}

func TestDSaturTieBreakFirstSeen(t *testing.T) {
	g := edges([2]int{0, 1}, [2]int{2, 3})

	c := DSatur(g)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 0, 3: 1}, c.Colors)
}

// rescanDSatur recomputes every saturation degree on each step.
func rescanDSatur(g *graph.Graph) map[int]int {
	colors := map[int]int{}
	for range g.Vertices() {
		pick, best := 0, -1
		for _, v := range g.Vertices() {
			if _, done := colors[v]; done {
				continue
			}
			if sat := SaturationDegree(g, v, colors); sat > best {
				pick, best = v, sat
			}
		}
		assign(g, pick, colors)
	}
	return colors
}

func TestDSaturMatchesRescan(t *testing.T) {
	graphs := map[string]*graph.Graph{
		"self loop": edges([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 2}),
		"duplicate": edges([2]int{0, 1}, [2]int{1, 0}, [2]int{1, 2}, [2]int{2, 0}),
	}
	for seed := uint64(1); seed <= 10; seed++ {
		graphs[fmt.Sprintf("seed%d", seed)] = randomGraph(seed, 80, 400)
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, rescanDSatur(g), DSatur(g).Colors)
		})
	}
}

func TestCompleteGraph(t *testing.T) {
	const n = 30
	g := graph.New()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			c := alg.fn(g)
			assert.Equal(t, n, c.Count)
			require.NoError(t, Verify(g, c))
		})
	}
}

func TestRandomGraphsProperties(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		g := randomGraph(seed, 60, 240)
		for _, alg := range algorithms {
			t.Run(fmt.Sprintf("seed%d/%s", seed, alg.name), func(t *testing.T) {
				c := alg.fn(g)

				// validity, density, coverage
				require.NoError(t, Verify(g, c))
				assert.Len(t, c.Colors, g.VertexCount())

				// determinism for a fixed graph
				again := alg.fn(g)
				assert.Equal(t, c, again)
			})
		}
	}
}

func TestAlgorithmsDoNotMutateGraph(t *testing.T) {
	g := randomGraph(7, 20, 50)
	before := g.Edges()
	adj := map[int][]int{}
	for _, v := range g.Vertices() {
		nbrs, _ := g.Neighbors(v)
		adj[v] = append([]int(nil), nbrs...)
	}

	for _, alg := range algorithms {
		alg.fn(g)
	}

	assert.Equal(t, before, g.Edges())
	for v, want := range adj {
		got, _ := g.Neighbors(v)
		assert.Equal(t, want, got)
	}
}

func TestSaturationDegree(t *testing.T) {
	g := edges([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4})

	tests := []struct {
		name   string
		v      int
		colors map[int]int
		want   int
	}{
		{"nothing colored", 0, map[int]int{}, 0},
		{"distinct colors", 0, map[int]int{1: 0, 2: 1, 3: 2}, 3},
		{"repeated colors count once", 0, map[int]int{1: 0, 2: 0, 3: 1, 4: 1}, 2},
		{"own color ignored", 1, map[int]int{1: 5}, 0},
		{"leaf sees center", 1, map[int]int{0: 4}, 1},
		{"unknown vertex", 99, map[int]int{0: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SaturationDegree(g, tt.v, tt.colors))
		})
	}
}

func TestSmallestFree(t *testing.T) {
	tests := []struct {
		used []int
		want int
	}{
		{nil, 0},
		{[]int{1, 2}, 0},
		{[]int{0, 1, 2}, 3},
		{[]int{0, 2, 3}, 1},
	}
	for _, tt := range tests {
		used := make(map[int]struct{})
		for _, c := range tt.used {
			used[c] = struct{}{}
		}
		assert.Equal(t, tt.want, smallestFree(used), "used=%v", tt.used)
	}
}

func TestClasses(t *testing.T) {
	c := Coloring{Colors: map[int]int{3: 0, 1: 0, 2: 1, 0: 2}, Count: 3}
	assert.Equal(t, [][]int{{1, 3}, {2}, {0}}, c.Classes())

	col, ok := c.Color(2)
	assert.True(t, ok)
	assert.Equal(t, 1, col)

	_, ok = c.Color(9)
	assert.False(t, ok)
}

func TestVerifyRejects(t *testing.T) {
	g := edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 2})

	tests := []struct {
		name string
		c    Coloring
		msg  string
	}{
		{"missing vertex", Coloring{Colors: map[int]int{0: 0, 1: 1}, Count: 2}, "vertex 2 has no color"},
		{"extra vertex", Coloring{Colors: map[int]int{0: 0, 1: 1, 2: 0, 9: 0}, Count: 2}, "not in the graph"},
		{"negative color", Coloring{Colors: map[int]int{0: 0, 1: -1, 2: 0}, Count: 1}, "negative"},
		{"conflict", Coloring{Colors: map[int]int{0: 0, 1: 0, 2: 1}, Count: 2}, "share color"},
		{"wrong count", Coloring{Colors: map[int]int{0: 0, 1: 1, 2: 0}, Count: 3}, "count is 3"},
		{"gap", Coloring{Colors: map[int]int{0: 0, 1: 2, 2: 0}, Count: 3}, "color 1 is unused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(g, tt.c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidColoring))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestVerifyAcceptsSelfLoop(t *testing.T) {
	g := edges([2]int{4, 4})
	assert.NoError(t, Verify(g, Coloring{Colors: map[int]int{4: 0}, Count: 1}))
}
