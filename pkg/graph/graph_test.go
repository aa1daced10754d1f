package graph

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/chromatic/pkg/errors"
)

func TestAddEdgeSymmetric(t *testing.T) {
	g := FromEdges([]Edge{{1, 2}, {2, 3}})

	n1, ok := g.Neighbors(1)
	require.True(t, ok)
	assert.Contains(t, n1, 2)

	n2, ok := g.Neighbors(2)
	require.True(t, ok)
	assert.ElementsMatch(t, []int{1, 3}, n2)

	for _, v := range g.Vertices() {
		nbrs, _ := g.Neighbors(v)
		for _, w := range nbrs {
			back, ok := g.Neighbors(w)
			require.True(t, ok)
			assert.Contains(t, back, v, "edge %d-%d is not symmetric", v, w)
		}
	}
}

func TestNeighborsAbsent(t *testing.T) {
	g := FromEdges([]Edge{{0, 1}})

	nbrs, ok := g.Neighbors(42)
	assert.False(t, ok)
	assert.Nil(t, nbrs)
	assert.False(t, g.HasVertex(42))
	assert.Equal(t, 0, g.Degree(42))
}

func TestMustNeighborsPanics(t *testing.T) {
	g := FromEdges([]Edge{{0, 1}})

	assert.Equal(t, []int{1}, g.MustNeighbors(0))

	defer func() {
		r := recover()
		require.NotNil(t, r, "MustNeighbors should panic for unknown vertex")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, errors.ErrCodeInternal))
		assert.Contains(t, err.Error(), "vertex 7")
	}()
	g.MustNeighbors(7)
}

func TestVerticesFirstSeenOrder(t *testing.T) {
	g := FromEdges([]Edge{{5, 3}, {3, 9}, {-1, 5}, {9, 0}})

	assert.Equal(t, []int{5, 3, 9, -1, 0}, g.Vertices())
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestVerticesReturnsCopy(t *testing.T) {
	g := FromEdges([]Edge{{0, 1}})
	vs := g.Vertices()
	vs[0] = 99
	assert.Equal(t, []int{0, 1}, g.Vertices())
}

func TestParallelEdgesAndSelfLoops(t *testing.T) {
	g := FromEdges([]Edge{{0, 1}, {0, 1}, {2, 2}})

	n0, _ := g.Neighbors(0)
	assert.Equal(t, []int{1, 1}, n0)

	n2, _ := g.Neighbors(2)
	assert.Equal(t, []int{2, 2}, n2)
	assert.Equal(t, 2, g.Degree(2))
	assert.Equal(t, 3, g.VertexCount())
}

func TestEmptyGraph(t *testing.T) {
	g := New()
	assert.Empty(t, g.Vertices())
	assert.Empty(t, g.Edges())
	assert.Equal(t, 0, g.VertexCount())

	var buf bytes.Buffer
	require.NoError(t, g.Dump(&buf))
	assert.Empty(t, buf.String())
}

func TestEdges(t *testing.T) {
	in := []Edge{{0, 1}, {1, 2}, {2, 0}}
	g := FromEdges(in)
	assert.Equal(t, in, g.Edges())
}

func TestDump(t *testing.T) {
	g := FromEdges([]Edge{{1, 2}, {2, 3}, {4, 4}})

	var buf bytes.Buffer
	require.NoError(t, g.Dump(&buf))

	want := "1 => 2\n2 => 1 3\n3 => 2\n4 => 4 4\n"
	assert.Equal(t, want, buf.String())
}
