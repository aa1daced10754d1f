package io

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/chromatic/pkg/coloring"
	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
)

func star() (*graph.Graph, coloring.Coloring) {
	g := graph.FromEdges([]graph.Edge{{From: 3, To: 1}, {From: 3, To: 2}})
	return g, coloring.Greedy(g)
}

func TestWriteText(t *testing.T) {
	g, c := star()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, g, c))

	want := "Vertex 3: Color 0\nVertex 1: Color 1\nVertex 2: Color 1\nNumber of colors: 2\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	_, c := star()

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, "greedy", c))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "greedy", doc.Algorithm)
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, []Assignment{{1, 1}, {2, 1}, {3, 0}}, doc.Colors)
}

func TestNewDocumentExtremeIDs(t *testing.T) {
	g := graph.FromEdges([]graph.Edge{
		{From: math.MinInt64 + 1, To: 5},
		{From: 5, To: math.MaxInt64},
	})
	doc := NewDocument("greedy", coloring.Greedy(g))

	want := []Assignment{{math.MinInt64 + 1, 0}, {5, 1}, {math.MaxInt64, 0}}
	assert.Equal(t, want, doc.Colors)
}

func TestWriteFormats(t *testing.T) {
	g, c := star()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "", "rlf", g, c))
	assert.Contains(t, buf.String(), "Number of colors: 2")

	err := Write(&buf, "yaml", "rlf", g, c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestExportColoring(t *testing.T) {
	g, c := star()
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, ExportColoring(path, FormatJSON, "dsatur", g, c))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"algorithm": "dsatur"`)
}
