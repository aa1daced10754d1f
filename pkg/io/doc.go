// Package io reads graphs from edge-list files and writes coloring results.
//
// # Edge-List Format
//
// The first line is a header and is always skipped. If it consists of two
// integers they are kept as the declared vertex and edge counts, which are
// informational only. Every following line holds an edge as two
// whitespace-separated integers; further fields are ignored and blank lines
// are skipped:
//
//	20 49
//	0 16
//	1 2
//	1 6
//
// Use [ImportEdgeList] to read a file into a graph.Graph, or [ReadEdgeList]
// to read from any io.Reader. Malformed lines produce an INVALID_FORMAT error
// naming the line number.
//
// The HTTP API also accepts edges as JSON, read with [ReadEdgesJSON]:
//
//	{"edges": [{"from": 0, "to": 1}, {"from": 1, "to": 2}]}
//
// # Export
//
// [WriteText] prints one "Vertex v: Color c" line per vertex followed by the
// color count. [WriteJSON] emits the same data as a JSON document with
// vertices sorted ascending. [ExportColoring] writes either format to a file.
package io
