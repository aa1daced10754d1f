package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
)

// maxLineSize bounds a single edge-list line.
const maxLineSize = 1 << 20

// EdgeList is a parsed edge-list file.
type EdgeList struct {
	// DeclaredVertices and DeclaredEdges come from the header when it holds
	// two integers, and are 0 otherwise. They are not checked against Edges.
	DeclaredVertices int
	DeclaredEdges    int

	// Edges holds the edges in file order.
	Edges []graph.Edge
}

// Graph builds a graph from the edges in file order.
func (l *EdgeList) Graph() *graph.Graph {
	return graph.FromEdges(l.Edges)
}

// ReadEdgeList parses an edge list from r. The first line is treated as a
// header; see the package documentation for the format. ReadEdgeList does
// not close r.
func ReadEdgeList(r io.Reader) (*EdgeList, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	out := &EdgeList{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if lineNo == 1 {
			out.DeclaredVertices, out.DeclaredEdges = parseHeader(fields)
			continue
		}
		if len(fields) == 0 {
			continue
		}
		e, err := parseEdge(fields, lineNo, sc.Text())
		if err != nil {
			// A line cut short by a failed read is reported as the read error.
			if rerr := sc.Err(); rerr != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, rerr, "read edge list")
			}
			return nil, err
		}
		out.Edges = append(out.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read edge list")
	}
	return out, nil
}

func parseEdge(fields []string, lineNo int, line string) (graph.Edge, error) {
	if len(fields) < 2 {
		return graph.Edge{}, errors.New(errors.ErrCodeInvalidFormat, "line %d: expected two vertex ids, got %q", lineNo, line)
	}
	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return graph.Edge{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d: bad vertex id %q", lineNo, fields[0])
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return graph.Edge{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d: bad vertex id %q", lineNo, fields[1])
	}
	return graph.Edge{From: from, To: to}, nil
}

func parseHeader(fields []string) (vertices, edges int) {
	if len(fields) != 2 {
		return 0, 0
	}
	v, err1 := strconv.Atoi(fields[0])
	e, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0
	}
	return v, e
}

// ImportEdgeList reads the edge-list file at path and returns the parsed list.
func ImportEdgeList(path string) (*EdgeList, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadEdgeList(f)
}

// jsonEdge uses pointers so a missing endpoint is distinguishable from 0.
type jsonEdge struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

type edgesDocument struct {
	Edges []jsonEdge `json:"edges"`
}

// ReadEdgesJSON decodes {"edges": [{"from": u, "to": v}, ...]} from r.
// Every edge must carry both endpoints.
func ReadEdgesJSON(r io.Reader) (*EdgeList, error) {
	var doc edgesDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode edges")
	}
	out := &EdgeList{Edges: make([]graph.Edge, 0, len(doc.Edges))}
	for i, e := range doc.Edges {
		switch {
		case e.From == nil:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "edge %d: missing \"from\"", i)
		case e.To == nil:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "edge %d: missing \"to\"", i)
		}
		out.Edges = append(out.Edges, graph.Edge{From: *e.From, To: *e.To})
	}
	return out, nil
}
