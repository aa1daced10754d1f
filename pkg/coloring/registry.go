package coloring

import (
	"strings"

	"github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
)

// Algorithm names a coloring algorithm.
type Algorithm string

// Supported algorithms.
const (
	AlgorithmGreedy Algorithm = "greedy"
	AlgorithmRLF    Algorithm = "rlf"
	AlgorithmDSatur Algorithm = "dsatur"
)

// Func is the signature shared by every coloring algorithm.
type Func func(*graph.Graph) Coloring

var registry = map[Algorithm]Func{
	AlgorithmGreedy: Greedy,
	AlgorithmRLF:    RLF,
	AlgorithmDSatur: DSatur,
}

// Names returns all algorithm names in a fixed order.
func Names() []Algorithm {
	return []Algorithm{AlgorithmGreedy, AlgorithmRLF, AlgorithmDSatur}
}

// Lookup returns the algorithm registered under name (case-insensitive).
func Lookup(name string) (Func, error) {
	fn, ok := registry[Algorithm(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidAlgorithm,
			"unknown algorithm %q (must be one of: greedy, rlf, dsatur)", name)
	}
	return fn, nil
}

// Run looks up name and applies it to g.
func Run(name string, g *graph.Graph) (Coloring, error) {
	fn, err := Lookup(name)
	if err != nil {
		return Coloring{}, err
	}
	return fn(g), nil
}
