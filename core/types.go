// Package core defines the Graph contract for dense integer-vertex graphs,
// its two concrete edge-insertion variants, and the three canonical
// representation exports (adjacency list, adjacency matrix, incidence matrix).
//
// Vertices are the integers 0..VertexCount-1, fixed at construction time.
// Graphs are simple: no self-loops, at most one edge per ordered pair.
// Undirected graphs keep the adjacency symmetric on every insertion.
//
// This file declares Neighbor, the Graph interface, GraphOption,
// sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrOutOfRange       - vertex index outside [0, VertexCount).
//	ErrInvalidArgument  - structurally invalid input (root sentinel).
//	ErrSelfLoop         - edge with identical endpoints.
//	ErrNegativeVertices - negative vertex count at construction.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
//
// ErrOutOfRange and ErrInvalidArgument are the two root categories; the
// remaining sentinels wrap ErrInvalidArgument, so callers may branch with
// errors.Is at either granularity.
var (
	// ErrOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrOutOfRange = errors.New("core: vertex out of range")

	// ErrInvalidArgument indicates a structurally invalid input.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrSelfLoop indicates an attempted edge with identical endpoints.
	ErrSelfLoop = fmt.Errorf("%w: self-loops are not allowed", ErrInvalidArgument)

	// ErrNegativeVertices indicates a negative vertex count at construction.
	ErrNegativeVertices = fmt.Errorf("%w: vertex count must be non-negative", ErrInvalidArgument)
)

// Neighbor is a single adjacency entry: the target vertex and the edge weight.
// Fixed-weight graphs always carry Weight == 1.0.
type Neighbor struct {
	// To is the neighboring vertex id.
	To int

	// Weight is the cost of the edge leading to To.
	Weight float64
}

// Graph is the common contract of all graph variants.
//
// AddEdge is the only mutator; the three representation methods are pure
// queries returning independent deep copies, so read-only use of one Graph
// from multiple goroutines is safe. Concurrent mutation must be serialized
// by the caller.
type Graph interface {
	// VertexCount returns the fixed number of vertices n; ids are 0..n-1.
	VertexCount() int

	// Directed reports whether edges are one-way.
	Directed() bool

	// Weighted reports whether edges carry caller-supplied weights.
	Weighted() bool

	// AddEdge inserts or updates the edge u→v per the variant's policy,
	// mirroring v→u for undirected graphs. Both sides apply or neither.
	// Returns ErrOutOfRange or ErrSelfLoop on invalid endpoints.
	AddEdge(u, v int, weight float64) error

	// AdjacencyList returns a fresh copy of the adjacency, indexed by
	// vertex id, each neighbor slice sorted ascending by Neighbor.To.
	AdjacencyList() [][]Neighbor

	// AdjacencyMatrix returns a fresh n×n matrix: entry [u][v] is the edge
	// weight when u→v exists (1.0 for fixed-weight graphs), 0.0 otherwise.
	// The diagonal is always 0.0.
	AdjacencyMatrix() [][]float64

	// IncidenceMatrix returns a fresh n×m matrix, one column per edge in
	// canonical order: directed edges sorted by (u,v) with -1 at the source
	// row and +1 at the target row; undirected edges sorted by (min,max)
	// with +1 at both endpoint rows.
	IncidenceMatrix() [][]int
}

// GraphOption configures directedness and weightedness before creation.
type GraphOption func(*graphConfig)

// graphConfig collects flags resolved by New.
type graphConfig struct {
	directed bool
	weighted bool
}

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithWeighted makes New return an explicit-weight graph; edges then store
// caller-supplied weights instead of the fixed 1.0.
func WithWeighted() GraphOption {
	return func(c *graphConfig) { c.weighted = true }
}

// New creates an empty Graph with the given vertex count and options.
// By default the graph is undirected and fixed-weight.
// Returns ErrNegativeVertices when vertexCount < 0.
// Complexity: O(V).
func New(vertexCount int, opts ...GraphOption) (Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weighted {
		return NewExplicitWeight(vertexCount, cfg.directed)
	}

	return NewFixedWeight(vertexCount, cfg.directed)
}
