// Package core: graph storage and the two edge-insertion variants.
//
// Both variants share graphBase, which owns the adjacency storage
// (a slice of neighbor slices indexed by dense vertex id) and the
// endpoint validation applied by every AddEdge implementation.

package core

import "fmt"

// graphBase holds the state common to every variant: the fixed vertex
// count, the direction/weight flags, and the adjacency storage.
// adj[v] lists the out-neighbors of v in insertion order; exports sort.
type graphBase struct {
	vertexCount int
	directed    bool
	weighted    bool
	adj         [][]Neighbor
}

// newBase validates vertexCount and allocates one (empty) neighbor slot
// per vertex, so adj[v] exists for every v in [0, vertexCount).
func newBase(vertexCount int, directed, weighted bool) (graphBase, error) {
	if vertexCount < 0 {
		return graphBase{}, fmt.Errorf("%w: got %d", ErrNegativeVertices, vertexCount)
	}

	return graphBase{
		vertexCount: vertexCount,
		directed:    directed,
		weighted:    weighted,
		adj:         make([][]Neighbor, vertexCount),
	}, nil
}

// VertexCount returns the fixed number of vertices. O(1).
func (g *graphBase) VertexCount() int { return g.vertexCount }

// Directed reports whether edges are one-way. O(1).
func (g *graphBase) Directed() bool { return g.directed }

// Weighted reports whether edges carry caller-supplied weights. O(1).
func (g *graphBase) Weighted() bool { return g.weighted }

// checkVertex verifies that v is a valid vertex id.
func (g *graphBase) checkVertex(v int) error {
	if v < 0 || v >= g.vertexCount {
		return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrOutOfRange, v, g.vertexCount)
	}

	return nil
}

// checkEndpoints validates both endpoints of a prospective edge.
// Validation is complete before any mutation, which is what makes
// AddEdge (including the undirected mirror) all-or-nothing.
func (g *graphBase) checkEndpoints(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
	}

	return nil
}

// upsertArc inserts the arc u→v with weight w, or overwrites the weight
// when the arc already exists. Duplicate neighbors never accumulate.
// Complexity: O(deg(u)).
func (g *graphBase) upsertArc(u, v int, w float64) {
	for i, nb := range g.adj[u] {
		if nb.To == v {
			g.adj[u][i].Weight = w

			return
		}
	}
	g.adj[u] = append(g.adj[u], Neighbor{To: v, Weight: w})
}

// hasArc reports whether the arc u→v is present. O(deg(u)).
func (g *graphBase) hasArc(u, v int) bool {
	for _, nb := range g.adj[u] {
		if nb.To == v {
			return true
		}
	}

	return false
}

// fixedWeight is the weight every edge of a FixedWeightGraph carries.
const fixedWeight = 1.0

// FixedWeightGraph is the unweighted variant: every edge carries weight 1.0
// regardless of the caller-supplied value, and re-inserting an existing edge
// is a no-op (set-like semantics).
type FixedWeightGraph struct {
	graphBase
}

// NewFixedWeight creates an empty fixed-weight graph with vertexCount
// vertices. Returns ErrNegativeVertices when vertexCount < 0.
func NewFixedWeight(vertexCount int, directed bool) (*FixedWeightGraph, error) {
	base, err := newBase(vertexCount, directed, false)
	if err != nil {
		return nil, err
	}

	return &FixedWeightGraph{graphBase: base}, nil
}

// AddEdge inserts the edge u→v with weight pinned to 1.0; the weight
// argument is ignored. Undirected graphs also receive the mirror v→u.
// Duplicate insertion leaves the graph unchanged.
// Returns ErrOutOfRange or ErrSelfLoop on invalid endpoints.
// Complexity: O(deg(u) + deg(v)).
func (g *FixedWeightGraph) AddEdge(u, v int, _ float64) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}

	if !g.hasArc(u, v) {
		g.adj[u] = append(g.adj[u], Neighbor{To: v, Weight: fixedWeight})
	}
	if !g.directed && !g.hasArc(v, u) {
		g.adj[v] = append(g.adj[v], Neighbor{To: u, Weight: fixedWeight})
	}

	return nil
}

// ExplicitWeightGraph is the weighted variant: edges store the caller's
// weight, and re-inserting an existing edge overwrites its weight in place
// rather than adding a duplicate entry.
type ExplicitWeightGraph struct {
	graphBase
}

// NewExplicitWeight creates an empty explicit-weight graph with vertexCount
// vertices. Returns ErrNegativeVertices when vertexCount < 0.
func NewExplicitWeight(vertexCount int, directed bool) (*ExplicitWeightGraph, error) {
	base, err := newBase(vertexCount, directed, true)
	if err != nil {
		return nil, err
	}

	return &ExplicitWeightGraph{graphBase: base}, nil
}

// AddEdge inserts or updates the edge u→v with the given weight; undirected
// graphs keep the mirror v→u at the same weight.
// Returns ErrOutOfRange or ErrSelfLoop on invalid endpoints.
// Complexity: O(deg(u) + deg(v)).
func (g *ExplicitWeightGraph) AddEdge(u, v int, weight float64) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}

	g.upsertArc(u, v, weight)
	if !g.directed {
		g.upsertArc(v, u, weight)
	}

	return nil
}
