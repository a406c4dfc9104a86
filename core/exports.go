// Package core: representation exports.
//
// All three exports are pure queries producing independent copies of the
// internal state; mutating a returned value never touches the graph, and
// adding edges after an export never changes values already handed out.

package core

import "sort"

// AdjacencyList returns a deep copy of the adjacency, indexed by vertex id.
// Each neighbor slice is sorted ascending by Neighbor.To, which is what
// gives every downstream traversal its deterministic visit order.
// Complexity: O(V + E·logE).
func (g *graphBase) AdjacencyList() [][]Neighbor {
	out := make([][]Neighbor, g.vertexCount)
	for v, nbs := range g.adj {
		cp := make([]Neighbor, len(nbs))
		copy(cp, nbs)
		sort.Slice(cp, func(i, j int) bool { return cp[i].To < cp[j].To })
		out[v] = cp
	}

	return out
}

// AdjacencyMatrix returns the n×n matrix representation: entry [u][v] holds
// the edge weight when u→v exists (always 1.0 for fixed-weight graphs),
// 0.0 otherwise. Self-loops are impossible, so the diagonal stays 0.0.
// Complexity: O(V² + E).
func (g *graphBase) AdjacencyMatrix() [][]float64 {
	out := make([][]float64, g.vertexCount)
	for u := range out {
		out[u] = make([]float64, g.vertexCount)
	}
	for u, nbs := range g.adj {
		for _, nb := range nbs {
			out[u][nb.To] = nb.Weight
		}
	}

	return out
}

// edgeKey identifies one incidence column: an ordered endpoint pair.
type edgeKey struct {
	u, v int
}

// incidenceEdges collects the canonical column order: every stored arc for
// directed graphs, each unordered pair once (u < v) for undirected graphs.
// The slice is sorted explicitly by (u,v) rather than relying on the
// insertion order of the adjacency.
func (g *graphBase) incidenceEdges() []edgeKey {
	var edges []edgeKey
	for u, nbs := range g.adj {
		for _, nb := range nbs {
			if !g.directed && u > nb.To {
				continue // the (min,max) orientation covers this pair
			}
			edges = append(edges, edgeKey{u: u, v: nb.To})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].u != edges[j].u {
			return edges[i].u < edges[j].u
		}

		return edges[i].v < edges[j].v
	})

	return edges
}

// Incidence marks (no magic numbers).
const (
	srcMark        = -1 // source row of a directed edge
	dstMark        = +1 // target row of a directed edge
	undirectedMark = +1 // both endpoint rows of an undirected edge
)

// IncidenceMatrix returns the n×m matrix representation, one column per
// edge in canonical order: directed columns sorted lexicographically by
// (u,v) with −1 at the source and +1 at the target; undirected columns
// sorted by (min,max) with +1 at both endpoints.
// Complexity: O(V·E).
func (g *graphBase) IncidenceMatrix() [][]int {
	edges := g.incidenceEdges()
	out := make([][]int, g.vertexCount)
	for u := range out {
		out[u] = make([]int, len(edges))
	}
	for j, e := range edges {
		if g.directed {
			out[e.u][j] = srcMark
			out[e.v][j] = dstMark
		} else {
			out[e.u][j] = undirectedMark
			out[e.v][j] = undirectedMark
		}
	}

	return out
}
