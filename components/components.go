// Package components computes connected components of a core.Graph and
// per-component statistics.
//
// Undirected graphs use standard connectivity. Directed graphs use weak
// connectivity: edge directions are ignored by symmetrizing a copy of the
// adjacency export before traversing. Statistics, in contrast, always
// count edges on the real adjacency; the symmetrized view exists only for
// discovery.
//
// Both operations are pure functions of the graph; nothing is retained
// between calls.
package components

import (
	"errors"
	"sort"

	"github.com/katalvlaran/intgraph/core"
)

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("components: graph is nil")

// Component describes one connected component.
type Component struct {
	// Vertices lists the member vertex ids in ascending order.
	Vertices []int

	// NodeCount is len(Vertices).
	NodeCount int

	// EdgeCount counts intra-component edges: each undirected edge once,
	// every directed edge whose endpoints share the component.
	EdgeCount int

	// SmallestVertex is Vertices[0].
	SmallestVertex int
}

// ConnectedComponents returns the connected (for directed graphs: weakly
// connected) components of g. Each component is sorted ascending; the
// component list is ordered by smallest vertex.
// Complexity: O(V + E·logE), dominated by the symmetrize sort.
func ConnectedComponents(g core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	adj := neighborIDs(g)
	if g.Directed() {
		adj = symmetrize(adj)
	}

	visited := make([]bool, n)
	comps := make([][]int, 0)
	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		comp := collect(adj, visited, v)
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	// v iterates ascending, so comps already lead with their smallest
	// vertex; the explicit sort keeps the ordering contract local.
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps, nil
}

// ComponentsWithStats returns one Component record per connected component,
// sorted by (-NodeCount, -EdgeCount, SmallestVertex): largest first, ties
// broken by more internal edges, final tie by ascending smallest vertex.
// Complexity: O(V + E·logE).
func ComponentsWithStats(g core.Graph) ([]Component, error) {
	comps, err := ConnectedComponents(g)
	if err != nil {
		return nil, err
	}

	// vertex → component index, for O(1) membership checks
	v2c := make([]int, g.VertexCount())
	for ci, comp := range comps {
		for _, v := range comp {
			v2c[v] = ci
		}
	}

	edgeCounts := make([]int, len(comps))
	directed := g.Directed()
	for u, nbs := range g.AdjacencyList() {
		for _, nb := range nbs {
			if v2c[u] != v2c[nb.To] {
				continue // cannot happen for undirected; guards directed
			}
			// undirected adjacency stores both orientations; u < v
			// counts each edge exactly once
			if directed || u < nb.To {
				edgeCounts[v2c[u]]++
			}
		}
	}

	stats := make([]Component, len(comps))
	for ci, comp := range comps {
		stats[ci] = Component{
			Vertices:       comp,
			NodeCount:      len(comp),
			EdgeCount:      edgeCounts[ci],
			SmallestVertex: comp[0],
		}
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].NodeCount != stats[j].NodeCount {
			return stats[i].NodeCount > stats[j].NodeCount
		}
		if stats[i].EdgeCount != stats[j].EdgeCount {
			return stats[i].EdgeCount > stats[j].EdgeCount
		}

		return stats[i].SmallestVertex < stats[j].SmallestVertex
	})

	return stats, nil
}

// neighborIDs flattens the adjacency export to plain id slices.
func neighborIDs(g core.Graph) [][]int {
	adj := g.AdjacencyList()
	out := make([][]int, len(adj))
	for v, nbs := range adj {
		ids := make([]int, len(nbs))
		for i, nb := range nbs {
			ids[i] = nb.To
		}
		out[v] = ids
	}

	return out
}

// symmetrize returns an undirected view of adj: for every arc u→v, both
// u–v and v–u connect. Neighbor lists come back deduplicated and sorted.
func symmetrize(adj [][]int) [][]int {
	und := make([][]int, len(adj))
	for u, nbs := range adj {
		for _, v := range nbs {
			und[u] = append(und[u], v)
			und[v] = append(und[v], u)
		}
	}
	for u, nbs := range und {
		sort.Ints(nbs)
		und[u] = dedupSorted(nbs)
	}

	return und
}

// dedupSorted removes adjacent duplicates from a sorted slice, in place.
func dedupSorted(s []int) []int {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// collect gathers the component containing start with a mark-on-enqueue
// BFS over adj.
func collect(adj [][]int, visited []bool, start int) []int {
	queue := []int{start}
	visited[start] = true
	var comp []int
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		comp = append(comp, u)
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return comp
}
