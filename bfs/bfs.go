// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, unweighted shortest-path distances, and parent links.
//
// BFS explores vertices in increasing distance from a start vertex.
// It consumes only the graph's sorted adjacency-list export, so neighbors
// are always visited in ascending id order and the output is deterministic.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     [][]core.Neighbor
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. A vertex is marked visited when enqueued,
// never when dequeued, so each vertex enters the queue at most once.
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, or any
// error returned by the OnVisit hook.
// Complexity: O(V + E).
func BFS(g core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		adj:     g.AdjacencyList(),
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res:     newResult(n),
	}

	// Seed the queue with the start vertex.
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// newResult allocates a Result with Depth and Parent cleared to -1.
func newResult(n int) *Result {
	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	return res
}

// enqueue marks v visited at depth d and appends it to the queue.
func (w *walker) enqueue(v, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until it drains or a hook aborts.
func (w *walker) loop() error {
	// index cursor instead of re-slicing keeps the queue a single allocation
	for qi := 0; qi < len(w.queue); qi++ {
		item := w.queue[qi]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor of item in ascending id order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.adj[item.v] {
		if !w.opts.FilterNeighbor(item.v, nb.To) {
			continue
		}
		if !w.visited[nb.To] {
			w.res.Parent[nb.To] = item.v
			w.enqueue(nb.To, nextDepth)
		}
	}
}
