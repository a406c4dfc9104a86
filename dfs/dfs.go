// Package dfs implements depth-first search on a core.Graph.
//
// The traversal is iterative: an explicit stack of frames (vertex +
// neighbor cursor) replaces recursion, so arbitrarily deep graphs cannot
// overflow the goroutine stack. Each frame walks its sorted neighbor slice
// left to right, which makes the preorder identical to the recursive
// formulation: ascending-id neighbors first, deterministically.
//
// Complexity:
//
//   - Time:   O(V + E), plus hook and filter overhead.
//   - Memory: O(V) for the frame stack and result slices.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/intgraph/core"
)

// frame is one explicit-stack entry: a discovered vertex and the index of
// the next neighbor to examine.
type frame struct {
	v    int
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	adj     [][]core.Neighbor
	opts    Options
	stack   []frame
	visited []bool
	res     *Result
}

// DFS performs depth-first search on g from start, recording vertices in
// preorder. Returns ErrGraphNil, ErrStartOutOfRange, or any error raised
// by the OnVisit/OnExit hooks.
func DFS(g core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartOutOfRange, start, n)
	}

	res := &Result{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	w := &dfsWalker{
		adj:     g.AdjacencyList(),
		opts:    o,
		stack:   make([]frame, 0, n),
		visited: make([]bool, n),
		res:     res,
	}
	if err := w.run(start); err != nil {
		return res, err
	}
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// run drives the explicit stack until it drains or a hook aborts.
func (w *dfsWalker) run(start int) error {
	if err := w.discover(start, 0, -1); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		depth := len(w.stack) - 1

		descended, err := w.advance(top, depth)
		if err != nil {
			return err
		}
		if descended {
			continue
		}

		// neighbors exhausted: post-order hook, then pop
		if w.opts.OnExit != nil {
			if err = w.opts.OnExit(top.v); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", top.v, err)
			}
		}
		w.stack = w.stack[:len(w.stack)-1]
	}

	return nil
}

// advance moves top's cursor to the next eligible neighbor and descends
// into it. Reports whether a descent happened.
func (w *dfsWalker) advance(top *frame, depth int) (bool, error) {
	for top.next < len(w.adj[top.v]) {
		nb := w.adj[top.v][top.next].To
		top.next++

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.opts.SkippedNeighbors++

			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		if w.visited[nb] {
			continue
		}

		return true, w.discover(nb, depth+1, top.v)
	}

	return false, nil
}

// discover marks v visited, records it in preorder, fires OnVisit, and
// pushes its frame.
func (w *dfsWalker) discover(v, depth, parent int) error {
	w.visited[v] = true
	w.res.Depth[v] = depth
	if parent >= 0 {
		w.res.Parent[v] = parent
	}
	w.res.Order = append(w.res.Order, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}
	w.stack = append(w.stack, frame{v: v, next: 0})

	return nil
}
