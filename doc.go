// Package intgraph is a compact toolkit for building and analyzing graphs
// over dense integer vertices 0..n-1.
//
// 🚀 What is intgraph?
//
//	A small, deterministic, in-memory library that brings together:
//		• Core primitives: fixed-weight and explicit-weight simple graphs,
//		  directed or undirected
//		• Three canonical views: adjacency list, adjacency matrix,
//		  incidence matrix (always fresh copies, always sorted)
//		• Builders: construct graphs from adjacency matrices or edge lists,
//		  with automatic weight-variant detection
//		• Traversals: BFS and iterative DFS with hooks, depth limits and
//		  neighbor filters
//		• Analysis: connected (weak) components and per-component statistics
//
// ✨ Why choose intgraph?
//
//   - Deterministic by construction – neighbor lists export sorted, matrix
//     columns are canonically ordered, traversal output never depends on
//     map iteration
//   - Strict validation – every bad input is a sentinel error you can
//     branch on with errors.Is
//   - Pure Go – no cgo, no I/O, no hidden deps
//
// Everything is organized under five subpackages:
//
//	core/       — Graph contract, the two edge-insertion variants, exports
//	builder/    — factory entry points (matrix, edge list, by vertex count)
//	bfs/        — breadth-first search
//	dfs/        — depth-first search (explicit stack)
//	components/ — connected components & statistics
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3        4
//
//	two components: {0,1,2,3} with four edges, and the singleton {4}.
//
//	go get github.com/katalvlaran/intgraph
package intgraph
