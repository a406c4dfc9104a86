package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/intgraph/core"
	"github.com/katalvlaran/intgraph/dfs"
)

// ExampleDFS walks a small tree in preorder: the lowest-id branch is
// explored to the bottom before backtracking.
//
//	    0
//	   / \
//	  1   4
//	 / \
//	2   3
func ExampleDFS() {
	g, _ := core.New(5)
	_ = g.AddEdge(0, 4, 1.0)
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(1, 3, 1.0)
	_ = g.AddEdge(1, 2, 1.0)

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 1 2 3 4]
}

// ExampleDFS_hooks shows pre- and post-order hooks on a directed chain.
func ExampleDFS_hooks() {
	g, _ := core.New(3, core.WithDirected(true))
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(1, 2, 1.0)

	_, _ = dfs.DFS(g, 0,
		dfs.WithOnVisit(func(v int) error { fmt.Println("enter", v); return nil }),
		dfs.WithOnExit(func(v int) error { fmt.Println("leave", v); return nil }),
	)
	// Output:
	// enter 0
	// enter 1
	// enter 2
	// leave 2
	// leave 1
	// leave 0
}
