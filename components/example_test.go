package components_test

import (
	"fmt"

	"github.com/katalvlaran/intgraph/components"
	"github.com/katalvlaran/intgraph/core"
)

// ExampleConnectedComponents splits a 5-vertex graph into its two islands.
//
//	0───1───2    3───4
func ExampleConnectedComponents() {
	g, _ := core.New(5)
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(1, 2, 1.0)
	_ = g.AddEdge(3, 4, 1.0)

	comps, _ := components.ConnectedComponents(g)
	fmt.Println(comps)
	// Output:
	// [[0 1 2] [3 4]]
}

// ExampleComponentsWithStats ranks components largest-first.
func ExampleComponentsWithStats() {
	g, _ := core.New(5)
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(1, 2, 1.0)
	_ = g.AddEdge(3, 4, 1.0)

	stats, _ := components.ComponentsWithStats(g)
	for _, c := range stats {
		fmt.Printf("vertices=%v nodes=%d edges=%d smallest=%d\n",
			c.Vertices, c.NodeCount, c.EdgeCount, c.SmallestVertex)
	}
	// Output:
	// vertices=[0 1 2] nodes=3 edges=2 smallest=0
	// vertices=[3 4] nodes=2 edges=1 smallest=3
}
