package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnav/core"
)

// ExampleGraph demonstrates building a small weighted graph and inspecting it.
func ExampleGraph() {
	// 1) Create an undirected, weighted graph.
	g := core.NewGraph(core.WithWeighted())

	// 2) Add edges (auto-adds vertices A, B, C).
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1.5)

	// 3) Inspect vertices, mirrored adjacency and neighbors.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge C→B exists?", g.HasEdge("C", "B"))
	ids, _ := g.NeighborIDs("B")
	fmt.Println("Neighbors of B:", ids)

	// Output:
	// Vertices: [A B C]
	// Edge C→B exists? true
	// Neighbors of B: [A C]
}
