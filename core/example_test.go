package core_test

import (
	"fmt"
	"sort"

	"github.com/nileshpatra/gubbins/core"
)

// ExampleGraph_AddEdge builds a tiny rooted tree by hand, the same shape
// phylotree.Compile expects: a directed graph with one root and every
// other vertex reachable from it.
func ExampleGraph_AddEdge() {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"root", "a", "b"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("root", "a", 0)
	_ = g.AddEdge("root", "b", 0)

	ids := g.Vertices()
	sort.Strings(ids)
	fmt.Println(ids)
	fmt.Println(g.VertexCount())

	// Output:
	// [a b root]
	// 3
}

// ExampleGraph_Neighbors lists the outgoing edges of a vertex in a
// directed graph.
func ExampleGraph_Neighbors() {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"root", "a", "b"} {
		_ = g.AddVertex(id)
	}
	_ = g.AddEdge("root", "a", 0)
	_ = g.AddEdge("root", "b", 0)

	edges, _ := g.Neighbors("root")
	fmt.Println(len(edges))

	// Output:
	// 2
}
