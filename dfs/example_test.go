package dfs_test

import (
	"fmt"
	"strings"

	"github.com/nileshpatra/gubbins/core"
	"github.com/nileshpatra/gubbins/dfs"
)

// ExampleDFS walks a small rooted tree:
//
//	    root
//	   /    \
//	  a      b
//	 / \
//	c   d
//
// phylotree.Compile makes the same hook-free call and reads PreOrder,
// PostOrder and Parent from the result.
func ExampleDFS() {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"root", "a", "b", "c", "d"} {
		_ = g.AddVertex(id)
	}
	for _, e := range [][2]string{{"root", "a"}, {"root", "b"}, {"a", "c"}, {"a", "d"}} {
		_ = g.AddEdge(e[0], e[1], 0)
	}

	res, err := dfs.DFS(g, "root")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.PreOrder, " "))

	// Output:
	// root a c d b
}
