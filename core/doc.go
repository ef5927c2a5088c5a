// Package core provides a small thread-safe directed graph used as the
// intermediate representation for a phylogenetic topology: whichever layer
// produces the tree (a synthetic builder, a Newick parser) emits a
// core.Graph, and phylotree.Compile turns it into the array-based tree the
// reconstruction engine actually runs against.
//
// Graph supports only what that conversion needs: directed or undirected
// edges, optional weights (branch lengths), one edge per (from, to) pair.
// It deliberately does not support multi-edges, self-loops, or mixed
// per-edge directedness — a rooted phylogenetic tree never needs them.
//
// All mutations are protected by an internal sync.RWMutex, so a Graph can
// be built by one goroutine and read concurrently by several — the shape
// builder.Star/Path/Cycle and dfs.DFS both rely on.
package core
