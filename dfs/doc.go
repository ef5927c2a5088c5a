// Package dfs implements depth-first traversal over a core.Graph, with
// pre-order and post-order hooks and cancellation via context.Context.
//
// phylotree.Compile calls DFS without hooks over a topology that arrived
// as a core.Graph (e.g. from the builder package or a Newick parse) and
// reads the pre-order, post-order and parent results; it assigns the
// synthetic internal-node labels itself from those results.
//
// Cycle detection and topological sort are not needed here: a rooted
// phylogenetic tree is acyclic by construction, so that surface is
// left out.
package dfs
