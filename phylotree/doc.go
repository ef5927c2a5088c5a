// Package phylotree compiles a rooted tree topology into the array-based
// form the reconstruction engine operates on: parent-index and
// child-index arrays plus precomputed preorder and postorder node
// sequences, indexed by a dense integer node ID rather than by pointer.
//
// Compile also performs tree preparation (component D of the engine):
// any node without an externally supplied label is assigned a
// synthetic "Node_k" label in preorder, and a row is reserved for it in
// the output alignment's row space, after every taxon row.
//
// Complexity: Compile is O(V+E) via a single dfs.DFS traversal.
//
// Errors: Compile returns ErrLabelCollision if a synthesized "Node_k"
// label collides with a supplied taxon label.
package phylotree
