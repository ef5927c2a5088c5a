// Package engine ties together every other package into the single
// end-to-end operation the reference tool calls jar(): read an
// alignment and a rooted tree, build a substitution model, compile the
// tree into array form, cache per-branch transition probabilities,
// compress the alignment into site patterns, reconstruct every
// pattern's ancestral states in parallel, and report the reconstructed
// alignment together with branch lengths rewritten to SNP counts.
//
// Complexity: Run is O(L*V) for an alignment of L columns and a tree of
// V nodes, modulo the constant-factor savings from site-pattern
// compression and the configured worker count.
package engine
