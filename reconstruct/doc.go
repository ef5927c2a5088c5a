// Package reconstruct implements Pupko et al.'s linear-time joint
// ancestral-sequence reconstruction for one alignment site pattern at a
// time.
//
// For a fixed column assignment at the leaves, a post-order sweep
// computes, for every node and every candidate parental base, the best
// joint log-likelihood of that node's subtree and the base achieving it
// (the L/C tables). A relaxation at the root substitutes the
// equilibrium base frequencies for the (nonexistent) parent transition.
// A pre-order sweep then traces the single best assignment back down to
// the leaves, a post-order gap-propagation pass fixes up all-gap
// subtrees, and the tree's rooting placeholder adopts the reconstructed
// base of its longest-branch child.
//
// A Worker recycles its L/C scratch tables across calls to Reconstruct
// so that processing many patterns against the same tree does not
// reallocate per pattern.
//
// Complexity: Reconstruct is O(V) per call, V = tree.NodeCount().
//
// Errors: Reconstruct returns ErrUnknownTaxon if a tree leaf has no
// corresponding row in the alignment.
package reconstruct
