// Package ioformat reads and writes the three file formats the engine
// exchanges with the outside world: FASTA alignments, rooted Newick
// trees, and RAxML-style model info files.
//
// These readers and writers are deliberately minimal: they cover
// exactly what the engine needs (sequence names and residues; rooted
// topology, branch lengths, and quoted-label stripping; base
// frequencies and GTR exchangeabilities) and nothing more. Delegating
// to a full-featured alignment or tree library is out of scope here;
// see DESIGN.md for why no such dependency is wired in.
//
// Newick parsing preserves underscores in unquoted labels (it does not
// translate them to spaces) and discards any label on a node that has
// children — internal node names carry no meaning for this engine and
// are replaced by phylotree.Compile's synthesized "Node_k" labels.
package ioformat
