package reconstruct

import (
	"fmt"
	"math"

	"github.com/nileshpatra/gubbins/align"
	"github.com/nileshpatra/gubbins/pattern"
	"github.com/nileshpatra/gubbins/phylotree"
	"github.com/nileshpatra/gubbins/ratematrix"
)

// gapByte is written for any node whose reconstructed state is not a
// concrete base.
const gapByte byte = '-'

// noBase marks an empty C[...] slot.
const noBase = -1

// Worker reconstructs one pattern at a time against a fixed tree,
// recycling its scratch tables across calls.
type Worker struct {
	tree    *phylotree.Tree
	logFreq [ratematrix.NumBases]float64

	l        [][ratematrix.NumBases]float64 // per-node L table
	c        [][ratematrix.NumBases]int     // per-node C table
	r        []int                          // per-node reconstructed base, or noBase for gap
	leafBase []byte                         // raw input byte per leaf node, verbatim
}

// NewWorker builds a Worker bound to tree and the model's equilibrium
// frequencies, used for the root relaxation step.
func NewWorker(tree *phylotree.Tree, freqs ratematrix.Frequencies) *Worker {
	w := &Worker{tree: tree}
	for i, f := range freqs {
		w.logFreq[i] = math.Log(f)
	}
	n := tree.NodeCount()
	w.l = make([][ratematrix.NumBases]float64, n)
	w.c = make([][ratematrix.NumBases]int, n)
	w.r = make([]int, n)
	w.leafBase = make([]byte, n)
	return w
}

// Reconstruct runs the joint reconstruction DP for one pattern, writes
// the reconstructed character into aln at every column the pattern
// covers, and returns the per-branch SNP contribution keyed by node
// label.
func (w *Worker) Reconstruct(aln *align.Matrix, pat pattern.Pattern) (map[string]int, error) {
	tree := w.tree
	repCol := pat.Columns[0]

	var columnbases [ratematrix.NumBases]bool
	anyConcrete := false
	for id := 0; id < tree.NodeCount(); id++ {
		if !tree.IsLeaf[id] {
			continue
		}
		row := tree.RowIndex[id]
		if row < 0 || row >= aln.RowCount() {
			return nil, fmt.Errorf("reconstruct: Reconstruct: node %s: %w", tree.Labels[id], ErrUnknownTaxon)
		}
		b, err := aln.At(row, repCol)
		if err != nil {
			return nil, fmt.Errorf("reconstruct: Reconstruct: %w", err)
		}
		w.leafBase[id] = b
		if idx := ratematrix.IndexOf(b); idx >= 0 {
			columnbases[idx] = true
			anyConcrete = true
		}
	}

	if !anyConcrete {
		return w.emitAllGap(aln, pat)
	}

	bases := make([]int, 0, ratematrix.NumBases)
	for i := 0; i < ratematrix.NumBases; i++ {
		if columnbases[i] {
			bases = append(bases, i)
		}
	}

	// Step 1: post-order, every non-root node.
	for _, id := range tree.Postorder {
		if id == tree.Root {
			continue
		}
		if tree.IsLeaf[id] {
			w.reconstructLeaf(id, w.leafBase[id], bases)
		} else {
			w.reconstructInternal(id, bases)
		}
	}

	// Step 2: root relaxation, explicitly pinned to the root node.
	rootWinner := w.reconstructRoot(bases)
	w.r[tree.Root] = rootWinner

	// Step 3: pre-order traceback.
	for _, id := range tree.Preorder {
		if id == tree.Root {
			continue
		}
		parent := tree.Parent[id]
		w.r[id] = w.c[id][w.r[parent]]
	}

	// Step 5 runs before step 4's leaf-raw-character reset below, since
	// it reads children's r values as assigned by step 3.
	w.reconstructSeedTiebreak()

	// Step 4: gap propagation (post-order) and leaf raw-character reset.
	for _, id := range tree.Postorder {
		if tree.IsLeaf[id] {
			w.r[id] = concreteOrGap(w.leafBase[id])
			continue
		}
		hasConcreteChild := false
		for _, child := range tree.Children[id] {
			if w.r[child] != noBase {
				hasConcreteChild = true
				break
			}
		}
		if !hasConcreteChild {
			w.r[id] = noBase
		}
	}

	return w.emit(aln, pat)
}

func (w *Worker) reconstructLeaf(id int, base byte, bases []int) {
	tree := w.tree
	logP := tree.LogP[id]
	if idx := ratematrix.IndexOf(base); idx >= 0 {
		for _, i := range bases {
			w.c[id][i] = idx
			w.l[id][i] = logP.MustAt(i, idx)
		}
		return
	}
	for _, i := range bases {
		w.c[id][i] = i
		w.l[id][i] = logP.MustAt(i, i)
	}
}

func (w *Worker) reconstructInternal(id int, bases []int) {
	tree := w.tree
	logP := tree.LogP[id]

	var s [ratematrix.NumBases]float64
	for _, end := range bases {
		sum := 0.0
		for _, child := range tree.Children[id] {
			sum += w.l[child][end]
		}
		s[end] = sum
	}

	for _, start := range bases {
		w.l[id][start] = math.Inf(-1)
		w.c[id][start] = noBase
	}
	for _, end := range bases {
		for _, start := range bases {
			j := logP.MustAt(start, end) + s[end]
			if j > w.l[id][start] {
				w.l[id][start] = j
				w.c[id][start] = end
			}
		}
	}
}

// reconstructRoot applies the prior-substitution relaxation at the root
// and returns the winning base.
func (w *Worker) reconstructRoot(bases []int) int {
	tree := w.tree
	root := tree.Root

	var s [ratematrix.NumBases]float64
	for _, end := range bases {
		sum := 0.0
		for _, child := range tree.Children[root] {
			sum += w.l[child][end]
		}
		s[end] = sum
	}

	best := noBase
	bestScore := math.Inf(-1)
	for _, end := range bases {
		score := w.logFreq[end] + s[end]
		if score > bestScore {
			bestScore = score
			best = end
		}
	}
	for _, start := range bases {
		w.c[root][start] = best
	}
	return best
}

// reconstructSeedTiebreak overwrites the root's r with that of its
// child with the strictly longest incident edge: the most divergent
// child's own state is taken as the root's seed rather than the
// root relaxation's prior-weighted estimate. When two or more
// children tie for the longest edge, no child dominates and the
// root keeps whatever reconstructRoot already resolved, including
// its own smaller-base tiebreak on a genuine tie.
func (w *Worker) reconstructSeedTiebreak() {
	tree := w.tree
	children := tree.Children[tree.Root]
	if len(children) == 0 {
		return
	}
	best := children[0]
	tied := false
	for _, child := range children[1:] {
		switch {
		case tree.EdgeLength[child] > tree.EdgeLength[best]:
			best = child
			tied = false
		case tree.EdgeLength[child] == tree.EdgeLength[best]:
			tied = true
		}
	}
	if tied {
		return
	}
	w.r[tree.Root] = w.r[best]
}

func concreteOrGap(raw byte) int {
	if idx := ratematrix.IndexOf(raw); idx >= 0 {
		return idx
	}
	return noBase
}

func (w *Worker) emit(aln *align.Matrix, pat pattern.Pattern) (map[string]int, error) {
	tree := w.tree
	for id := 0; id < tree.NodeCount(); id++ {
		ch := charOf(w.r[id])
		if tree.IsLeaf[id] {
			ch = w.leafBase[id]
		}
		row := tree.RowIndex[id]
		for _, col := range pat.Columns {
			if err := aln.Set(row, col, ch); err != nil {
				return nil, fmt.Errorf("reconstruct: emit: %w", err)
			}
		}
	}

	snps := make(map[string]int)
	n := len(pat.Columns)
	for id := 0; id < tree.NodeCount(); id++ {
		if id == tree.Root {
			continue
		}
		parent := tree.Parent[id]
		if w.r[id] == noBase || w.r[parent] == noBase {
			continue
		}
		if w.r[id] != w.r[parent] {
			snps[tree.Labels[id]] += n
		}
	}
	return snps, nil
}

func (w *Worker) emitAllGap(aln *align.Matrix, pat pattern.Pattern) (map[string]int, error) {
	tree := w.tree
	for id := 0; id < tree.NodeCount(); id++ {
		if tree.IsLeaf[id] {
			continue
		}
		row := tree.RowIndex[id]
		for _, col := range pat.Columns {
			if err := aln.Set(row, col, gapByte); err != nil {
				return nil, fmt.Errorf("reconstruct: emitAllGap: %w", err)
			}
		}
	}
	return map[string]int{}, nil
}

func charOf(base int) byte {
	if base == noBase {
		return gapByte
	}
	return ratematrix.Bases[base]
}
