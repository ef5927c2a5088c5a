package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/nileshpatra/gubbins/align"
	"github.com/nileshpatra/gubbins/core"
	"github.com/nileshpatra/gubbins/internal/logx"
	"github.com/nileshpatra/gubbins/parallel"
	"github.com/nileshpatra/gubbins/pattern"
	"github.com/nileshpatra/gubbins/phylotree"
	"github.com/nileshpatra/gubbins/ratematrix"
	"github.com/nileshpatra/gubbins/reconstruct"
	"github.com/nileshpatra/gubbins/translogcache"
)

// placeholderByte seeds every internal and root row of the output
// alignment before reconstruction runs. pattern.Compress always covers
// every column of the alignment it is given, so every placeholder byte
// is guaranteed to be overwritten by the time Run returns; it never
// reaches a caller.
const placeholderByte = '?'

// Input bundles the parsed alignment and tree Run needs to reconstruct
// ancestral states. Graph, RootID, IsTaxon and EdgeLength are exactly
// ioformat.ReadNewick's return values; Names and Seqs are
// ioformat.ReadFASTA's.
type Input struct {
	Names []string
	Seqs  [][]byte

	Graph      *core.Graph
	RootID     string
	IsTaxon    map[string]bool
	EdgeLength map[string]float64

	Freqs ratematrix.Frequencies
	Rates ratematrix.Rates
}

// Result is the output of one reconstruction run: the fully populated
// alignment (taxa plus reconstructed internal nodes and root), the
// compiled tree it was reconstructed against, and the output branch
// lengths rewritten to per-edge SNP counts, index-aligned with
// Tree.Labels/Tree.EdgeLength.
type Result struct {
	Tree         *phylotree.Tree
	Alignment    *align.Matrix
	BranchLength []float64
	SNPs         map[string]int
}

// Run performs one full joint ancestral reconstruction: it compiles in
// into a tree, builds the substitution model's rate matrix, caches a
// log transition-probability matrix per branch, compresses the
// alignment into site patterns, reconstructs every pattern in parallel,
// and returns the assembled result.
func Run(ctx context.Context, in Input, opts ...Option) (*Result, error) {
	o := &options{workers: 1, logger: logx.New(io.Discard, false)}
	for _, apply := range opts {
		apply(o)
	}

	if len(in.Names) == 0 {
		return nil, fmt.Errorf("engine: Run: %w", ErrMissingInput)
	}

	aln, err := align.NewMatrix(in.Names, in.Seqs)
	if err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}

	tree, err := phylotree.Compile(in.Graph, in.RootID, in.IsTaxon, in.EdgeLength, in.Names)
	if err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}
	if err := checkTaxaMatch(tree, in.Names); err != nil {
		return nil, err
	}
	o.logger.Printf("compiled tree: %d nodes, %d taxa", tree.NodeCount(), len(in.Names))

	q, err := ratematrix.Build(in.Freqs, in.Rates)
	if err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}
	for id := 0; id < tree.NodeCount(); id++ {
		if id == tree.Root {
			continue
		}
		logP, err := translogcache.Compute(q, in.Freqs, tree.EdgeLength[id])
		if err != nil {
			return nil, fmt.Errorf("engine: Run: branch %s: %w", tree.Labels[id], err)
		}
		tree.LogP[id] = logP
	}

	outAln, err := seedOutputAlignment(tree, aln)
	if err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}

	table, err := pattern.Compress(outAln)
	if err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}
	o.logger.Printf("compressed %d columns into %d unique patterns", outAln.ColCount(), table.UniqueCount())

	newWorker := func() *reconstruct.Worker {
		return reconstruct.NewWorker(tree, in.Freqs)
	}
	snps, err := parallel.Run(ctx, outAln, table, newWorker, o.workers)
	if err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}
	o.logger.Printf("reconstructed %d patterns across %d workers", table.UniqueCount(), o.workers)

	branchLength := make([]float64, tree.NodeCount())
	for id, label := range tree.Labels {
		branchLength[id] = float64(snps[label])
	}

	return &Result{
		Tree:         tree,
		Alignment:    outAln,
		BranchLength: branchLength,
		SNPs:         snps,
	}, nil
}

// checkTaxaMatch verifies every tree leaf corresponds to exactly one
// alignment row and vice versa; phylotree.Compile already rejects a
// taxaOrder entry absent from the tree, so this only needs to catch the
// opposite case, a tree leaf absent from taxaOrder. Reported as
// reconstruct.ErrUnknownTaxon, the same error a leaf with no output row
// would surface later during reconstruction itself.
func checkTaxaMatch(tree *phylotree.Tree, names []string) error {
	leafCount := 0
	for id := 0; id < tree.NodeCount(); id++ {
		if tree.IsLeaf[id] {
			leafCount++
		}
	}
	if leafCount != len(names) {
		return fmt.Errorf("engine: Run: tree has %d leaves, alignment has %d rows: %w", leafCount, len(names), reconstruct.ErrUnknownTaxon)
	}
	return nil
}

// seedOutputAlignment builds the combined R x L output matrix: taxon
// rows carry the observed alignment verbatim, and internal/root rows
// are seeded with placeholderByte, matching the reference tool's
// "?"-initialised ancestral rows before reconstruction fills them in.
func seedOutputAlignment(tree *phylotree.Tree, aln *align.Matrix) (*align.Matrix, error) {
	n := tree.NodeCount()
	names := make([]string, n)
	seqs := make([][]byte, n)
	placeholder := bytes.Repeat([]byte{placeholderByte}, aln.ColCount())

	for id := 0; id < n; id++ {
		row := tree.RowIndex[id]
		names[row] = tree.Labels[id]
		if !tree.IsLeaf[id] {
			seqs[row] = append([]byte(nil), placeholder...)
			continue
		}
		seq, err := aln.Row(tree.Labels[id])
		if err != nil {
			return nil, fmt.Errorf("seedOutputAlignment: %w", err)
		}
		seqs[row] = seq
	}
	return align.NewMatrix(names, seqs)
}
