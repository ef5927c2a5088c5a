// Package main provides a command-line interface for joint ancestral
// sequence reconstruction on a fixed tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nileshpatra/gubbins/engine"
	"github.com/nileshpatra/gubbins/internal/logx"
	"github.com/nileshpatra/gubbins/ioformat"
	"github.com/nileshpatra/gubbins/ratematrix"
)

func main() {
	var (
		alnPath     = flag.String("aln", "", "input FASTA alignment path (required)")
		treePath    = flag.String("tree", "", "input Newick tree path (required)")
		infoPath    = flag.String("info", "", "RAxML-style model info path (optional, defaults to Jukes-Cantor)")
		prefix      = flag.String("prefix", "jointasr", "output file prefix")
		threads     = flag.Int("threads", 1, "number of reconstruction worker goroutines")
		verboseFlag = flag.Bool("verbose", false, "print progress to stderr")
	)
	flag.Parse()

	if *alnPath == "" || *treePath == "" {
		fmt.Fprintln(os.Stderr, "jointasr: -aln and -tree are required")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*alnPath, *treePath, *infoPath, *prefix, *threads, *verboseFlag); err != nil {
		fmt.Fprintf(os.Stderr, "jointasr: %v\n", err)
		os.Exit(1)
	}
}

func run(alnPath, treePath, infoPath, prefix string, threads int, verbose bool) error {
	logger := logx.New(os.Stderr, verbose)

	alnFile, err := os.Open(alnPath)
	if err != nil {
		return fmt.Errorf("opening alignment: %w", err)
	}
	defer alnFile.Close()
	names, seqs, err := ioformat.ReadFASTA(alnFile)
	if err != nil {
		return fmt.Errorf("reading alignment: %w", err)
	}
	logger.Printf("read %d sequences from %s", len(names), alnPath)

	treeFile, err := os.Open(treePath)
	if err != nil {
		return fmt.Errorf("opening tree: %w", err)
	}
	defer treeFile.Close()
	g, rootID, isTaxon, edgeLength, err := ioformat.ReadNewick(treeFile)
	if err != nil {
		return fmt.Errorf("reading tree: %w", err)
	}

	freqs := ratematrix.JCFrequencies()
	rates := ratematrix.JCRates()
	if infoPath != "" {
		infoFile, err := os.Open(infoPath)
		if err != nil {
			return fmt.Errorf("opening model info: %w", err)
		}
		defer infoFile.Close()
		freqs, rates, err = ioformat.ReadModelInfo(infoFile)
		if err != nil {
			return fmt.Errorf("reading model info: %w", err)
		}
		logger.Printf("loaded substitution model from %s", infoPath)
	} else {
		logger.Printf("no model info supplied; defaulting to Jukes-Cantor")
	}

	in := engine.Input{
		Names:      names,
		Seqs:       seqs,
		Graph:      g,
		RootID:     rootID,
		IsTaxon:    isTaxon,
		EdgeLength: edgeLength,
		Freqs:      freqs,
		Rates:      rates,
	}

	res, err := engine.Run(context.Background(), in, engine.WithWorkers(threads), engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("reconstructing: %w", err)
	}

	alnOut := prefix + ".joint.aln"
	if err := writeAlignment(alnOut, res); err != nil {
		return fmt.Errorf("writing %s: %w", alnOut, err)
	}
	logger.Printf("wrote %s", alnOut)

	treeOut := prefix + ".joint.tre"
	if err := writeTree(treeOut, res); err != nil {
		return fmt.Errorf("writing %s: %w", treeOut, err)
	}
	logger.Printf("wrote %s", treeOut)

	return nil
}

func writeAlignment(path string, res *engine.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	names := res.Alignment.Names()
	seqs := make([][]byte, len(names))
	for i, name := range names {
		seq, err := res.Alignment.Row(name)
		if err != nil {
			return err
		}
		seqs[i] = seq
	}
	return ioformat.WriteFASTA(f, names, seqs)
}

func writeTree(path string, res *engine.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ioformat.WriteNewick(f, res.Tree, res.BranchLength)
}
