package ioformat

import "errors"

// Sentinel errors for the ioformat package.
var (
	// ErrEmptyFASTA indicates a FASTA stream contained no records.
	ErrEmptyFASTA = errors.New("ioformat: FASTA input has no records")

	// ErrMalformedFASTA indicates a FASTA stream had a sequence line
	// before any header line.
	ErrMalformedFASTA = errors.New("ioformat: FASTA input has residues before a header")

	// ErrInvalidNewick indicates a Newick string could not be parsed.
	ErrInvalidNewick = errors.New("ioformat: malformed Newick string")

	// ErrInvalidBranchLength indicates a Newick branch length token was
	// not a valid floating-point number.
	ErrInvalidBranchLength = errors.New("ioformat: invalid branch length")

	// ErrInvalidModelInfo indicates a model info stream did not yield a
	// usable set of base frequencies and exchangeability rates.
	ErrInvalidModelInfo = errors.New("ioformat: invalid model info file")
)
