package ratematrix

import (
	"fmt"
	"math"

	"github.com/nileshpatra/gubbins/matrix"
)

// Base indices used throughout the engine. Bases is the canonical order;
// IndexOf maps an alignment byte to its Base index, or -1 for anything
// that is not one of A, C, G, T (gaps and ambiguity codes are handled by
// the caller, not here).
const (
	BaseA = 0
	BaseC = 1
	BaseG = 2
	BaseT = 3

	NumBases = 4

	// Bases is the canonical base order, index-aligned with BaseA..BaseT.
	Bases = "ACGT"
)

// IndexOf returns the Base index of b, or -1 if b is not A, C, G, or T
// (case-sensitive; callers are expected to upper-case input first).
func IndexOf(b byte) int {
	switch b {
	case 'A':
		return BaseA
	case 'C':
		return BaseC
	case 'G':
		return BaseG
	case 'T':
		return BaseT
	default:
		return -1
	}
}

// freqSumTolerance bounds how far sum(Frequencies) may drift from 1.0.
const freqSumTolerance = 1e-6

// Frequencies holds the four equilibrium base frequencies, indexed by
// BaseA..BaseT.
type Frequencies [NumBases]float64

// Rates holds the six exchangeability coefficients, in RAxML info-file
// order: AC, AG, AT, CG, CT, GT.
type Rates [6]float64

const (
	rateAC = 0
	rateAG = 1
	rateAT = 2
	rateCG = 3
	rateCT = 4
	rateGT = 5
)

// JCFrequencies returns the Jukes-Cantor equal base frequencies (1/4 each).
func JCFrequencies() Frequencies {
	return Frequencies{0.25, 0.25, 0.25, 0.25}
}

// JCRates returns the Jukes-Cantor equal exchangeability coefficients
// (1 for every pair).
func JCRates() Rates {
	return Rates{1, 1, 1, 1, 1, 1}
}

// Validate checks that f sums to ~1 and that no frequency or rate is
// negative or non-finite. It returns ErrBadModel describing the first
// violation found.
func Validate(f Frequencies, r Rates) error {
	sum := 0.0
	for i, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ratematrix: frequency[%d]=%v is not finite: %w", i, v, ErrBadModel)
		}
		if v < 0 {
			return fmt.Errorf("ratematrix: frequency[%d]=%v is negative: %w", i, v, ErrBadModel)
		}
		sum += v
	}
	if math.Abs(sum-1.0) > freqSumTolerance {
		return fmt.Errorf("ratematrix: frequencies sum to %v, want ~1: %w", sum, ErrBadModel)
	}
	for i, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("ratematrix: rate[%d]=%v is not finite: %w", i, v, ErrBadModel)
		}
		if v < 0 {
			return fmt.Errorf("ratematrix: rate[%d]=%v is negative: %w", i, v, ErrBadModel)
		}
	}
	return nil
}

// Build assembles the 4x4 instantaneous rate matrix Q from f and r, then
// fixes each diagonal entry so its row sums to zero. It returns
// ErrBadModel if f or r fail Validate.
func Build(f Frequencies, r Rates) (*matrix.Dense, error) {
	if err := Validate(f, r); err != nil {
		return nil, err
	}

	rows := [][]float64{
		{0, f[BaseA] * r[rateAC], f[BaseA] * r[rateAG], f[BaseA] * r[rateAT]},
		{f[BaseC] * r[rateAC], 0, f[BaseC] * r[rateCG], f[BaseC] * r[rateCT]},
		{f[BaseG] * r[rateAG], f[BaseG] * r[rateCG], 0, f[BaseG] * r[rateGT]},
		{f[BaseT] * r[rateAT], f[BaseT] * r[rateCT], f[BaseT] * r[rateGT], 0},
	}

	q, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("ratematrix: Build: %w", err)
	}
	for i := 0; i < NumBases; i++ {
		sum := 0.0
		for j := 0; j < NumBases; j++ {
			sum += q.MustAt(i, j)
		}
		if err := q.Set(i, i, -sum); err != nil {
			return nil, fmt.Errorf("ratematrix: Build: %w", err)
		}
	}
	return q, nil
}
