package translogcache

import (
	"fmt"
	"math"

	"github.com/nileshpatra/gubbins/matrix"
	"github.com/nileshpatra/gubbins/ratematrix"
)

// eigenTolerance bounds the Jacobi sweep's off-diagonal convergence and
// the symmetry check on the similarity-transformed matrix.
const eigenTolerance = 1e-10

// eigenMaxIter bounds the Jacobi sweep's rotation count for the fixed
// 4x4 problem size this package always solves.
const eigenMaxIter = 100

// negativeClamp is how far a reassembled probability may dip below zero
// before it is treated as genuine numeric failure rather than rounding
// noise from the eigendecomposition.
const negativeClamp = 1e-9

// Compute returns the element-wise natural log of exp(branchLength*q),
// the transition probability matrix for a branch of the given length
// under rate matrix q with equilibrium frequencies freqs.
//
// If branchLength is exactly 0, Compute returns the literal identity
// matrix (not its logarithm); see the package doc for why.
func Compute(q *matrix.Dense, freqs ratematrix.Frequencies, branchLength float64) (*matrix.Dense, error) {
	if branchLength == 0 {
		return identity(ratematrix.NumBases)
	}

	d, dinv, err := sqrtFreqDiagonals(freqs)
	if err != nil {
		return nil, err
	}

	b, err := symmetrize(q, d, dinv)
	if err != nil {
		return nil, err
	}

	lambda, u, err := matrix.Eigen(b, eigenTolerance, eigenMaxIter)
	if err != nil {
		return nil, fmt.Errorf("translogcache: Compute: %w: %v", ErrNumericFailure, err)
	}

	p, err := reassemble(lambda, u, d, dinv, branchLength)
	if err != nil {
		return nil, err
	}

	return logElements(p)
}

// sqrtFreqDiagonals returns diag(sqrt(freqs)) and its inverse.
func sqrtFreqDiagonals(freqs ratematrix.Frequencies) (d, dinv *matrix.Dense, err error) {
	n := ratematrix.NumBases
	d, _ = matrix.NewDense(n, n)
	dinv, _ = matrix.NewDense(n, n)
	for i, f := range freqs {
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, nil, fmt.Errorf("translogcache: sqrtFreqDiagonals: frequency[%d]=%v: %w", i, f, ErrNumericFailure)
		}
		root := math.Sqrt(f)
		_ = d.Set(i, i, root)
		_ = dinv.Set(i, i, 1.0/root)
	}
	return d, dinv, nil
}

// symmetrize computes B = D^-1 * Q * D, which is symmetric for this
// package's rate-matrix convention Q[i][j] = pi[i]*rho(i,j): expanding
// gives B[i][j] = sqrt(pi[i]*pi[j])*rho(i,j), manifestly symmetric in
// i and j.
func symmetrize(q, d, dinv *matrix.Dense) (*matrix.Dense, error) {
	dq, err := matrix.Mul(dinv, q)
	if err != nil {
		return nil, fmt.Errorf("translogcache: symmetrize: %w", err)
	}
	b, err := matrix.Mul(dq, d)
	if err != nil {
		return nil, fmt.Errorf("translogcache: symmetrize: %w", err)
	}
	return b, nil
}

// reassemble computes exp(t*Q) = D * U * diag(exp(t*lambda)) * U^T * D^-1.
func reassemble(lambda []float64, u, d, dinv *matrix.Dense, t float64) (*matrix.Dense, error) {
	n := len(lambda)
	expD, _ := matrix.NewDense(n, n)
	for i, l := range lambda {
		v := math.Exp(t * l)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("translogcache: reassemble: exp(t*lambda[%d])=%v: %w", i, v, ErrNumericFailure)
		}
		_ = expD.Set(i, i, v)
	}

	uT, err := matrix.Transpose(u)
	if err != nil {
		return nil, fmt.Errorf("translogcache: reassemble: %w", err)
	}

	step1, err := matrix.Mul(u, expD)
	if err != nil {
		return nil, fmt.Errorf("translogcache: reassemble: %w", err)
	}
	step2, err := matrix.Mul(step1, uT)
	if err != nil {
		return nil, fmt.Errorf("translogcache: reassemble: %w", err)
	}
	step3, err := matrix.Mul(d, step2)
	if err != nil {
		return nil, fmt.Errorf("translogcache: reassemble: %w", err)
	}
	p, err := matrix.Mul(step3, dinv)
	if err != nil {
		return nil, fmt.Errorf("translogcache: reassemble: %w", err)
	}
	return p, nil
}

// logElements returns a new matrix holding the natural log of each entry
// of p, clamping rounding-noise negatives to 0 before taking the log and
// failing on anything more negative than that.
func logElements(p *matrix.Dense) (*matrix.Dense, error) {
	n := p.Rows()
	out, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := p.MustAt(i, j)
			if v < 0 {
				if v < -negativeClamp {
					return nil, fmt.Errorf("translogcache: logElements: p[%d][%d]=%v: %w", i, j, v, ErrNumericFailure)
				}
				v = 0
			}
			_ = out.Set(i, j, math.Log(v))
		}
	}
	return out, nil
}

// identity returns the literal n x n identity matrix, unlogged.
func identity(n int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("translogcache: identity: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 1.0)
	}
	return m, nil
}
