package matrix

import (
	"fmt"
	"math"
)

const (
	opAdd   = "Add"
	opScale = "Scale"
	opMul   = "Mul"
	opEigen = "Eigen"
)

func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new Dense holding the element-wise sum of a and b.
// Complexity: O(rows*cols).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, _ := NewDense(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			_ = res.Set(i, j, av+bv)
		}
	}
	return res, nil
}

// Scale returns a new Dense holding alpha*m element-wise.
// Complexity: O(rows*cols).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, _ := NewDense(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			_ = res.Set(i, j, alpha*v)
		}
	}
	return res, nil
}

// Mul returns the matrix product a*b. a.Cols() must equal b.Rows().
// Complexity: O(rows_a*cols_a*cols_b).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, opErrorf(opMul, fmt.Errorf("%dx%d * %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, _ := NewDense(rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			av, _ := a.At(i, k)
			if av == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				bv, _ := b.At(k, j)
				cur, _ := res.At(i, j)
				_ = res.Set(i, j, cur+av*bv)
			}
		}
	}
	return res, nil
}

// Transpose returns a new Dense holding the transpose of m.
// Complexity: O(rows*cols).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf("Transpose", err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, _ := NewDense(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			_ = res.Set(j, i, v)
		}
	}
	return res, nil
}

// Eigen performs a classical Jacobi eigendecomposition of the symmetric
// matrix m, returning eigenvalues and an orthogonal matrix Q whose columns
// are the corresponding eigenvectors, such that m ≈ Q * diag(eigs) * Q^T.
//
// Contract: m must be non-nil, square, and symmetric within tol.
//
// Complexity: O(maxIter * n^3) time, O(n^2) space.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, opErrorf(opEigen, err)
	}
	n := m.Rows()
	a := m.Clone().(*Dense)
	q, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		_ = q.Set(i, i, 1.0)
	}

	for iter := 0; iter < maxIter; iter++ {
		// Find the largest off-diagonal entry (p,q).
		p, qi, maxOff := 0, 1, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off := math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, qi = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, aqq, apq := a.data[p*n+p], a.data[qi*n+qi], a.data[p*n+qi]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == qi {
				continue
			}
			aip, aiq := a.data[i*n+p], a.data[i*n+qi]
			newIP := c*aip - s*aiq
			newIQ := s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+qi], a.data[qi*n+i] = newIQ, newIQ
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[qi*n+qi] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+qi], a.data[qi*n+p] = 0, 0

		for i := 0; i < n; i++ {
			qip, qiq := q.data[i*n+p], q.data[i*n+qi]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+qi] = s*qip + c*qiq
		}
	}

	maxOff := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off := math.Abs(a.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, opErrorf(opEigen, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}
	return eigs, q, nil
}
