package matrix

import "fmt"

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// ValidateSameShape returns ErrDimensionMismatch if a and b differ in
// Rows() or Cols().
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	return nil
}

// ValidateSquare returns ErrDimensionMismatch if m is not square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("%dx%d not square: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	return nil
}

// ValidateSymmetric returns ErrNotSymmetric if any |m[i][j]-m[j][i]| > tol.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			d := aij - aji
			if d < -tol || d > tol {
				return fmt.Errorf("entry (%d,%d): %w", i, j, ErrNotSymmetric)
			}
		}
	}
	return nil
}
