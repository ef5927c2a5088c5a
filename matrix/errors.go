package matrix

import "errors"

// Sentinel errors for the matrix package. Callers branch on these via
// errors.Is; they are never wrapped at the definition site, only at call
// boundaries with fmt.Errorf("%w", ...).
var (
	// ErrInvalidDimensions indicates a requested shape has rows or cols <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, dim).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates a nil Matrix was passed where one was required.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates two operands have incompatible shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSymmetric indicates Eigen was given a matrix that is not
	// symmetric within the caller-supplied tolerance.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrEigenFailed indicates the Jacobi rotation sweep did not converge
	// within the given iteration budget.
	ErrEigenFailed = errors.New("matrix: eigendecomposition failed to converge")

	// ErrNonFinite indicates a NaN or ±Inf value was produced or supplied
	// where only finite values are acceptable.
	ErrNonFinite = errors.New("matrix: non-finite value")
)
