// Package matrix provides a small dense linear-algebra substrate used by
// the substitution-model kernel: a row-major float64 matrix type plus a
// handful of operations (Add, Scale, Mul, Transpose, and a symmetric
// Jacobi eigendecomposition). The transition-probability cache uses Mul,
// Transpose and Eigen; Add and Scale are exercised only by this
// package's tests.
//
// The package intentionally does not attempt to be a general-purpose
// numerical library — no LU/QR/Inverse, no sparse formats, no
// graph-to-matrix adapters.
package matrix
