// Package translogcache computes, for a given branch length and
// instantaneous rate matrix Q, the element-wise natural log of the
// transition probability matrix P(t) = exp(tQ).
//
// Q need not be symmetric, but with this package's rate-matrix
// convention Q[i][j] = pi[i]*rho(i,j) (see ratematrix), it admits a
// symmetric similarity transform: with D = diag(sqrt(pi)), the matrix
// B = D^-1 * Q * D has entries sqrt(pi[i]*pi[j])*rho(i,j), manifestly
// symmetric. Diagonalizing B with matrix.Eigen (which only accepts
// symmetric input) gives B = U * diag(lambda) * U^T, and
// exp(tQ) = D * U * diag(exp(t*lambda)) * U^T * D^-1. This reuses the
// Jacobi eigensolver already in the matrix package rather than
// introducing a general (non-symmetric) matrix-exponential routine.
//
// A zero-length branch is a special case: Compute returns the literal
// identity matrix (1 on the diagonal, 0 elsewhere), not its logarithm.
// This mirrors the reference tool's branch-length-zero shortcut, whose
// output is later summed directly into log-likelihood accumulators
// alongside genuine log-probabilities — an inconsistency that existing
// alignments and ancestral-state expectations are built around, so
// Compute preserves it rather than "fixing" it to log(1)=0 here.
//
// Complexity: Compute is O(1) (fixed 4x4 eigendecomposition).
//
// Errors: Compute returns ErrNumericFailure if the eigendecomposition
// does not converge, or if reassembly produces a non-finite or
// meaningfully negative probability.
package translogcache
