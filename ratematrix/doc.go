// Package ratematrix builds the 4x4 instantaneous rate matrix Q for a
// time-reversible nucleotide substitution model from a set of base
// frequencies and exchangeability coefficients.
//
// Bases are indexed A=0, C=1, G=2, T=3 throughout the package; the
// exchangeability coefficients follow the RAxML info-file convention of
// six pairs in the order AC, AG, AT, CG, CT, GT.
//
// Q uses a source-frequency GTR construction: entry (i, j) for i != j is
// pi_i * r(i, j), where r(i, j) is the exchangeability coefficient for
// the unordered pair {i, j}. Detailed balance then holds with respect to
// the measure proportional to 1/pi rather than pi itself (pi_j * q_ij =
// pi_i * q_ji); the translogcache package's symmetrization is built
// around this direction, not the more common target-frequency
// convention.
//
// Complexity: Build is O(1); Validate is O(1).
//
// Errors: Build returns ErrBadModel when frequencies do not sum to
// approximately 1, when any frequency or rate is negative, or when any
// input is non-finite.
package ratematrix
