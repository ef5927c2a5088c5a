package translogcache

import "errors"

// ErrNumericFailure indicates the eigendecomposition of the symmetrized
// rate matrix did not converge, or reassembly of exp(tQ) produced a
// non-finite or meaningfully negative transition probability.
var ErrNumericFailure = errors.New("translogcache: numeric failure computing transition probabilities")
