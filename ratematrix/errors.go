package ratematrix

import "errors"

// ErrBadModel indicates the supplied base frequencies or exchangeability
// coefficients are not a valid substitution model: frequencies that do
// not sum to ~1, a negative coefficient, or a non-finite value.
var ErrBadModel = errors.New("ratematrix: invalid substitution model")
