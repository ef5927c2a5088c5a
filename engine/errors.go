package engine

import "errors"

// ErrMissingInput indicates Input carried no sequences to reconstruct
// from.
var ErrMissingInput = errors.New("engine: no sequences supplied")
