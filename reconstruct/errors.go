package reconstruct

import "errors"

// ErrUnknownTaxon indicates a tree leaf's row index falls outside the
// alignment passed to Reconstruct.
var ErrUnknownTaxon = errors.New("reconstruct: leaf has no row in the alignment")
