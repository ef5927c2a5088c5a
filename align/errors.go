package align

import "errors"

// Sentinel errors for the align package.
var (
	// ErrEmptyAlignment indicates zero rows or zero columns were given.
	ErrEmptyAlignment = errors.New("align: alignment has no rows or columns")

	// ErrRaggedRows indicates two rows of the input had different lengths.
	ErrRaggedRows = errors.New("align: sequence rows have mismatched lengths")

	// ErrDuplicateName indicates two rows shared the same sequence name.
	ErrDuplicateName = errors.New("align: duplicate sequence name")

	// ErrUnknownName indicates a row lookup by name found no match.
	ErrUnknownName = errors.New("align: unknown sequence name")

	// ErrIndexOutOfBounds indicates a row or column index outside range.
	ErrIndexOutOfBounds = errors.New("align: index out of bounds")
)
