package builder

import "errors"

// Sentinel errors for the builder package.
var (
	// ErrTooFewVertices indicates n is below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrConstructFailed indicates BuildGraph received a nil constructor.
	// Errors returned by a constructor are wrapped as they are.
	ErrConstructFailed = errors.New("builder: construction failed")
)
