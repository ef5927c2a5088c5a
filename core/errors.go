package core

import "errors"

// Sentinel errors for core graph operations. Callers branch on these via
// errors.Is.
var (
	// ErrEmptyVertexID indicates a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates AddVertex was called with a duplicate ID.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeExists indicates AddEdge was called for an (from,to) pair that
	// already has an edge, on a graph that does not allow multi-edges.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrBadWeight indicates a non-zero weight was given to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)
