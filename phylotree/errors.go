package phylotree

import "errors"

// Sentinel errors for the phylotree package.
var (
	// ErrLabelCollision indicates a synthesized "Node_k" label coincides
	// with an existing taxon label.
	ErrLabelCollision = errors.New("phylotree: synthesized label collides with a taxon label")

	// ErrEmptyGraph indicates Compile was given a graph with no vertices.
	ErrEmptyGraph = errors.New("phylotree: graph has no vertices")

	// ErrMissingRoot indicates the root ID is not present in the graph.
	ErrMissingRoot = errors.New("phylotree: root vertex not found")

	// ErrUnknownLabel indicates IndexOf was given a label the tree does
	// not contain.
	ErrUnknownLabel = errors.New("phylotree: unknown label")
)
