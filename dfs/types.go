package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for dfs operations.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex ID is not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a DFS traversal.
type Option func(*options)

type options struct {
	ctx           context.Context
	onVisit       func(id string) error
	onExit        func(id string) error
	fullTraversal bool
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets the context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook, called when a vertex is first
// discovered (before its children are visited). An error aborts the walk.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *options) { o.onVisit = fn }
}

// WithOnExit installs a post-order hook, called after all of a vertex's
// children have been fully explored. An error aborts the walk.
func WithOnExit(fn func(id string) error) Option {
	return func(o *options) { o.onExit = fn }
}

// WithFullTraversal makes DFS restart from every unvisited vertex,
// covering disconnected components (a forest rather than a single tree).
func WithFullTraversal() Option {
	return func(o *options) { o.fullTraversal = true }
}

// Result captures traversal order.
type Result struct {
	// PreOrder lists vertices in discovery order.
	PreOrder []string
	// PostOrder lists vertices in the order their subtrees finished.
	PostOrder []string
	// Parent maps a vertex to the vertex it was discovered from.
	Parent map[string]string
}
