// Package builder generates synthetic core.Graph topologies for tests:
// stars, paths, cycles, and complete graphs. The engine's test suite
// uses Star to build its star fixture without hand-assembling adjacency
// by AddVertex/AddEdge calls one at a time.
//
// Constructors follow a single contract: validate parameters early,
// return only sentinel errors, and emit vertices/edges in a stable order
// so fixtures are reproducible across test runs.
package builder
