// Package parallel fans the unique column patterns of an alignment out
// across a fixed pool of goroutines, each running the same
// reconstruction worker against its own slice of patterns.
//
// Patterns write into disjoint column ranges of the shared
// align.Matrix, so no locking is needed on the matrix itself. Each
// worker accumulates its own SNP-count map and stores it in its own slot
// of a per-worker slice; Run reduces them into one map after every worker
// has finished. If any worker returns an error, Run cancels the shared
// context so idle workers stop picking up new patterns, then returns
// the first error observed.
//
// Complexity: Run is O(P/W) wall-clock for P patterns and W workers,
// assuming patterns cost roughly the same to reconstruct.
package parallel
