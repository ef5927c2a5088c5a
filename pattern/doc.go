// Package pattern compresses an alignment into its set of unique column
// patterns: columns with identical base content across every taxon are
// grouped, since the ancestral reconstruction DP produces the same
// result for each of them. Only one reconstruction per unique pattern
// is needed; its result is replicated across every column in the group.
//
// Complexity: Compress is O(rows*cols).
package pattern
