// Package align provides a dense, row-major in-memory representation of
// a multiple sequence alignment, shared by the pattern compressor, the
// reconstruction engine, and the FASTA I/O layer.
//
// Complexity: construction is O(rows*cols); Column and row lookups are
// O(rows) and O(1) respectively.
package align
