package pattern

import (
	"fmt"

	"github.com/nileshpatra/gubbins/align"
)

// Pattern is one unique column content and every column index in the
// source alignment that shares it, in ascending order.
type Pattern struct {
	Key     string
	Columns []int
}

// Table holds every unique pattern found in an alignment, in order of
// first occurrence (ascending column index of each pattern's first
// appearance).
type Table struct {
	Patterns []Pattern
}

// Compress scans aln column by column and groups identical columns into
// Patterns, preserving first-occurrence order.
func Compress(aln *align.Matrix) (*Table, error) {
	if aln == nil {
		return nil, fmt.Errorf("pattern: Compress: %w", align.ErrEmptyAlignment)
	}

	index := make(map[string]int)
	table := &Table{}

	for x := 0; x < aln.ColCount(); x++ {
		col, err := aln.Column(x)
		if err != nil {
			return nil, fmt.Errorf("pattern: Compress: %w", err)
		}
		key := string(col)

		if i, ok := index[key]; ok {
			table.Patterns[i].Columns = append(table.Patterns[i].Columns, x)
			continue
		}
		index[key] = len(table.Patterns)
		table.Patterns = append(table.Patterns, Pattern{Key: key, Columns: []int{x}})
	}

	return table, nil
}

// UniqueCount returns the number of distinct column patterns.
func (t *Table) UniqueCount() int { return len(t.Patterns) }

// TotalColumns returns the total number of original alignment columns
// represented across every pattern.
func (t *Table) TotalColumns() int {
	n := 0
	for _, p := range t.Patterns {
		n += len(p.Columns)
	}
	return n
}
