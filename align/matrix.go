package align

import "fmt"

// Matrix is a dense R x L alignment: R named sequences, each L bytes
// long, stored row-major in a single flat buffer.
type Matrix struct {
	names     []string
	nameIndex map[string]int
	rows      int
	cols      int
	data      []byte
}

// NewMatrix builds a Matrix from parallel names and seqs slices. All
// sequences must share the same non-zero length, and names must be
// unique.
func NewMatrix(names []string, seqs [][]byte) (*Matrix, error) {
	if len(names) != len(seqs) {
		return nil, fmt.Errorf("align: NewMatrix: %d names but %d sequences: %w", len(names), len(seqs), ErrRaggedRows)
	}
	if len(names) == 0 || len(seqs[0]) == 0 {
		return nil, fmt.Errorf("align: NewMatrix: %w", ErrEmptyAlignment)
	}

	cols := len(seqs[0])
	rows := len(names)
	m := &Matrix{
		names:     make([]string, rows),
		nameIndex: make(map[string]int, rows),
		rows:      rows,
		cols:      cols,
		data:      make([]byte, rows*cols),
	}
	for i, name := range names {
		if len(seqs[i]) != cols {
			return nil, fmt.Errorf("align: NewMatrix: row %d (%s) has length %d, want %d: %w", i, name, len(seqs[i]), cols, ErrRaggedRows)
		}
		if _, exists := m.nameIndex[name]; exists {
			return nil, fmt.Errorf("align: NewMatrix: %s: %w", name, ErrDuplicateName)
		}
		m.names[i] = name
		m.nameIndex[name] = i
		copy(m.data[i*cols:(i+1)*cols], seqs[i])
	}
	return m, nil
}

// RowCount returns the number of sequences.
func (m *Matrix) RowCount() int { return m.rows }

// ColCount returns the alignment length.
func (m *Matrix) ColCount() int { return m.cols }

// Names returns the sequence names in row order. The returned slice must
// not be mutated.
func (m *Matrix) Names() []string { return m.names }

// RowIndex returns the row index of the named sequence.
func (m *Matrix) RowIndex(name string) (int, error) {
	idx, ok := m.nameIndex[name]
	if !ok {
		return 0, fmt.Errorf("align: RowIndex(%s): %w", name, ErrUnknownName)
	}
	return idx, nil
}

// At returns the base at (row, col).
func (m *Matrix) At(row, col int) (byte, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("align: At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	return m.data[row*m.cols+col], nil
}

// Set assigns the base at (row, col).
func (m *Matrix) Set(row, col int, b byte) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return fmt.Errorf("align: Set(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	m.data[row*m.cols+col] = b
	return nil
}

// Column returns a copy of column col across all rows, in row order.
func (m *Matrix) Column(col int) ([]byte, error) {
	if col < 0 || col >= m.cols {
		return nil, fmt.Errorf("align: Column(%d): %w", col, ErrIndexOutOfBounds)
	}
	out := make([]byte, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.data[r*m.cols+col]
	}
	return out, nil
}

// Row returns a copy of the named sequence's full row.
func (m *Matrix) Row(name string) ([]byte, error) {
	idx, err := m.RowIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]byte, m.cols)
	copy(out, m.data[idx*m.cols:(idx+1)*m.cols])
	return out, nil
}
