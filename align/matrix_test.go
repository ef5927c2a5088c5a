package align_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nileshpatra/gubbins/align"
)

func TestNewMatrix_OK(t *testing.T) {
	m, err := align.NewMatrix([]string{"A", "B"}, [][]byte{[]byte("ACGT"), []byte("ACGA")})
	require.NoError(t, err)
	require.Equal(t, 2, m.RowCount())
	require.Equal(t, 4, m.ColCount())
}

func TestNewMatrix_Ragged(t *testing.T) {
	_, err := align.NewMatrix([]string{"A", "B"}, [][]byte{[]byte("ACGT"), []byte("AC")})
	require.ErrorIs(t, err, align.ErrRaggedRows)
}

func TestNewMatrix_DuplicateName(t *testing.T) {
	_, err := align.NewMatrix([]string{"A", "A"}, [][]byte{[]byte("AC"), []byte("GT")})
	require.ErrorIs(t, err, align.ErrDuplicateName)
}

func TestNewMatrix_Empty(t *testing.T) {
	_, err := align.NewMatrix(nil, nil)
	require.ErrorIs(t, err, align.ErrEmptyAlignment)
}

func TestMatrix_ColumnAndRow(t *testing.T) {
	m, err := align.NewMatrix([]string{"A", "B", "C"}, [][]byte{[]byte("AC"), []byte("AG"), []byte("AT")})
	require.NoError(t, err)

	col0, err := m.Column(0)
	require.NoError(t, err)
	require.Equal(t, []byte("AAA"), col0)

	col1, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, []byte("CGT"), col1)

	row, err := m.Row("B")
	require.NoError(t, err)
	require.Equal(t, []byte("AG"), row)
}

func TestMatrix_SetAndAt(t *testing.T) {
	m, err := align.NewMatrix([]string{"A"}, [][]byte{[]byte("AC")})
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 'T'))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, byte('T'), v)
}

func TestMatrix_OutOfBounds(t *testing.T) {
	m, err := align.NewMatrix([]string{"A"}, [][]byte{[]byte("AC")})
	require.NoError(t, err)

	_, err = m.At(5, 0)
	require.ErrorIs(t, err, align.ErrIndexOutOfBounds)

	_, err = m.Column(5)
	require.ErrorIs(t, err, align.ErrIndexOutOfBounds)
}

func TestMatrix_RowIndexUnknown(t *testing.T) {
	m, err := align.NewMatrix([]string{"A"}, [][]byte{[]byte("AC")})
	require.NoError(t, err)

	_, err = m.RowIndex("Z")
	require.ErrorIs(t, err, align.ErrUnknownName)
}
