package matrix_test

import (
	"math"
	"testing"

	"github.com/nileshpatra/gubbins/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 2)
	b, _ := matrix.NewDense(3, 2)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAdd_OK(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
	res, err := matrix.Add(a, b)
	require.NoError(t, err)
	v, _ := res.At(1, 1)
	require.Equal(t, 12.0, v)
}

func TestScale_OK(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, -2}})
	res, err := matrix.Scale(a, 3)
	require.NoError(t, err)
	v, _ := res.At(0, 1)
	require.Equal(t, -6.0, v)
}

func TestMul_DimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 2)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_Identity(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	id, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	res, err := matrix.Mul(a, id)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, _ := a.At(i, j)
			got, _ := res.At(i, j)
			require.InDelta(t, want, got, 1e-12)
		}
	}
}

func TestEigen_RejectsAsymmetric(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {0, 0}})
	_, _, err := matrix.Eigen(a, 1e-9, 100)
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)
}

func TestEigen_DiagonalMatrix(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 5}})
	eigs, q, err := matrix.Eigen(a, 1e-12, 100)
	require.NoError(t, err)
	require.ElementsMatch(t, []float64{2, 5}, roundAll(eigs))
	// Q should be orthogonal: Q*Q^T = I.
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	prod, err := matrix.Mul(q, qt)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got, _ := prod.At(i, j)
			require.InDelta(t, want, got, 1e-9)
		}
	}
}

func TestEigen_Reconstructs2x2Symmetric(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
	eigs, q, err := matrix.Eigen(a, 1e-12, 200)
	require.NoError(t, err)

	lambda, _ := matrix.NewDense(2, 2)
	for i, v := range eigs {
		_ = lambda.Set(i, i, v)
	}
	qt, _ := matrix.Transpose(q)
	tmp, err := matrix.Mul(q, lambda)
	require.NoError(t, err)
	recon, err := matrix.Mul(tmp, qt)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, _ := a.At(i, j)
			got, _ := recon.At(i, j)
			require.InDelta(t, want, got, 1e-6)
		}
	}
}

func roundAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = math.Round(v*1e6) / 1e6
	}
	return out
}
