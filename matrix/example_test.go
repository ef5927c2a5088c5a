package matrix_test

import (
	"fmt"

	"github.com/nileshpatra/gubbins/matrix"
)

// ExampleDense_At builds a small Dense matrix by hand and reads a value
// back out of it.
func ExampleDense_At() {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 1, 2)
	_ = m.Set(1, 0, 3)
	_ = m.Set(1, 1, 4)

	v, _ := m.At(1, 1)
	fmt.Println(v)

	// Output:
	// 4
}

// ExampleMul multiplies a 2x3 matrix by a 3x2 matrix and prints one entry
// of the product, the shape every rate-matrix and log-probability
// computation in this module relies on.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	b, _ := matrix.NewDenseFromRows([][]float64{
		{7, 8},
		{9, 10},
		{11, 12},
	})

	prod, _ := matrix.Mul(a, b)
	v, _ := prod.At(1, 0)
	fmt.Println(v)

	// Output:
	// 139
}

// ExampleTranspose swaps rows and columns of a Dense matrix.
func ExampleTranspose() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})

	t, _ := matrix.Transpose(m)
	v, _ := t.At(0, 1)
	fmt.Println(v)

	// Output:
	// 3
}
