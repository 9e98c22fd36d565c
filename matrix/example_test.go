// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvml/matrix"
)

// ExampleMul multiplies a 2×3 by a 3×2 matrix.
func ExampleMul() {
	a := matrix.MustDense(2, 3, 1, 2, 3, 4, 5, 6)
	b := matrix.MustDense(3, 2, 7, 8, 9, 10, 11, 12)

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.ToRows())
	// Output: [[58 64] [139 154]]
}

// ExampleInverse inverts a 2×2 matrix and reports a singular one.
func ExampleInverse() {
	inv, err := matrix.Inverse(matrix.MustDense(2, 2, 1, 2, 3, 4))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range inv.ToRows() {
		fmt.Printf("%.2f\n", row)
	}

	_, err = matrix.Inverse(matrix.MustDense(2, 2, 1, 2, 2, 4))
	fmt.Println(err)
	// Output:
	// [-2.00 1.00]
	// [1.50 -0.50]
	// Inverse: pivot 1: matrix: singular matrix
}

// ExampleVector_Scale doubles a vector.
func ExampleVector_Scale() {
	v := matrix.NewVectorFrom([]float64{1, 2, 3})
	fmt.Println(v.Scale(2))
	// Output: [2 4 6]
}

// ExampleConvolve2D applies a 2×2 diagonal kernel with stride 2.
func ExampleConvolve2D() {
	img := matrix.MustDense(4, 4,
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16)
	k := matrix.MustDense(2, 2, 1, 0, 0, 1)

	out, err := matrix.Convolve2D(img, k, 2, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.ToRows())
	// Output: [[7 11] [23 27]]
}

// ExampleAddRowVector adds a bias row to every row.
func ExampleAddRowVector() {
	x := matrix.MustDense(2, 2, 1, 2, 3, 4)
	y, _ := matrix.AddRowVector(x, matrix.NewVectorFrom([]float64{10, 20}))
	fmt.Println(y.ToRows())
	// Output: [[11 22] [13 24]]
}
