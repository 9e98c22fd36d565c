// SPDX-License-Identifier: MIT
package initializer_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvml/initializer"
)

func ExampleMatrix() {
	w, _ := initializer.Matrix(64, 32, initializer.HeUniform, initializer.WithSeed(42))
	bound := math.Sqrt(6.0 / 64)
	inside := true
	for _, x := range w.Data() {
		inside = inside && math.Abs(x) <= bound
	}
	fmt.Println(w.Rows(), w.Cols(), inside)
	// Output: 64 32 true
}
