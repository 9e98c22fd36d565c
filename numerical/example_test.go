// SPDX-License-Identifier: MIT
package numerical_test

import (
	"fmt"

	"github.com/katalvlaran/lvml/numerical"
)

func ExampleNewtonRaphson() {
	root, err := numerical.NewtonRaphson(func(x float64) float64 { return x*x*x - 8 }, 3, 50)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.6f\n", root)
	// Output: 2.000000
}
