// SPDX-License-Identifier: MIT
package cost_test

import (
	"fmt"

	"github.com/katalvlaran/lvml/cost"
	"github.com/katalvlaran/lvml/matrix"
)

func ExampleEvaluate() {
	yHat := matrix.NewVectorFrom([]float64{2, 3})
	y := matrix.NewVectorFrom([]float64{1, 1})

	loss, grad, _ := cost.Evaluate(cost.MSE, yHat, y)
	fmt.Println(loss, grad)
	// Output: 1.25 [0.5 1]
}
