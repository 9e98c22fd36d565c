// SPDX-License-Identifier: MIT
package glm_test

import (
	"fmt"

	"github.com/katalvlaran/lvml/glm"
	"github.com/katalvlaran/lvml/matrix"
	"github.com/katalvlaran/lvml/optim"
)

func ExampleFit() {
	x := matrix.MustDense(3, 1, 1, 2, 3)
	y := matrix.NewVectorFrom([]float64{3, 5, 7})

	params, res, err := glm.Fit(x, y, glm.LinearRegression, optim.Config{
		Rule:          optim.Plain,
		LearningRate:  0.1,
		MaxIterations: 5000,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s slope=%.4f intercept=%.4f\n", res.State, params.Raw()[0], params.Raw()[1])
	// Output: MaxIterationsReached slope=2.0000 intercept=1.0000
}
