// SPDX-License-Identifier: MIT
package metrics_test

import (
	"fmt"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/katalvlaran/lvml/metrics"
)

func ExampleBinary() {
	yHat := matrix.NewVectorFrom([]float64{0.9, 0.2, 0.7, 0.4})
	y := matrix.NewVectorFrom([]float64{1, 0, 0, 1})

	c, _ := metrics.Binary(yHat, y)
	fmt.Printf("%+v acc=%.2f f1=%.2f\n", c, c.Accuracy(), c.F1())
	// Output: {TP:1 FP:1 TN:1 FN:1} acc=0.50 f1=0.50
}
