// SPDX-License-Identifier: MIT

// Package metrics scores predictions against targets.
//
// Performance is the fraction of entries whose rounded prediction equals the
// target; PerformanceMatrix counts a row as correct only when every entry of
// the row is. The binary classification scores threshold ŷ at 0.5 (ŷ ≥ 0.5 is
// the positive class) and compare with targets y > 0.5:
//
//	c, _ := metrics.Binary(yHat, y)
//	fmt.Println(c.Accuracy(), c.Precision(), c.Recall(), c.F1())
//
// Ratios with an empty denominator are 0. R2 is the coefficient of
// determination and Summary the mean and sample standard deviation, both
// computed with gonum/stat.
package metrics
