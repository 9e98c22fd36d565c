// SPDX-License-Identifier: MIT

package optim

import "github.com/katalvlaran/lvml/matrix"

// Objective is a differentiable scalar function of a parameter Vector.
type Objective interface {
	// Dim is the required parameter length.
	Dim() int

	// Evaluate returns the loss at params and overwrites grad (len Dim) with
	// its gradient. params must not be modified.
	Evaluate(params, grad *matrix.Vector) (float64, error)
}

// Batched objectives can be evaluated on a subset of their samples.
type Batched interface {
	Objective

	// Len is the number of samples.
	Len() int

	// EvaluateBatch is Evaluate restricted to the samples in idx.
	EvaluateBatch(params, grad *matrix.Vector, idx []int) (float64, error)
}

// Masked objectives exclude some coordinates from regularization.
// RegularizationMask returns len Dim flags, or nil to regularize everything;
// false marks a coordinate (such as a bias) that is neither penalized nor clipped.
type Masked interface {
	RegularizationMask() []bool
}
