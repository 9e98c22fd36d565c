// SPDX-License-Identifier: MIT

package optim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvml/matrix"
	"gonum.org/v1/gonum/diff/fd"
)

const opCheckGradient = "CheckGradient"

// CheckGradient compares the analytic gradient of obj at params with central
// finite differences and returns the largest absolute coordinate difference.
// params is not modified.
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch, any objective error,
// ErrGradientMismatch when the difference exceeds tol.
func CheckGradient(obj Objective, params *matrix.Vector, tol float64) (float64, error) {
	if obj == nil {
		return 0, optimErrorf(opCheckGradient, matrix.ErrNilMatrix)
	}
	n := obj.Dim()
	if err := matrix.ValidateVecLen(params, n); err != nil {
		return 0, optimErrorf(opCheckGradient, err)
	}

	analytic := matrix.NewVectorFrom(make([]float64, n), matrix.WithNoValidateNaNInf())
	if _, err := obj.Evaluate(params.Clone(), analytic); err != nil {
		return 0, optimErrorf(opCheckGradient, err)
	}

	var evalErr error
	scratch := matrix.NewVectorFrom(make([]float64, n), matrix.WithNoValidateNaNInf())
	f := func(x []float64) float64 {
		l, err := obj.Evaluate(matrix.NewVectorFrom(x, matrix.WithNoValidateNaNInf()), scratch)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		return l
	}
	numeric := fd.Gradient(nil, f, params.Raw(), &fd.Settings{Formula: fd.Central})
	if evalErr != nil {
		return 0, optimErrorf(opCheckGradient, evalErr)
	}

	var (
		worst float64
		at    int
	)
	for i, g := range analytic.Data() {
		if d := math.Abs(g - numeric[i]); d > worst || math.IsNaN(d) {
			worst, at = d, i
		}
	}
	if worst > tol || math.IsNaN(worst) {
		return worst, optimErrorf(opCheckGradient,
			fmt.Errorf("coordinate %d: analytic %v, numeric %v: %w", at, analytic.Data()[at], numeric[at], ErrGradientMismatch))
	}

	return worst, nil
}
