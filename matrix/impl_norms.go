// SPDX-License-Identifier: MIT

// Package matrix - vector and entry-wise matrix norms.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const opNorm = "Norm"

// flatNorm evaluates kind over a flat slice; an empty slice has norm 0.
func flatNorm(xs []float64, kind NormKind) (float64, error) {
	if len(xs) == 0 {
		switch kind {
		case NormL1, NormL2, NormFrobenius, NormMax:
			return 0, nil
		default:
			return 0, matrixErrorf(opNorm, ErrUnknownNorm)
		}
	}
	switch kind {
	case NormL1:
		return floats.Norm(xs, 1), nil
	case NormL2, NormFrobenius:
		return floats.Norm(xs, 2), nil
	case NormMax:
		return floats.Norm(xs, math.Inf(1)), nil
	default:
		return 0, matrixErrorf(opNorm, ErrUnknownNorm)
	}
}

// VectorNorm returns ‖v‖ for the requested kind. NormFrobenius equals NormL2 on a vector.
// Errors: ErrNilMatrix, ErrUnknownNorm.
func VectorNorm(v *Vector, kind NormKind) (float64, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return flatNorm(v.data, kind)
}

// MatrixNorm returns the entry-wise norm of A:
// L1 = Σ|a|, L2 = Frobenius = √Σa², Max = max|a|.
// Errors: ErrNilMatrix, ErrUnknownNorm.
func MatrixNorm(m Matrix, kind NormKind) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return flatNorm(d.data, kind)
}
