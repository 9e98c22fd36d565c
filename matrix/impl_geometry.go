// SPDX-License-Identifier: MIT
// Package matrix: vector geometry and orthogonalization.
//
// Distances, the 3-D cross product, projection onto a direction and the
// Gram–Schmidt process. Every kernel validates its operands first and
// returns fresh containers.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opDistance    = "EuclideanDistance"
	opDistanceSq  = "SquaredDistance"
	opCross       = "Cross"
	opProjection  = "Projection"
	opGramSchmidt = "GramSchmidt"
)

// EuclideanDistance returns ‖a − b‖₂.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func EuclideanDistance(a, b *Vector) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDistance, err)
	}

	return floats.Distance(a.data, b.data, 2), nil
}

// SquaredDistance returns ‖a − b‖₂² without the square root.
func SquaredDistance(a, b *Vector) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDistanceSq, err)
	}
	var s, d float64
	for i := range a.data {
		d = a.data[i] - b.data[i]
		s += d * d
	}

	return s, nil
}

// Cross returns a × b for two 3-vectors.
// Errors: ErrNilMatrix, ErrShapeMismatch (length ≠ 3).
func Cross(a, b *Vector) (*Vector, error) {
	if err := ValidateVecLen(a, 3); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	if err := ValidateVecLen(b, 3); err != nil {
		return nil, matrixErrorf(opCross, err)
	}
	x, y := a.data, b.data
	out := newVec(3)
	out.data[0] = x[1]*y[2] - x[2]*y[1]
	out.data[1] = x[2]*y[0] - x[0]*y[2]
	out.data[2] = x[0]*y[1] - x[1]*y[0]

	return out, nil
}

// Projection returns the component of v along onto: (v·u / u·u)·u.
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrInvalidArgument (onto is zero).
func Projection(v, onto *Vector) (*Vector, error) {
	if err := ValidateSameLen(v, onto); err != nil {
		return nil, matrixErrorf(opProjection, err)
	}
	uu := floats.Dot(onto.data, onto.data)
	if uu == 0 {
		return nil, matrixErrorf(opProjection, fmt.Errorf("zero direction: %w", ErrInvalidArgument))
	}
	out := newVec(len(v.data))
	floats.ScaleTo(out.data, floats.Dot(v.data, onto.data)/uu, onto.data)

	return out, nil
}

// GramSchmidt orthonormalizes the columns of m (modified Gram–Schmidt) and
// returns Q with the same shape: column j of Q spans the same space as the
// first j+1 columns of m.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (rows < cols), ErrSingular when a
// column's residual norm is <= eps (WithEpsilon), i.e. the columns are
// linearly dependent.
// Complexity: Time O(r·c²), Space O(r·c).
func GramSchmidt(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opGramSchmidt, err)
	}
	r, c := m.Rows(), m.Cols()
	if r < c {
		return nil, matrixErrorf(opGramSchmidt, fmt.Errorf("%dx%d: %w", r, c, ErrShapeMismatch))
	}
	o := gatherOptions(opts...)
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opGramSchmidt, err)
	}

	// Work on columns as contiguous rows of the transpose.
	cols := make([][]float64, c)
	var i, j int
	for j = 0; j < c; j++ {
		cols[j] = make([]float64, r)
		for i = 0; i < r; i++ {
			cols[j][i] = src.data[i*c+j]
		}
	}
	var norm float64
	for j = 0; j < c; j++ {
		for i = 0; i < j; i++ {
			floats.AddScaled(cols[j], -floats.Dot(cols[i], cols[j]), cols[i])
		}
		norm = floats.Norm(cols[j], 2)
		if norm <= o.eps || math.IsNaN(norm) {
			return nil, matrixErrorf(opGramSchmidt, fmt.Errorf("column %d: %w", j, ErrSingular))
		}
		floats.Scale(1/norm, cols[j])
	}

	q := newDense(r, c)
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			q.data[i*c+j] = cols[j][i]
		}
	}

	return q, nil
}
