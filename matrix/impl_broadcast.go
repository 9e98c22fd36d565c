// SPDX-License-Identifier: MIT

// Package matrix - broadcasting.
//
// The broadcast set is closed: a scalar, a row vector (length == Cols, applied
// to every row) or a column vector (length == Rows, applied to every column).
// Any other length is ErrShapeMismatch; there is no implicit repetition.
package matrix

import "fmt"

const (
	opAddScalar    = "AddScalar"
	opRowBroadcast = "RowBroadcast"
	opColBroadcast = "ColBroadcast"
)

// AddScalar returns A + s element-wise.
// Errors: ErrNilMatrix.
func AddScalar(m Matrix, s float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddScalar, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opAddScalar, err)
	}
	out := d.Copy()
	for idx := range out.data {
		out.data[idx] += s
	}

	return out, nil
}

// rowBroadcast computes out[i,j] = f(A[i,j], v[j]).
func rowBroadcast(m Matrix, v *Vector, tag string, f func(a, b float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, matrixErrorf(tag, fmt.Errorf("row vector for %dx%d: %w", m.Rows(), m.Cols(), err))
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := newDense(d.r, d.c)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out.data[base+j] = f(d.data[base+j], v.data[j])
		}
	}

	return out, nil
}

// colBroadcast computes out[i,j] = f(A[i,j], v[i]).
func colBroadcast(m Matrix, v *Vector, tag string, f func(a, b float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateVecLen(v, m.Rows()); err != nil {
		return nil, matrixErrorf(tag, fmt.Errorf("column vector for %dx%d: %w", m.Rows(), m.Cols(), err))
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := newDense(d.r, d.c)
	var i, j, base int
	var vi float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		vi = v.data[i]
		for j = 0; j < d.c; j++ {
			out.data[base+j] = f(d.data[base+j], vi)
		}
	}

	return out, nil
}

// AddRowVector adds v (len == Cols) to every row of A. Typical use: bias terms.
func AddRowVector(m Matrix, v *Vector) (*Dense, error) {
	return rowBroadcast(m, v, opRowBroadcast, add)
}

// SubRowVector subtracts v (len == Cols) from every row of A.
func SubRowVector(m Matrix, v *Vector) (*Dense, error) {
	return rowBroadcast(m, v, opRowBroadcast, sub)
}

// MulRowVector scales column j of A by v[j].
func MulRowVector(m Matrix, v *Vector) (*Dense, error) {
	return rowBroadcast(m, v, opRowBroadcast, mul)
}

// AddColVector adds v[i] (len == Rows) to every element of row i.
func AddColVector(m Matrix, v *Vector) (*Dense, error) {
	return colBroadcast(m, v, opColBroadcast, add)
}

// SubColVector subtracts v[i] from every element of row i.
func SubColVector(m Matrix, v *Vector) (*Dense, error) {
	return colBroadcast(m, v, opColBroadcast, sub)
}

// MulColVector scales row i of A by v[i].
func MulColVector(m Matrix, v *Vector) (*Dense, error) {
	return colBroadcast(m, v, opColBroadcast, mul)
}
