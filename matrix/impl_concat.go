// SPDX-License-Identifier: MIT
// Package matrix: concatenation and flattening kernels.
//
// All kernels validate every operand before allocating and return fresh
// containers; inputs are never aliased by the result.

package matrix

import "fmt"

const (
	opConcatVectors = "ConcatVectors"
	opHStack        = "HStack"
	opVStack        = "VStack"
	opFlatten       = "Flatten"
	opFlattenT3     = "FlattenTensor3"
)

// ConcatVectors returns the vectors laid end to end. No operands yields an
// empty Vector.
// Errors: ErrNilMatrix.
func ConcatVectors(vs ...*Vector) (*Vector, error) {
	n := 0
	for i, v := range vs {
		if v == nil {
			return nil, matrixErrorf(opConcatVectors, fmt.Errorf("operand %d: %w", i, ErrNilMatrix))
		}
		n += len(v.data)
	}
	out := make([]float64, 0, n)
	for _, v := range vs {
		out = append(out, v.data...)
	}

	return &Vector{data: out, validateNaNInf: DefaultValidateNaNInf}, nil
}

// HStack places the operands side by side: r × (c₁ + c₂ + …).
// Every operand must have the same row count.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func HStack(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return newDense(0, 0), nil
	}
	dense := make([]*Dense, len(ms))
	rows, cols := -1, 0
	for k, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(opHStack, fmt.Errorf("operand %d: %w", k, err))
		}
		if rows >= 0 && m.Rows() != rows {
			return nil, matrixErrorf(opHStack, fmt.Errorf("operand %d has %d rows, want %d: %w", k, m.Rows(), rows, ErrShapeMismatch))
		}
		rows = m.Rows()
		cols += m.Cols()
	}
	for k, m := range ms {
		d, err := toDense(m)
		if err != nil {
			return nil, matrixErrorf(opHStack, err)
		}
		dense[k] = d
	}

	out := newDense(rows, cols)
	var i, off int
	for i = 0; i < rows; i++ {
		off = i * cols
		for _, d := range dense {
			off += copy(out.data[off:], d.data[i*d.c:(i+1)*d.c])
		}
	}

	return out, nil
}

// VStack places the operands on top of each other: (r₁ + r₂ + …) × c.
// Every operand must have the same column count.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func VStack(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return newDense(0, 0), nil
	}
	rows, cols := 0, -1
	for k, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(opVStack, fmt.Errorf("operand %d: %w", k, err))
		}
		if cols >= 0 && m.Cols() != cols {
			return nil, matrixErrorf(opVStack, fmt.Errorf("operand %d has %d cols, want %d: %w", k, m.Cols(), cols, ErrShapeMismatch))
		}
		cols = m.Cols()
		rows += m.Rows()
	}

	out := newDense(rows, cols)
	off := 0
	for _, m := range ms {
		d, err := toDense(m)
		if err != nil {
			return nil, matrixErrorf(opVStack, err)
		}
		off += copy(out.data[off:], d.data)
	}

	return out, nil
}

// Flatten returns the entries of m in row-major order.
// Errors: ErrNilMatrix.
func Flatten(m Matrix) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}

	return NewVectorFrom(d.data), nil
}

// FlattenTensor3 returns the entries of t channel by channel, each channel
// row-major.
// Errors: ErrNilMatrix.
func FlattenTensor3(t *Tensor3) (*Vector, error) {
	if t == nil {
		return nil, matrixErrorf(opFlattenT3, ErrNilMatrix)
	}

	return NewVectorFrom(t.data), nil
}
