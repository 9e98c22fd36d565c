// SPDX-License-Identifier: MIT
// Package matrix - public constructors and small convenience helpers.
//
// Purpose:
//   - Zero/one/identity/diagonal builders with the same validation as NewDense.
//   - Short aliases for the most common kernels.

package matrix

import "fmt"

// NewZeros returns an r×c zero matrix (alias of NewDense).
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// Ones returns an r×c matrix filled with 1.
func Ones(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	m.Fill(1)

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions for n < 0.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewIdentity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// newIdentity is NewIdentity without validation (internal, n >= 0).
func newIdentity(n int) *Dense {
	m := newDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// ZerosLike returns a zero matrix with m's shape.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ZerosLike: %w", err)
	}

	return newDense(m.Rows(), m.Cols()), nil
}

// IdentityLike returns the identity with m's (square) size.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("IdentityLike: %w", err)
	}

	return newIdentity(m.Rows()), nil
}

// Diag returns the square matrix with v on the main diagonal.
func Diag(v *Vector) (*Dense, error) {
	if err := ValidateVectorNotNil(v); err != nil {
		return nil, fmt.Errorf("Diag: %w", err)
	}
	n := len(v.data)
	m := newDense(n, n)
	for i, x := range v.data {
		m.data[i*n+i] = x
	}

	return m, nil
}

// MustDense is NewDenseFrom for literals in examples and tests; it panics on error.
func MustDense(rows, cols int, data ...float64) *Dense {
	m, err := NewDenseFrom(rows, cols, data)
	if err != nil {
		panic(err)
	}

	return m
}

// CloneMatrix returns a deep copy of any Matrix.
func CloneMatrix(m Matrix) Matrix { return m.Clone() }

// T is shorthand for Transpose.
func T(m Matrix) (*Dense, error) { return Transpose(m) }
