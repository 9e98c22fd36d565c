// SPDX-License-Identifier: MIT

// Package matrix: public interfaces and enumerations shared by the kernels.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Kernels accept any Matrix and take a flat fast path when the operand is *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// NormKind names a scalar reduction. There is no default: callers always pass one.
type NormKind int

const (
	// NormL1 is Σ|x|.
	NormL1 NormKind = iota + 1
	// NormL2 is √Σx². On a matrix it is the entry-wise 2-norm (same as Frobenius).
	NormL2
	// NormFrobenius is √Σx² over all entries.
	NormFrobenius
	// NormMax is max|x|.
	NormMax
)

// String implements fmt.Stringer.
func (k NormKind) String() string {
	switch k {
	case NormL1:
		return "L1"
	case NormL2:
		return "L2"
	case NormFrobenius:
		return "Frobenius"
	case NormMax:
		return "Max"
	default:
		return "Unknown"
	}
}

// PoolKind selects the reduction applied to each pooling window.
type PoolKind int

const (
	// PoolMax keeps the window maximum.
	PoolMax PoolKind = iota + 1
	// PoolMin keeps the window minimum.
	PoolMin
	// PoolAverage keeps the window mean.
	PoolAverage
)

// String implements fmt.Stringer.
func (k PoolKind) String() string {
	switch k {
	case PoolMax:
		return "Max"
	case PoolMin:
		return "Min"
	case PoolAverage:
		return "Average"
	default:
		return "Unknown"
	}
}
