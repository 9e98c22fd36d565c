// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (possibly wrapped with an
// operation tag via %w) and tests check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with fmt.Errorf("Op: %w", ErrX); callers still match errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimensions -> shape mismatch -> numeric (singular / NaN / convergence).

var (
	// ErrInvalidDimensions is returned when a requested size is negative.
	// Zero-sized containers are legal.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add of
	// different shapes, Mul where a.Cols != b.Rows, or a square-only kernel on a
	// rectangular input.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNilMatrix indicates that a nil container (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil container")

	// ErrEmpty is returned by reductions that have no meaningful value on an
	// empty container (Max, Min, ArgMax, MeanChannels).
	ErrEmpty = errors.New("matrix: empty container")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (Set, Apply, sanitizer arguments).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a pivot magnitude falls at or below the
	// configured epsilon during inversion or solving.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNotPositiveDefinite is returned by Cholesky on a non-SPD input.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrNotConverged indicates that an iterative routine (Jacobi eigen, SVD)
	// failed to reach the requested tolerance.
	ErrNotConverged = errors.New("matrix: iteration did not converge")

	// ErrUnknownNorm is returned for a NormKind outside the enumerated set.
	ErrUnknownNorm = errors.New("matrix: unknown norm kind")

	// ErrUnknownPool is returned for a PoolKind outside the enumerated set.
	ErrUnknownPool = errors.New("matrix: unknown pooling kind")

	// ErrInvalidArgument covers scalar arguments outside their domain
	// (non-positive stride or window, negative sigma, ...).
	ErrInvalidArgument = errors.New("matrix: invalid argument")
)
