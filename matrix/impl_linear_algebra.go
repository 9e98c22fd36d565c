// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling, Hadamard and quotient products, matrix-vector products,
// trace, Kronecker and outer products. All functions perform strict
// fail-fast validation and return wrapped sentinels on dimension mismatches.
//
// Every kernel returns a freshly allocated *Dense and never mutates its inputs.
// When the operands are *Dense the kernel walks the flat backing slices;
// otherwise it falls back to At/Set with the same fixed loop order.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial sum value for substitutions and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opElemDiv   = "ElemDiv"
	opMatVec    = "MatVec"
	opVecMat    = "VecMat"
	opTrace     = "Trace"
	opKronecker = "Kronecker"
	opOuter     = "Outer"
	opEigen     = "Eigen"
	opInverse   = "Inverse"
	opDet       = "Det"
	opLU        = "LU"
	opLUP       = "LUP"
	opQR        = "QR"
	opCholesky  = "Cholesky"
	opSolve     = "Solve"
	opPinv      = "PseudoInverse"
	opSVD       = "SVD"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// toDense returns m itself when it already is a *Dense, otherwise a flat copy
// materialized through At. Callers that mutate the result must Copy first.
//
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := newDense(rows, cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// zipWith computes out[i,j] = f(a[i,j], b[i,j]) for same-shaped operands.
// Shared by Add, Sub, Hadamard and ElemDiv.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense: single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func zipWith(a, b Matrix, opTag string, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = f(da.data[idx], db.data[idx])
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int     // loop iterators (deterministic order)
		av, bv float64 // element temporaries
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return zipWith(a, b, opAdd, add) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Sub(a, b Matrix) (*Dense, error) { return zipWith(a, b, opSub, sub) }

// Hadamard computes the element-wise product C = A ⊙ B.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Hadamard(a, b Matrix) (*Dense, error) { return zipWith(a, b, opHadamard, mul) }

// ElemDiv computes C[i,j] = A[i,j] / B[i,j]. Zero divisors follow IEEE-754.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func ElemDiv(a, b Matrix) (*Dense, error) {
	return zipWith(a, b, opElemDiv, func(x, y float64) float64 { return x / y })
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(aRows, bCols)
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
		err             error
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var (
		v   float64
		err error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns α·m. ScaleScalar is an alias kept for broadcast symmetry.
// Errors: ErrNilMatrix.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return d.Scale(alpha), nil
}

// ScaleScalar is Scale under its broadcast name.
func ScaleScalar(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// MatVec computes y = A·x with len(x) == A.Cols.
// Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x *Vector) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := d.r, d.c
	y := newVec(rows)
	var (
		i, j, base int
		sum        float64
	)
	for i = 0; i < rows; i++ {
		base = i * cols
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			sum += d.data[base+j] * x.data[j]
		}
		y.data[i] = sum
	}

	return y, nil
}

// VecMat computes the row-vector product yᵀ = xᵀ·A with len(x) == A.Rows.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func VecMat(x *Vector, m Matrix) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	rows, cols := d.r, d.c
	y := newVec(cols)
	var (
		i, j, base int
		xi         float64
	)
	// i→j keeps row-major access on A.
	for i = 0; i < rows; i++ {
		xi = x.data[i]
		if xi == 0 {
			continue
		}
		base = i * cols
		for j = 0; j < cols; j++ {
			y.data[j] += xi * d.data[base+j]
		}
	}

	return y, nil
}

// Trace returns Σ A[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var (
		i   int
		v   float64
		sum = ZeroSum
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// Kronecker returns A ⊗ B with shape (ra·rb)×(ca·cb):
// block (i,j) equals A[i,j]·B.
// Errors: ErrNilMatrix.
// Complexity: Time O(ra·ca·rb·cb).
func Kronecker(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	ra, ca, rb, cb := da.r, da.c, db.r, db.c
	outCols := ca * cb
	res := newDense(ra*rb, outCols)
	var (
		i, j, p, q int
		aij        float64
	)
	for i = 0; i < ra; i++ {
		for j = 0; j < ca; j++ {
			aij = da.data[i*ca+j]
			for p = 0; p < rb; p++ {
				for q = 0; q < cb; q++ {
					res.data[(i*rb+p)*outCols+j*cb+q] = aij * db.data[p*cb+q]
				}
			}
		}
	}

	return res, nil
}

// Outer returns u·vᵀ with shape len(u)×len(v).
// Errors: ErrNilMatrix.
func Outer(u, v *Vector) (*Dense, error) {
	if u == nil || v == nil {
		return nil, matrixErrorf(opOuter, ErrNilMatrix)
	}
	rows, cols := len(u.data), len(v.data)
	res := newDense(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[i*cols+j] = u.data[i] * v.data[j]
		}
	}

	return res, nil
}
