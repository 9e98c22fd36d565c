// SPDX-License-Identifier: MIT

// Package matrix - inversion, determinant, LU factorizations and linear solves.
//
// All routines copy their input to a private flat buffer first; callers'
// matrices are never mutated. Pivot magnitudes at or below the resolved
// epsilon (WithEpsilon, DefaultEpsilon) are treated as singular.
package matrix

import (
	"fmt"
	"math"
)

// Inverse computes A⁻¹ by Gauss–Jordan elimination with partial pivoting.
//
// Implementation:
//   - Stage 1: validate non-nil & square; copy A into a working buffer and
//     seed the right half with the identity.
//   - Stage 2: for every column k pick the row with the largest |a[i,k]|, i ≥ k;
//     a pivot with magnitude <= eps fails with ErrSingular.
//   - Stage 3: swap, normalize the pivot row, eliminate column k from every
//     other row (both halves).
//
// Errors: ErrNilMatrix, ErrShapeMismatch (non-square), ErrSingular.
//
// Complexity: Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := src.r
	a := make([]float64, n*n)
	copy(a, src.data)
	inv := newIdentity(n)

	var (
		i, j, k, p int
		pivot      float64
		best, f    float64
	)
	for k = 0; k < n; k++ {
		// Stage 2: partial pivot search.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= o.eps {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		if p != k {
			swapRows(a, n, p, k)
			swapRows(inv.data, n, p, k)
		}

		// Stage 3: normalize and eliminate.
		pivot = a[k*n+k]
		for j = 0; j < n; j++ {
			a[k*n+j] /= pivot
			inv.data[k*n+j] /= pivot
		}
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			f = a[i*n+k]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
				inv.data[i*n+j] -= f * inv.data[k*n+j]
			}
		}
	}

	return inv, nil
}

// swapRows exchanges rows p and q of a flat n-column buffer.
func swapRows(buf []float64, n, p, q int) {
	rp, rq := buf[p*n:(p+1)*n], buf[q*n:(q+1)*n]
	for j := 0; j < n; j++ {
		rp[j], rq[j] = rq[j], rp[j]
	}
}

// lupInPlace factorizes the n×n buffer a into packed L\U with partial pivoting.
// perm[i] receives the source row placed at row i; swaps counts row exchanges.
// Returns the index of the first pivot with magnitude <= eps, or -1.
func lupInPlace(a []float64, n int, eps float64) (perm []int, swaps, badPivot int) {
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	badPivot = -1
	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= eps {
			if badPivot < 0 {
				badPivot = k
			}
			continue // column already eliminated; nothing to divide by
		}
		if p != k {
			swapRows(a, n, p, k)
			perm[p], perm[k] = perm[k], perm[p]
			swaps++
		}
		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / a[k*n+k]
			a[i*n+k] = f // store multiplier in the L part
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return perm, swaps, badPivot
}

// Det computes det(A) through LU elimination with partial pivoting.
// Each row swap flips the sign. A pivot with |p| <= eps (WithEpsilon,
// DefaultEpsilon) yields exactly 0 with a nil error, so Det and Inverse agree
// on which inputs are singular.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (non-square).
// Complexity: Time O(n³), Space O(n²).
func Det(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	src, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	o := gatherOptions(opts...)
	n := src.r
	a := make([]float64, n*n)
	copy(a, src.data)

	_, swaps, bad := lupInPlace(a, n, o.eps)
	if bad >= 0 {
		return 0, nil
	}
	det := 1.0
	for i := 0; i < n; i++ {
		det *= a[i*n+i]
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det, nil
}

// LU computes the Doolittle factorization A = L·U without pivoting
// (L unit lower-triangular, U upper-triangular). Deterministic; use LUP for
// inputs that need row exchanges.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrSingular (zero pivot U[k,k]).
// Complexity: Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.r
	L := newIdentity(n)
	U := newDense(n, n)
	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		// Row i of U.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a.data[i*n+j] - sum
		}
		if math.Abs(U.data[i*n+i]) <= o.eps {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}
		// Column i of L.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a.data[j*n+i] - sum) / U.data[i*n+i]
		}
	}

	return L, U, nil
}

// LUP computes P·A = L·U with partial pivoting. perm[i] is the row of A that
// landed on row i, so P[i, perm[i]] = 1.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrSingular.
func LUP(m Matrix, opts ...Option) (L, U *Dense, perm []int, err error) {
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	o := gatherOptions(opts...)
	src, err := toDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	n := src.r
	a := make([]float64, n*n)
	copy(a, src.data)
	perm, _, bad := lupInPlace(a, n, o.eps)
	if bad >= 0 {
		return nil, nil, nil, matrixErrorf(opLUP, fmt.Errorf("pivot %d: %w", bad, ErrSingular))
	}

	L, U = newIdentity(n), newDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Solve returns x with A·x = b using LUP forward and back substitution.
// Errors: ErrNilMatrix, ErrShapeMismatch (non-square A or len(b) != n), ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func Solve(m Matrix, b *Vector, opts ...Option) (*Vector, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := src.r
	a := make([]float64, n*n)
	copy(a, src.data)
	perm, _, bad := lupInPlace(a, n, o.eps)
	if bad >= 0 {
		return nil, matrixErrorf(opSolve, fmt.Errorf("pivot %d: %w", bad, ErrSingular))
	}

	x := newVec(n)
	var (
		i, k int
		sum  float64
	)
	// Forward: L·y = P·b (unit diagonal).
	for i = 0; i < n; i++ {
		sum = b.data[perm[i]]
		for k = 0; k < i; k++ {
			sum -= a[i*n+k] * x.data[k]
		}
		x.data[i] = sum
	}
	// Backward: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x.data[i]
		for k = i + 1; k < n; k++ {
			sum -= a[i*n+k] * x.data[k]
		}
		x.data[i] = sum / a[i*n+i]
	}

	return x, nil
}

// PseudoInverse returns the left Moore–Penrose inverse (AᵀA)⁻¹Aᵀ of a
// full-column-rank r×c matrix (result is c×r).
// Errors: ErrNilMatrix, ErrSingular when AᵀA is singular (rank-deficient A).
func PseudoInverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	at, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	ata, err := Mul(at, m)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	inv, err := Inverse(ata, opts...)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	out, err := Mul(inv, at)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	return out, nil
}
