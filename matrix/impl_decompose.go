// SPDX-License-Identifier: MIT

// Package matrix - orthogonal and triangular decompositions: Householder QR,
// Cholesky, and the symmetric Jacobi eigen-solver.
package matrix

import (
	"fmt"
	"math"
	"sort"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// QR computes a Householder factorization A = Q·R for an r×c matrix with r ≥ c.
// Q is r×r orthogonal, R is r×c upper-triangular.
//
// Implementation:
//   - Stage 1: validate; copy A into the working buffer R; H := I.
//   - Stage 2: for k = 0..min(r-1,c)-1 build the reflector v that zeroes R[k+1:,k];
//     apply (I - τvvᵀ) to R from the left and accumulate it into H.
//   - Stage 3: H = Hₖ…H₁ satisfies H·A = R, therefore Q = Hᵀ.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (r < c).
// Complexity: Time O(r²c), Space O(r² + rc).
func QR(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if m.Rows() < m.Cols() {
		return nil, nil, matrixErrorf(opQR, fmt.Errorf("%dx%d is wide: %w", m.Rows(), m.Cols(), ErrShapeMismatch))
	}
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	rows, cols := src.r, src.c
	R := src.Copy()
	R.validateNaNInf = DefaultValidateNaNInf
	H := newIdentity(rows)

	v := make([]float64, rows)
	var (
		i, j, k    int
		norm, beta float64
		alpha, tau float64
		sum, aij   float64
	)
	steps := cols
	if rows-1 < steps {
		steps = rows - 1
	}
	for k = 0; k < steps; k++ {
		// Norm of R[k:rows][k].
		norm = NormZero
		for i = k; i < rows; i++ {
			aij = R.data[i*cols+k]
			norm += aij * aij
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue // zero column, nothing to reflect
		}
		alpha = -math.Copysign(norm, R.data[k*cols+k])

		for i = 0; i < rows; i++ {
			v[i] = 0
		}
		for i = k; i < rows; i++ {
			v[i] = R.data[i*cols+k]
		}
		v[k] -= alpha

		beta = NormZero
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// Reflect R.
		for j = k; j < cols; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * R.data[i*cols+j]
			}
			for i = k; i < rows; i++ {
				R.data[i*cols+j] -= tau * v[i] * sum
			}
		}
		// Accumulate into H.
		for j = 0; j < rows; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * H.data[i*rows+j]
			}
			for i = k; i < rows; i++ {
				H.data[i*rows+j] -= tau * v[i] * sum
			}
		}
		// Clean the annihilated entries.
		for i = k + 1; i < rows; i++ {
			R.data[i*cols+k] = 0
		}
	}

	Q, err := Transpose(H)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return Q, R, nil
}

// Cholesky returns lower-triangular L with A = L·Lᵀ for a symmetric
// positive-definite A. Symmetry is checked within the resolved epsilon.
//
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrAsymmetry, ErrNotPositiveDefinite
// (a diagonal radicand <= eps).
// Complexity: Time O(n³/3), Space O(n²).
func Cholesky(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := a.r
	L := newDense(n, n)
	var (
		i, j, k int
		sum     float64
	)
	for j = 0; j < n; j++ {
		sum = a.data[j*n+j]
		for k = 0; k < j; k++ {
			sum -= L.data[j*n+k] * L.data[j*n+k]
		}
		if sum <= o.eps {
			return nil, matrixErrorf(opCholesky, fmt.Errorf("column %d: %w", j, ErrNotPositiveDefinite))
		}
		L.data[j*n+j] = math.Sqrt(sum)
		for i = j + 1; i < n; i++ {
			sum = a.data[i*n+j]
			for k = 0; k < j; k++ {
				sum -= L.data[i*n+k] * L.data[j*n+k]
			}
			L.data[i*n+j] = sum / L.data[j*n+j]
		}
	}

	return L, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic-pivot Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate symmetry within tol; copy A; Q := I.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply the rotation that zeroes it, accumulating it into Q.
//   - Stage 3: stop when max|A[p,q]| < tol; sort eigenpairs ascending.
//
// Returns values (ascending) and Q whose column j is the eigenvector of values[j].
//
// Errors: ErrInvalidArgument (tol <= 0 or maxIter <= 0), ErrNilMatrix,
// ErrShapeMismatch, ErrAsymmetry, ErrNotConverged (after maxIter rotations).
// Complexity: Time O(maxIter·n²), Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) (*Vector, *Dense, error) {
	if !(tol > 0) || maxIter <= 0 {
		return nil, nil, matrixErrorf(opEigen, ErrInvalidArgument)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	A := src.Copy()
	Q := newIdentity(n)

	var (
		iter, i, j, p, q   int
		maxOff, off        float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
		converged          bool
	)
	for iter = 0; iter <= maxIter; iter++ {
		maxOff = NormZero
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(A.data[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}
		if iter == maxIter {
			break
		}

		app, aqq, apq = A.data[p*n+p], A.data[q*n+q], A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = A.data[i*n+p], A.data[i*n+q]
			A.data[i*n+p] = c*aip - s*aiq
			A.data[p*n+i] = A.data[i*n+p]
			A.data[i*n+q] = s*aip + c*aiq
			A.data[q*n+i] = A.data[i*n+q]
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip, qiq = Q.data[i*n+p], Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, ErrNotConverged)
	}

	// Sort eigenpairs ascending (stable for determinism on ties).
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return A.data[order[x]*n+order[x]] < A.data[order[y]*n+order[y]] })
	vals := newVec(n)
	vecs := newDense(n, n)
	for j = 0; j < n; j++ {
		vals.data[j] = A.data[order[j]*n+order[j]]
		for i = 0; i < n; i++ {
			vecs.data[i*n+j] = Q.data[i*n+order[j]]
		}
	}

	return vals, vecs, nil
}
