// SPDX-License-Identifier: MIT
// Package matrix: minors, cofactors, the adjugate, integer powers and
// eigenvalue-based definiteness checks.

package matrix

import (
	"fmt"
	"math"
)

const (
	opMinor          = "Minor"
	opCofactor       = "Cofactor"
	opCofactorMatrix = "CofactorMatrix"
	opAdjugate       = "Adjugate"
	opPower          = "Power"
	opDefiniteness   = "Definiteness"

	// eigenTol and eigenSweeps drive the Jacobi solver behind the
	// definiteness checks; the rotation budget is eigenSweeps·n².
	eigenTol    = 1e-12
	eigenSweeps = 64
)

// Minor returns m with row i and column j removed.
// Errors: ErrNilMatrix, ErrShapeMismatch (non-square), ErrOutOfRange.
func Minor(m Matrix, i, j int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d) of %dx%d: %w", i, j, n, n, ErrOutOfRange))
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minorOf(src, i, j), nil
}

// minorOf assumes a square src and in-range (i, j).
func minorOf(src *Dense, i, j int) *Dense {
	n := src.r
	out := newDense(n-1, n-1)
	var r, c, k int
	for r = 0; r < n; r++ {
		if r == i {
			continue
		}
		for c = 0; c < n; c++ {
			if c == j {
				continue
			}
			out.data[k] = src.data[r*n+c]
			k++
		}
	}

	return out
}

// cofactorOf is (−1)^(i+j)·det(minor(i, j)).
func cofactorOf(src *Dense, i, j int, opts []Option) (float64, error) {
	d, err := Det(minorOf(src, i, j), opts...)
	if err != nil {
		return 0, err
	}
	if (i+j)%2 == 1 {
		d = -d
	}

	return d, nil
}

// Cofactor returns the (i, j) cofactor (−1)^(i+j)·det(Minor(m, i, j)).
// opts are forwarded to Det. The cofactor of a 1×1 matrix is 1.
func Cofactor(m Matrix, i, j int, opts ...Option) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	n := m.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, matrixErrorf(opCofactor, fmt.Errorf("(%d,%d) of %dx%d: %w", i, j, n, n, ErrOutOfRange))
	}
	src, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	c, err := cofactorOf(src, i, j, opts)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return c, nil
}

// CofactorMatrix returns C with C[i,j] = Cofactor(m, i, j).
// Complexity: Time O(n⁵), Space O(n²).
func CofactorMatrix(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactorMatrix, err)
	}
	n := src.r
	out := newDense(n, n)
	var (
		i, j int
		c    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if c, err = cofactorOf(src, i, j, opts); err != nil {
				return nil, matrixErrorf(opCofactorMatrix, err)
			}
			out.data[i*n+j] = c
		}
	}

	return out, nil
}

// Adjugate returns adj(m) = Cᵀ, so that m·adj(m) = det(m)·I.
// Errors: ErrNilMatrix, ErrShapeMismatch (non-square).
func Adjugate(m Matrix, opts ...Option) (*Dense, error) {
	c, err := CofactorMatrix(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Power returns mᵏ by repeated squaring. k = 0 yields the identity and k < 0
// inverts m first (opts are forwarded to Inverse).
// Errors: ErrNilMatrix, ErrShapeMismatch (non-square), ErrSingular (k < 0).
// Complexity: Time O(n³·log|k|), Space O(n²).
func Power(m Matrix, k int, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	base, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	base = base.Copy()
	if k < 0 {
		if base, err = Inverse(base, opts...); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
		k = -k
	}
	acc := newIdentity(base.r)
	for k > 0 {
		if k&1 == 1 {
			if acc, err = Mul(acc, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
	}

	return acc, nil
}

// spectrum returns the eigenvalues of the symmetric matrix m, ascending.
func spectrum(m Matrix) (*Vector, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDefiniteness, err)
	}
	n := m.Rows()
	vals, _, err := Eigen(m, eigenTol, eigenSweeps*n*n+1)
	if err != nil {
		return nil, matrixErrorf(opDefiniteness, err)
	}

	return vals, nil
}

// IsPositiveDefinite reports whether every eigenvalue of the symmetric matrix
// m exceeds eps (WithEpsilon, DefaultEpsilon).
// Errors: ErrNilMatrix, ErrShapeMismatch, ErrAsymmetry, ErrNotConverged.
func IsPositiveDefinite(m Matrix, opts ...Option) (bool, error) {
	vals, err := spectrum(m)
	if err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps
	for _, l := range vals.data {
		if l <= eps {
			return false, nil
		}
	}

	return true, nil
}

// IsNegativeDefinite reports whether every eigenvalue of m is below −eps.
func IsNegativeDefinite(m Matrix, opts ...Option) (bool, error) {
	vals, err := spectrum(m)
	if err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps
	for _, l := range vals.data {
		if l >= -eps {
			return false, nil
		}
	}

	return true, nil
}

// HasZeroEigenvalue reports whether some eigenvalue of m has |λ| <= eps.
func HasZeroEigenvalue(m Matrix, opts ...Option) (bool, error) {
	vals, err := spectrum(m)
	if err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps
	for _, l := range vals.data {
		if math.Abs(l) <= eps {
			return true, nil
		}
	}

	return false, nil
}
