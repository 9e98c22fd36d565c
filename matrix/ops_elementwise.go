// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise sanitizers and comparison: Clip, ReplaceInfNaN, AllClose, Map.
//   - Each returns a fresh *Dense; inputs are read-only.
//
// Determinism & Performance:
//   - Flat loop on the *Dense fast-path; At-based materialization otherwise.

package matrix

import "math"

const (
	opClip          = "Clip"
	opReplaceInfNaN = "ReplaceInfNaN"
	opAllClose      = "AllClose"
	opMap           = "Map"
)

// Clip returns a copy of m with elements clamped into [lo, hi].
//
//	out[i,j] = min(max(A[i,j], lo), hi)
//
// Policy: if lo > hi the bounds are swapped; NaN/Inf bounds are rejected with
// ErrNaNInf. NaN entries stay NaN.
// Complexity: Time O(r*c), Space O(r*c).
func Clip(m Matrix, lo, hi float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	if isNonFinite(lo) || isNonFinite(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	out := newDense(d.r, d.c)
	for idx, v := range d.data {
		if v < lo {
			v = lo
		} else if v > hi {
			v = hi
		}
		out.data[idx] = v
	}

	return out, nil
}

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} is replaced by val.
// Policy: val must be finite; otherwise ErrNaNInf.
func ReplaceInfNaN(m Matrix, val float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReplaceInfNaN, err)
	}
	if isNonFinite(val) {
		return nil, matrixErrorf(opReplaceInfNaN, ErrNaNInf)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opReplaceInfNaN, err)
	}
	out := newDense(d.r, d.c)
	for idx, v := range d.data {
		if isNonFinite(v) {
			v = val
		}
		out.data[idx] = v
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrShapeMismatch).
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	var av, bv float64
	for idx := range da.data {
		av, bv = da.data[idx], db.data[idx]
		if av == bv {
			continue // covers equal infinities
		}
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil
		}
	}

	return true, nil
}

// Map returns f applied to every element of m.
func Map(m Matrix, f func(float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	out := newDense(d.r, d.c)
	for idx, v := range d.data {
		out.data[idx] = f(v)
	}

	return out, nil
}
