// SPDX-License-Identifier: MIT

// Package matrix - Vector: a fixed-length, contiguous sequence of float64.
//
// Purpose:
//   - Hold model parameters, gradients, targets and predictions.
//   - Offer value-returning arithmetic (fresh result) and explicitly named
//     in-place arithmetic (…InPlace) for hot loops such as optimizer updates.
//   - Delegate the flat kernels to gonum/floats; this file only adds shape
//     validation, the numeric policy and error wrapping around them.
//
// Length is fixed after construction; Resize is the only way to change it and
// always reallocates.
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opVecAdd    = "Vector.Add"
	opVecSub    = "Vector.Sub"
	opVecMul    = "Vector.MulElem"
	opVecDiv    = "Vector.DivElem"
	opVecDot    = "Vector.Dot"
	opVecAxpy   = "Vector.AddScaledInPlace"
	opVecReduce = "Vector.Reduce"
	opVecFrom   = "VectorFrom"
)

// Vector is a dense float64 vector. A Vector may alias storage owned by a
// Dense or Tensor3 (see RowView); such a view shares writes with its parent.
type Vector struct {
	data           []float64 // contiguous elements
	validateNaNInf bool      // numeric guard for Set
}

// NewVector allocates a zero vector of length n.
// Errors: ErrInvalidDimensions when n < 0. n == 0 is legal.
func NewVector(n int, opts ...Option) (*Vector, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewVector(%d): %w", n, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Vector{data: make([]float64, n), validateNaNInf: o.validateNaNInf}, nil
}

// NewVectorFrom copies vals into a new Vector without inspecting them; the
// NaN/Inf policy applies to later Set calls only. Use VectorFrom to reject
// non-finite input up front.
func NewVectorFrom(vals []float64, opts ...Option) *Vector {
	o := gatherOptions(opts...)
	out := make([]float64, len(vals))
	copy(out, vals)

	return &Vector{data: out, validateNaNInf: o.validateNaNInf}
}

// VectorFrom is NewVectorFrom with the NaN/Inf policy applied to vals.
// Errors: ErrNaNInf when the policy is on and vals carries a non-finite value.
func VectorFrom(vals []float64, opts ...Option) (*Vector, error) {
	v := NewVectorFrom(vals, opts...)
	if v.validateNaNInf {
		for i, x := range v.data {
			if isNonFinite(x) {
				return nil, fmt.Errorf("%s: index %d: %w", opVecFrom, i, ErrNaNInf)
			}
		}
	}

	return v, nil
}

// newVec allocates without option resolution (internal, n >= 0).
func newVec(n int) *Vector {
	return &Vector{data: make([]float64, n), validateNaNInf: DefaultValidateNaNInf}
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// Raw returns a copy of the elements.
func (v *Vector) Raw() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Data exposes the backing slice without copying.
// Writes through it bypass the NaN/Inf policy.
func (v *Vector) Data() []float64 { return v.data }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns element i.
// Errors: ErrOutOfRange; ErrNaNInf when the policy is on and x is not finite.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	if v.validateNaNInf && isNonFinite(x) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// Clone returns an independent deep copy (never a view).
func (v *Vector) Clone() *Vector {
	return &Vector{data: v.Raw(), validateNaNInf: v.validateNaNInf}
}

// Resize reallocates v to length n keeping the common prefix; new tail
// elements are zero. A resized view no longer aliases its parent.
func (v *Vector) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("Vector.Resize(%d): %w", n, ErrInvalidDimensions)
	}
	next := make([]float64, n)
	copy(next, v.data)
	v.data = next

	return nil
}

// Fill sets every element to x.
func (v *Vector) Fill(x float64) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Slice returns a copy of elements [from, to).
func (v *Vector) Slice(from, to int) (*Vector, error) {
	if from < 0 || to > len(v.data) || from > to {
		return nil, fmt.Errorf("Vector.Slice(%d,%d): %w", from, to, ErrOutOfRange)
	}
	out := make([]float64, to-from)
	copy(out, v.data[from:to])

	return &Vector{data: out, validateNaNInf: v.validateNaNInf}, nil
}

// ---------- value-returning arithmetic ----------

// binary validates w against v and returns a fresh result buffer.
func (v *Vector) binary(op string, w *Vector) (*Vector, error) {
	if err := ValidateSameLen(v, w); err != nil {
		return nil, matrixErrorf(op, err)
	}

	return &Vector{data: make([]float64, len(v.data)), validateNaNInf: v.validateNaNInf}, nil
}

// Add returns v + w.
func (v *Vector) Add(w *Vector) (*Vector, error) {
	out, err := v.binary(opVecAdd, w)
	if err != nil {
		return nil, err
	}
	floats.AddTo(out.data, v.data, w.data)

	return out, nil
}

// Sub returns v - w.
func (v *Vector) Sub(w *Vector) (*Vector, error) {
	out, err := v.binary(opVecSub, w)
	if err != nil {
		return nil, err
	}
	floats.SubTo(out.data, v.data, w.data)

	return out, nil
}

// MulElem returns the element-wise product v ⊙ w.
func (v *Vector) MulElem(w *Vector) (*Vector, error) {
	out, err := v.binary(opVecMul, w)
	if err != nil {
		return nil, err
	}
	floats.MulTo(out.data, v.data, w.data)

	return out, nil
}

// DivElem returns the element-wise quotient v / w. Division by zero follows
// IEEE-754 (±Inf or NaN) and is not an error.
func (v *Vector) DivElem(w *Vector) (*Vector, error) {
	out, err := v.binary(opVecDiv, w)
	if err != nil {
		return nil, err
	}
	floats.DivTo(out.data, v.data, w.data)

	return out, nil
}

// Scale returns α·v.
func (v *Vector) Scale(alpha float64) *Vector {
	out := &Vector{data: make([]float64, len(v.data)), validateNaNInf: v.validateNaNInf}
	floats.ScaleTo(out.data, alpha, v.data)

	return out
}

// AddScalar returns v + s (broadcast).
func (v *Vector) AddScalar(s float64) *Vector {
	out := v.Clone()
	floats.AddConst(s, out.data)

	return out
}

// Dot returns Σ v[i]·w[i].
func (v *Vector) Dot(w *Vector) (float64, error) {
	if err := ValidateSameLen(v, w); err != nil {
		return 0, matrixErrorf(opVecDot, err)
	}

	return floats.Dot(v.data, w.data), nil
}

// Sum returns Σ v[i]; 0 for an empty vector.
func (v *Vector) Sum() float64 { return floats.Sum(v.data) }

// Max returns the largest element. Errors: ErrEmpty.
func (v *Vector) Max() (float64, error) {
	if len(v.data) == 0 {
		return 0, matrixErrorf(opVecReduce, ErrEmpty)
	}

	return floats.Max(v.data), nil
}

// Min returns the smallest element. Errors: ErrEmpty.
func (v *Vector) Min() (float64, error) {
	if len(v.data) == 0 {
		return 0, matrixErrorf(opVecReduce, ErrEmpty)
	}

	return floats.Min(v.data), nil
}

// ArgMax returns the index of the first maximal element. Errors: ErrEmpty.
func (v *Vector) ArgMax() (int, error) {
	if len(v.data) == 0 {
		return -1, matrixErrorf(opVecReduce, ErrEmpty)
	}

	return floats.MaxIdx(v.data), nil
}

// Abs returns |v| element-wise.
func (v *Vector) Abs() *Vector {
	return v.Map(math.Abs)
}

// Map returns f applied to every element.
func (v *Vector) Map(f func(float64) float64) *Vector {
	out := &Vector{data: make([]float64, len(v.data)), validateNaNInf: v.validateNaNInf}
	for i, x := range v.data {
		out.data[i] = f(x)
	}

	return out
}

// ---------- in-place arithmetic ----------

// AddInPlace sets v = v + w.
func (v *Vector) AddInPlace(w *Vector) error {
	if err := ValidateSameLen(v, w); err != nil {
		return matrixErrorf(opVecAdd, err)
	}
	floats.Add(v.data, w.data)

	return nil
}

// SubInPlace sets v = v - w.
func (v *Vector) SubInPlace(w *Vector) error {
	if err := ValidateSameLen(v, w); err != nil {
		return matrixErrorf(opVecSub, err)
	}
	floats.Sub(v.data, w.data)

	return nil
}

// MulElemInPlace sets v = v ⊙ w.
func (v *Vector) MulElemInPlace(w *Vector) error {
	if err := ValidateSameLen(v, w); err != nil {
		return matrixErrorf(opVecMul, err)
	}
	floats.Mul(v.data, w.data)

	return nil
}

// DivElemInPlace sets v = v / w element-wise.
func (v *Vector) DivElemInPlace(w *Vector) error {
	if err := ValidateSameLen(v, w); err != nil {
		return matrixErrorf(opVecDiv, err)
	}
	floats.Div(v.data, w.data)

	return nil
}

// ScaleInPlace sets v = α·v.
func (v *Vector) ScaleInPlace(alpha float64) { floats.Scale(alpha, v.data) }

// AddScalarInPlace sets v = v + s.
func (v *Vector) AddScalarInPlace(s float64) { floats.AddConst(s, v.data) }

// AddScaledInPlace sets v = v + α·w (axpy).
func (v *Vector) AddScaledInPlace(alpha float64, w *Vector) error {
	if err := ValidateSameLen(v, w); err != nil {
		return matrixErrorf(opVecAxpy, err)
	}
	floats.AddScaled(v.data, alpha, w.data)

	return nil
}

// MapInPlace replaces every element x with f(x).
func (v *Vector) MapInPlace(f func(float64) float64) {
	for i, x := range v.data {
		v.data[i] = f(x)
	}
}

// CopyFrom overwrites v with the contents of w (same length required).
func (v *Vector) CopyFrom(w *Vector) error {
	if err := ValidateSameLen(v, w); err != nil {
		return matrixErrorf("Vector.CopyFrom", err)
	}
	copy(v.data, w.data)

	return nil
}

// IsFinite reports whether every element is finite.
func (v *Vector) IsFinite() bool {
	for _, x := range v.data {
		if isNonFinite(x) {
			return false
		}
	}

	return true
}

// Equal reports whether w has the same length and |v[i]-w[i]| <= tol everywhere.
// tol == 0 is exact equality; NaN never compares equal.
func (v *Vector) Equal(w *Vector, tol float64) bool {
	if v == nil || w == nil {
		return v == w
	}
	if len(v.data) != len(w.data) {
		return false
	}
	tol = math.Abs(tol)

	return floats.EqualFunc(v.data, w.data, func(a, b float64) bool {
		return a == b || math.Abs(a-b) <= tol
	})
}

// String implements fmt.Stringer.
func (v *Vector) String() string { return fmt.Sprint(v.data) }
