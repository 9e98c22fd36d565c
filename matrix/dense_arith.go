// SPDX-License-Identifier: MIT

// Package matrix - Dense method arithmetic.
//
// Value-returning methods allocate a fresh result and never touch the
// receiver. …InPlace methods validate every operand before the first write,
// so a failed call leaves the receiver unchanged.
package matrix

import "gonum.org/v1/gonum/floats"

const (
	opDenseAdd  = "Dense.Add"
	opDenseSub  = "Dense.Sub"
	opDenseMul  = "Dense.MulElem"
	opDenseDiv  = "Dense.DivElem"
	opDenseAxpy = "Dense.AddScaledInPlace"
)

// sameShapeDense validates b against m (both concrete).
func (m *Dense) sameShapeDense(op string, b *Dense) error {
	if b == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if m.r != b.r || m.c != b.c {
		return matrixErrorf(op, ErrShapeMismatch)
	}

	return nil
}

// emptyLike allocates a zero matrix with m's shape and policy.
func (m *Dense) emptyLike() *Dense {
	return &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
}

// Add returns m + b.
func (m *Dense) Add(b *Dense) (*Dense, error) {
	if err := m.sameShapeDense(opDenseAdd, b); err != nil {
		return nil, err
	}
	out := m.emptyLike()
	floats.AddTo(out.data, m.data, b.data)

	return out, nil
}

// Sub returns m - b.
func (m *Dense) Sub(b *Dense) (*Dense, error) {
	if err := m.sameShapeDense(opDenseSub, b); err != nil {
		return nil, err
	}
	out := m.emptyLike()
	floats.SubTo(out.data, m.data, b.data)

	return out, nil
}

// MulElem returns the Hadamard product m ⊙ b.
func (m *Dense) MulElem(b *Dense) (*Dense, error) {
	if err := m.sameShapeDense(opDenseMul, b); err != nil {
		return nil, err
	}
	out := m.emptyLike()
	floats.MulTo(out.data, m.data, b.data)

	return out, nil
}

// DivElem returns m / b element-wise; zero divisors give IEEE results.
func (m *Dense) DivElem(b *Dense) (*Dense, error) {
	if err := m.sameShapeDense(opDenseDiv, b); err != nil {
		return nil, err
	}
	out := m.emptyLike()
	floats.DivTo(out.data, m.data, b.data)

	return out, nil
}

// Scale returns α·m.
func (m *Dense) Scale(alpha float64) *Dense {
	out := m.emptyLike()
	floats.ScaleTo(out.data, alpha, m.data)

	return out
}

// AddInPlace sets m = m + b.
func (m *Dense) AddInPlace(b *Dense) error {
	if err := m.sameShapeDense(opDenseAdd, b); err != nil {
		return err
	}
	floats.Add(m.data, b.data)

	return nil
}

// SubInPlace sets m = m - b.
func (m *Dense) SubInPlace(b *Dense) error {
	if err := m.sameShapeDense(opDenseSub, b); err != nil {
		return err
	}
	floats.Sub(m.data, b.data)

	return nil
}

// MulElemInPlace sets m = m ⊙ b.
func (m *Dense) MulElemInPlace(b *Dense) error {
	if err := m.sameShapeDense(opDenseMul, b); err != nil {
		return err
	}
	floats.Mul(m.data, b.data)

	return nil
}

// DivElemInPlace sets m = m / b element-wise.
func (m *Dense) DivElemInPlace(b *Dense) error {
	if err := m.sameShapeDense(opDenseDiv, b); err != nil {
		return err
	}
	floats.Div(m.data, b.data)

	return nil
}

// ScaleInPlace sets m = α·m.
func (m *Dense) ScaleInPlace(alpha float64) { floats.Scale(alpha, m.data) }

// AddScaledInPlace sets m = m + α·b.
func (m *Dense) AddScaledInPlace(alpha float64, b *Dense) error {
	if err := m.sameShapeDense(opDenseAxpy, b); err != nil {
		return err
	}
	floats.AddScaled(m.data, alpha, b.data)

	return nil
}
