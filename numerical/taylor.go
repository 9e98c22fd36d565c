// SPDX-License-Identifier: MIT

package numerical

import (
	"fmt"

	"github.com/katalvlaran/lvml/matrix"
	"gonum.org/v1/gonum/floats"
)

const (
	opTaylor   = "Taylor"
	opTaylorAt = "TaylorAt"

	maxTaylorOrder = 3
)

func checkOrder(op string, order int) error {
	if order < 0 || order > maxTaylorOrder {
		return numericalErrorf(op, fmt.Errorf("order %d not in [0,%d]: %w", order, maxTaylorOrder, ErrInvalidArgument))
	}

	return nil
}

// Taylor evaluates the Taylor polynomial of f about c at x:
//
//	Σ_{k=0..order} f⁽ᵏ⁾(c)·(x − c)ᵏ / k!
//
// with numerically approximated derivatives. order must be in [0, 3].
// Errors: ErrNilFunction, ErrInvalidArgument, ErrNotFinite.
func Taylor(f Func, c, x float64, order int, opts ...Option) (float64, error) {
	if f == nil {
		return 0, numericalErrorf(opTaylor, ErrNilFunction)
	}
	if err := checkOrder(opTaylor, order); err != nil {
		return 0, err
	}
	if !finite(c) || !finite(x) {
		return 0, numericalErrorf(opTaylor, fmt.Errorf("c = %v, x = %v: %w", c, x, ErrInvalidArgument))
	}
	o := gatherOptions(opts)
	dx := x - c
	sum := f(c)
	term := 1.0
	for k := 1; k <= order; k++ {
		d, err := derive(opTaylor, o, f, c, k)
		if err != nil {
			return 0, err
		}
		term *= dx / float64(k)
		sum += d * term
	}

	return sum, nil
}

// TaylorAt evaluates the multivariate Taylor polynomial of f about c at x
// with d = x − c:
//
//	f(c) + ∇f(c)·d + ½·dᵀH(c)d + (1/6)·Σ T[k][i][j]·dₖdᵢdⱼ
//
// truncated after the given order (0 to 3).
// Errors: as Gradient, ErrShapeMismatch when len(x) ≠ len(c).
func TaylorAt(f MultiFunc, c, x *matrix.Vector, order int, opts ...Option) (float64, error) {
	if f == nil {
		return 0, numericalErrorf(opTaylorAt, ErrNilFunction)
	}
	if err := checkOrder(opTaylorAt, order); err != nil {
		return 0, err
	}
	if err := matrix.ValidateSameLen(c, x); err != nil {
		return 0, numericalErrorf(opTaylorAt, err)
	}
	cs, err := point(opTaylorAt, c)
	if err != nil {
		return 0, err
	}
	xs, err := point(opTaylorAt, x)
	if err != nil {
		return 0, err
	}
	d := make([]float64, len(xs))
	floats.SubTo(d, xs, cs)

	sum := f(cs)
	if order >= 1 {
		g, err := Gradient(f, c, opts...)
		if err != nil {
			return 0, err
		}
		sum += floats.Dot(g.Data(), d)
	}
	n := len(d)
	if order >= 2 {
		h, err := Hessian(f, c, opts...)
		if err != nil {
			return 0, err
		}
		hd := h.Data()
		var q float64
		for i := 0; i < n; i++ {
			q += d[i] * floats.Dot(hd[i*n:(i+1)*n], d)
		}
		sum += q / 2
	}
	if order == 3 {
		t, err := ThirdOrderTensor(f, c, opts...)
		if err != nil {
			return 0, err
		}
		td := t.Data()
		var cubic float64
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				cubic += d[k] * d[i] * floats.Dot(td[(k*n+i)*n:(k*n+i+1)*n], d)
			}
		}
		sum += cubic / 6
	}

	return sum, nil
}
