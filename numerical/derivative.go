// SPDX-License-Identifier: MIT

package numerical

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvml/matrix"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

const (
	opDerivative       = "Derivative"
	opSecondDerivative = "SecondDerivative"
	opThirdDerivative  = "ThirdDerivative"
	opGradient         = "Gradient"
	opJacobian         = "Jacobian"
	opHessian          = "Hessian"
	opLaplacian        = "Laplacian"
	opThirdOrder       = "ThirdOrderTensor"

	// thirdStep is the default step of the third-derivative stencils and of
	// the outer difference in ThirdOrderTensor.
	thirdStep = 1e-3
)

// Third-derivative stencils; gonum ships formulas up to order two only.
var (
	central3rd = fd.Formula{
		Stencil:    []fd.Point{{Loc: -2, Coeff: -0.5}, {Loc: -1, Coeff: 1}, {Loc: 1, Coeff: -1}, {Loc: 2, Coeff: 0.5}},
		Derivative: 3,
		Step:       thirdStep,
	}
	forward3rd = fd.Formula{
		Stencil:    []fd.Point{{Loc: 0, Coeff: -1}, {Loc: 1, Coeff: 3}, {Loc: 2, Coeff: -3}, {Loc: 3, Coeff: 1}},
		Derivative: 3,
		Step:       thirdStep,
	}
	backward3rd = fd.Formula{
		Stencil:    []fd.Point{{Loc: -3, Coeff: -1}, {Loc: -2, Coeff: 3}, {Loc: -1, Coeff: -3}, {Loc: 0, Coeff: 1}},
		Derivative: 3,
		Step:       thirdStep,
	}
)

// formula returns the stencil of the given derivative order for o.scheme.
func (o Options) formula(order int) fd.Formula {
	table := [...][3]fd.Formula{
		1: {fd.Central, fd.Forward, fd.Backward},
		2: {fd.Central2nd, fd.Forward2nd, fd.Backward2nd},
		3: {central3rd, forward3rd, backward3rd},
	}

	return table[order][o.scheme-Central]
}

func (o Options) settings(order int) *fd.Settings {
	return &fd.Settings{Formula: o.formula(order), Step: o.step, Concurrent: o.concurrent}
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// scalar runs one univariate stencil and checks the result.
func scalar(op string, f Func, x float64, order int, opts []Option) (float64, error) {
	if f == nil {
		return 0, numericalErrorf(op, ErrNilFunction)
	}
	if !finite(x) {
		return 0, numericalErrorf(op, fmt.Errorf("x = %v: %w", x, ErrInvalidArgument))
	}
	o := gatherOptions(opts)

	return derive(op, o, f, x, order)
}

func derive(op string, o Options, f Func, x float64, order int) (float64, error) {
	d := fd.Derivative(f, x, o.settings(order))
	if !finite(d) {
		return 0, numericalErrorf(op, fmt.Errorf("f^(%d)(%v) = %v: %w", order, x, d, ErrNotFinite))
	}

	return d, nil
}

// Derivative approximates f′(x).
// Errors: ErrNilFunction, ErrInvalidArgument (non-finite x), ErrNotFinite.
func Derivative(f Func, x float64, opts ...Option) (float64, error) {
	return scalar(opDerivative, f, x, 1, opts)
}

// SecondDerivative approximates f″(x).
func SecondDerivative(f Func, x float64, opts ...Option) (float64, error) {
	return scalar(opSecondDerivative, f, x, 2, opts)
}

// ThirdDerivative approximates f‴(x) with a four-point stencil
// (default step 1e-3).
func ThirdDerivative(f Func, x float64, opts ...Option) (float64, error) {
	return scalar(opThirdDerivative, f, x, 3, opts)
}

// point validates a multivariate evaluation point and returns a private copy.
func point(op string, x *matrix.Vector) ([]float64, error) {
	if err := matrix.ValidateVectorNotNil(x); err != nil {
		return nil, numericalErrorf(op, err)
	}
	if x.Len() == 0 {
		return nil, numericalErrorf(op, ErrEmptyInput)
	}
	xs := x.Raw()
	for i, v := range xs {
		if !finite(v) {
			return nil, numericalErrorf(op, fmt.Errorf("x[%d] = %v: %w", i, v, ErrInvalidArgument))
		}
	}

	return xs, nil
}

func allFinite(op string, vals []float64) error {
	for i, v := range vals {
		if !finite(v) {
			return numericalErrorf(op, fmt.Errorf("entry %d = %v: %w", i, v, ErrNotFinite))
		}
	}

	return nil
}

// Gradient approximates ∇f(x).
// Errors: ErrNilFunction, matrix.ErrNilMatrix, ErrEmptyInput,
// ErrInvalidArgument (non-finite x), ErrNotFinite.
func Gradient(f MultiFunc, x *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	if f == nil {
		return nil, numericalErrorf(opGradient, ErrNilFunction)
	}
	xs, err := point(opGradient, x)
	if err != nil {
		return nil, err
	}
	g := fd.Gradient(nil, f, xs, gatherOptions(opts).settings(1))
	if err = allFinite(opGradient, g); err != nil {
		return nil, err
	}

	return matrix.NewVectorFrom(g), nil
}

// Jacobian approximates the m×n Jacobian J[i,j] = ∂fᵢ/∂xⱼ of f: ℝⁿ → ℝᵐ.
// Errors: as Gradient, plus ErrInvalidArgument for m < 1.
func Jacobian(f VectorFunc, m int, x *matrix.Vector, opts ...Option) (*matrix.Dense, error) {
	if f == nil {
		return nil, numericalErrorf(opJacobian, ErrNilFunction)
	}
	if m < 1 {
		return nil, numericalErrorf(opJacobian, fmt.Errorf("m = %d: %w", m, ErrInvalidArgument))
	}
	xs, err := point(opJacobian, x)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	dst := mat.NewDense(m, len(xs), nil)
	fd.Jacobian(dst, f, xs, &fd.JacobianSettings{Formula: o.formula(1), Step: o.step, Concurrent: o.concurrent})
	if err = allFinite(opJacobian, dst.RawMatrix().Data); err != nil {
		return nil, err
	}

	return matrix.FromGonum(dst), nil
}

// hessian assumes a validated point.
func hessian(op string, o Options, f MultiFunc, xs []float64) (*matrix.Dense, error) {
	var h mat.SymDense
	fd.Hessian(&h, f, xs, o.settings(1))
	out := matrix.FromGonum(&h)
	if err := allFinite(op, out.Data()); err != nil {
		return nil, err
	}

	return out, nil
}

// Hessian approximates the symmetric n×n matrix H[i,j] = ∂²f/∂xᵢ∂xⱼ by
// nesting the first-order stencil (default step √ of the formula's step).
// Errors: as Gradient.
func Hessian(f MultiFunc, x *matrix.Vector, opts ...Option) (*matrix.Dense, error) {
	if f == nil {
		return nil, numericalErrorf(opHessian, ErrNilFunction)
	}
	xs, err := point(opHessian, x)
	if err != nil {
		return nil, err
	}

	return hessian(opHessian, gatherOptions(opts), f, xs)
}

// Laplacian approximates Δf(x) = Σ ∂²f/∂xᵢ².
// Errors: as Gradient.
func Laplacian(f MultiFunc, x *matrix.Vector, opts ...Option) (float64, error) {
	if f == nil {
		return 0, numericalErrorf(opLaplacian, ErrNilFunction)
	}
	xs, err := point(opLaplacian, x)
	if err != nil {
		return 0, err
	}
	l := fd.Laplacian(f, xs, gatherOptions(opts).settings(2))
	if !finite(l) {
		return 0, numericalErrorf(opLaplacian, fmt.Errorf("%v: %w", l, ErrNotFinite))
	}

	return l, nil
}

// ThirdOrderTensor approximates T[k][i][j] = ∂³f/∂xₖ∂xᵢ∂xⱼ as a central
// difference of Hessians along each axis k (step 1e-3 unless WithStep). The
// result is an n×n×n Tensor3 whose channel k is ∂H/∂xₖ.
// Errors: as Gradient.
func ThirdOrderTensor(f MultiFunc, x *matrix.Vector, opts ...Option) (*matrix.Tensor3, error) {
	if f == nil {
		return nil, numericalErrorf(opThirdOrder, ErrNilFunction)
	}
	xs, err := point(opThirdOrder, x)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	h := o.step
	if h == 0 {
		h = thirdStep
	}
	inner := o
	inner.step = 0

	n := len(xs)
	t, err := matrix.NewTensor3(n, n, n)
	if err != nil {
		return nil, numericalErrorf(opThirdOrder, err)
	}
	var up, down, ch *matrix.Dense
	for k := 0; k < n; k++ {
		xk := xs[k]
		xs[k] = xk + h
		up, err = hessian(opThirdOrder, inner, f, xs)
		if err == nil {
			xs[k] = xk - h
			down, err = hessian(opThirdOrder, inner, f, xs)
		}
		xs[k] = xk
		if err != nil {
			return nil, err
		}
		if ch, err = matrix.Sub(up, down); err != nil {
			return nil, numericalErrorf(opThirdOrder, err)
		}
		ch.ScaleInPlace(1 / (2 * h))
		if err = t.SetChannel(k, ch); err != nil {
			return nil, numericalErrorf(opThirdOrder, err)
		}
	}

	return t, nil
}
