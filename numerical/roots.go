// SPDX-License-Identifier: MIT

package numerical

import (
	"fmt"
	"math"
)

const (
	opNewton           = "NewtonRaphson"
	opHalley           = "Halley"
	opInverseQuadratic = "InverseQuadratic"
)

// converged reports |step| <= tol·(1 + |x|).
func (o Options) converged(step, x float64) bool {
	return math.Abs(step) <= o.tol*(1+math.Abs(x))
}

func iterSetup(op string, f Func, maxIter int, starts ...float64) error {
	if f == nil {
		return numericalErrorf(op, ErrNilFunction)
	}
	if maxIter <= 0 {
		return numericalErrorf(op, fmt.Errorf("maxIter = %d: %w", maxIter, ErrInvalidArgument))
	}
	for _, s := range starts {
		if !finite(s) {
			return numericalErrorf(op, fmt.Errorf("start %v: %w", s, ErrInvalidArgument))
		}
	}

	return nil
}

// NewtonRaphson finds a root of f from x0 with xₙ₊₁ = xₙ − f(xₙ)/f′(xₙ),
// f′ approximated by Derivative. It stops on an exact zero or when the step
// is within the tolerance; otherwise it returns the last iterate with
// ErrNotConverged after maxIter steps.
// Errors: ErrNilFunction, ErrInvalidArgument, ErrDegenerate (f′ = 0),
// ErrNotFinite (divergent iterate), ErrNotConverged.
func NewtonRaphson(f Func, x0 float64, maxIter int, opts ...Option) (float64, error) {
	if err := iterSetup(opNewton, f, maxIter, x0); err != nil {
		return 0, err
	}
	o := gatherOptions(opts)
	x := x0
	for it := 0; it < maxIter; it++ {
		fx := f(x)
		if fx == 0 {
			return x, nil
		}
		d1, err := derive(opNewton, o, f, x, 1)
		if err != nil {
			return x, err
		}
		if d1 == 0 {
			return x, numericalErrorf(opNewton, fmt.Errorf("f'(%v) = 0: %w", x, ErrDegenerate))
		}
		step := fx / d1
		x -= step
		if !finite(x) {
			return x, numericalErrorf(opNewton, fmt.Errorf("iteration %d: %w", it, ErrNotFinite))
		}
		if o.converged(step, x) {
			return x, nil
		}
	}

	return x, numericalErrorf(opNewton, ErrNotConverged)
}

// Halley finds a root of f from x0 with the cubically convergent update
// xₙ₊₁ = xₙ − 2ff′ / (2f′² − ff″). Stopping rules and errors match
// NewtonRaphson; ErrDegenerate is returned when the denominator vanishes.
func Halley(f Func, x0 float64, maxIter int, opts ...Option) (float64, error) {
	if err := iterSetup(opHalley, f, maxIter, x0); err != nil {
		return 0, err
	}
	o := gatherOptions(opts)
	x := x0
	for it := 0; it < maxIter; it++ {
		fx := f(x)
		if fx == 0 {
			return x, nil
		}
		d1, err := derive(opHalley, o, f, x, 1)
		if err != nil {
			return x, err
		}
		d2, err := derive(opHalley, o, f, x, 2)
		if err != nil {
			return x, err
		}
		den := 2*d1*d1 - fx*d2
		if den == 0 {
			return x, numericalErrorf(opHalley, fmt.Errorf("x = %v: %w", x, ErrDegenerate))
		}
		step := 2 * fx * d1 / den
		x -= step
		if !finite(x) {
			return x, numericalErrorf(opHalley, fmt.Errorf("iteration %d: %w", it, ErrNotFinite))
		}
		if o.converged(step, x) {
			return x, nil
		}
	}

	return x, numericalErrorf(opHalley, ErrNotConverged)
}

// InverseQuadratic finds a root of f by inverse quadratic interpolation
// through the three most recent points, starting from x0, x1, x2. It needs
// no derivatives. ErrDegenerate is returned when two of the three function
// values coincide.
func InverseQuadratic(f Func, x0, x1, x2 float64, maxIter int, opts ...Option) (float64, error) {
	if err := iterSetup(opInverseQuadratic, f, maxIter, x0, x1, x2); err != nil {
		return 0, err
	}
	o := gatherOptions(opts)
	f0, f1, f2 := f(x0), f(x1), f(x2)
	for it := 0; it < maxIter; it++ {
		if f2 == 0 {
			return x2, nil
		}
		if f0 == f1 || f0 == f2 || f1 == f2 {
			return x2, numericalErrorf(opInverseQuadratic, fmt.Errorf("iteration %d: %w", it, ErrDegenerate))
		}
		x := x0*f1*f2/((f0-f1)*(f0-f2)) +
			x1*f0*f2/((f1-f0)*(f1-f2)) +
			x2*f0*f1/((f2-f0)*(f2-f1))
		if !finite(x) {
			return x2, numericalErrorf(opInverseQuadratic, fmt.Errorf("iteration %d: %w", it, ErrNotFinite))
		}
		step := x - x2
		x0, x1, x2 = x1, x2, x
		f0, f1, f2 = f1, f2, f(x)
		if o.converged(step, x) {
			return x, nil
		}
	}

	return x2, numericalErrorf(opInverseQuadratic, ErrNotConverged)
}
