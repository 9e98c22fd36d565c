// SPDX-License-Identifier: MIT
// Package optim_test: objectives shared by the optimizer tests.

package optim_test

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvml/matrix"
)

// quadratic is f(w) = ½Σ aᵢ(wᵢ − cᵢ)², minimized at c.
type quadratic struct{ a, c []float64 }

func (q quadratic) Dim() int { return len(q.a) }

func (q quadratic) Evaluate(params, grad *matrix.Vector) (float64, error) {
	w, g := params.Data(), grad.Data()
	var loss float64
	for i := range w {
		d := w[i] - q.c[i]
		loss += 0.5 * q.a[i] * d * d
		g[i] = q.a[i] * d
	}

	return loss, nil
}

// linReg is ½·mean((w·x + b − y)²) over one feature; params are [w, b].
// It implements Batched and Masked (the bias is not regularized).
type linReg struct{ x, y []float64 }

func newLinReg() linReg {
	// y = 2x + 1
	return linReg{x: []float64{1, 2, 3, 4, 5}, y: []float64{3, 5, 7, 9, 11}}
}

func (l linReg) Dim() int                    { return 2 }
func (l linReg) Len() int                    { return len(l.x) }
func (l linReg) RegularizationMask() []bool { return []bool{true, false} }

func (l linReg) Evaluate(params, grad *matrix.Vector) (float64, error) {
	return l.EvaluateBatch(params, grad, nil)
}

func (l linReg) EvaluateBatch(params, grad *matrix.Vector, idx []int) (float64, error) {
	if idx == nil {
		idx = make([]int, len(l.x))
		for i := range idx {
			idx[i] = i
		}
	}
	p, g := params.Data(), grad.Data()
	n := float64(len(idx))
	var loss, gw, gb float64
	for _, i := range idx {
		r := p[0]*l.x[i] + p[1] - l.y[i]
		loss += r * r
		gw += r * l.x[i]
		gb += r
	}
	g[0], g[1] = gw/n, gb/n

	return loss / (2 * n), nil
}

// flaky wraps an objective and poisons its gradient from call number `at` on.
type flaky struct {
	quadratic
	calls *int
	at    int
}

func (f flaky) Evaluate(params, grad *matrix.Vector) (float64, error) {
	*f.calls++
	loss, err := f.quadratic.Evaluate(params, grad)
	if *f.calls >= f.at {
		grad.Data()[0] = math.NaN()
	}

	return loss, err
}

var errBoom = errors.New("boom")

// broken always fails.
type broken struct{}

func (broken) Dim() int { return 1 }
func (broken) Evaluate(_, _ *matrix.Vector) (float64, error) {
	return 0, errBoom
}

// wrongGrad reports twice the true gradient of quadratic.
type wrongGrad struct{ quadratic }

func (w wrongGrad) Evaluate(params, grad *matrix.Vector) (float64, error) {
	loss, err := w.quadratic.Evaluate(params, grad)
	grad.ScaleInPlace(2)

	return loss, err
}

func vec(vals ...float64) *matrix.Vector { return matrix.NewVectorFrom(vals) }

// isNonIncreasing reports whether xs never grows by more than slack.
func isNonIncreasing(xs []float64, slack float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[i-1]+slack {
			return false
		}
	}

	return true
}
