// SPDX-License-Identifier: MIT

package numerical

import (
	"fmt"
	"math"
)

const opEuler = "Euler"

// Euler integrates y′ = dydx(x, y) from (x0, y0) to xEnd with the explicit
// Euler method and step h, and returns y(xEnd). When h does not divide
// xEnd − x0 the last step is shortened to land on xEnd.
// Errors: ErrNilFunction, ErrInvalidArgument (h <= 0, xEnd < x0, non-finite
// bounds), ErrNotFinite (the solution blows up).
func Euler(dydx func(x, y float64) float64, x0, y0, xEnd, h float64) (float64, error) {
	if dydx == nil {
		return 0, numericalErrorf(opEuler, ErrNilFunction)
	}
	if !finite(x0) || !finite(y0) || !finite(xEnd) || !finite(h) || h <= 0 || xEnd < x0 {
		return 0, numericalErrorf(opEuler,
			fmt.Errorf("x0=%v y0=%v xEnd=%v h=%v: %w", x0, y0, xEnd, h, ErrInvalidArgument))
	}
	steps := int(math.Floor((xEnd - x0) / h))
	x, y := x0, y0
	for i := 0; i < steps; i++ {
		y += h * dydx(x, y)
		x = x0 + float64(i+1)*h
	}
	if rest := xEnd - x; rest > 0 {
		y += rest * dydx(x, y)
	}
	if !finite(y) {
		return 0, numericalErrorf(opEuler, fmt.Errorf("y = %v: %w", y, ErrNotFinite))
	}

	return y, nil
}

// Growth returns c·eᵏᵗ, the solution of y′ = k·y with y(0) = c.
func Growth(c, k, t float64) float64 { return c * math.Exp(k*t) }
