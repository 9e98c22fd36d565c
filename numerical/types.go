// SPDX-License-Identifier: MIT

package numerical

import (
	"fmt"
	"strings"
)

// Func is a scalar function of one variable.
type Func func(x float64) float64

// MultiFunc is a scalar function of a point in ℝⁿ. It must not retain or
// modify x.
type MultiFunc func(x []float64) float64

// VectorFunc writes f(x) ∈ ℝᵐ into y. It must not retain x or y.
type VectorFunc func(y, x []float64)

// Scheme selects the finite-difference stencil.
type Scheme int

const (
	// Central uses points on both sides of x (second-order accurate).
	Central Scheme = iota + 1
	// Forward uses x and points above it.
	Forward
	// Backward uses x and points below it.
	Backward

	schemeEnd
)

var schemeNames = [...]string{
	Central:  "Central",
	Forward:  "Forward",
	Backward: "Backward",
}

// Valid reports whether s is a defined scheme.
func (s Scheme) Valid() bool { return s >= Central && s < schemeEnd }

// String returns the scheme name.
func (s Scheme) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}

	return schemeNames[s]
}

// ParseScheme resolves a scheme name, case-insensitively.
func ParseScheme(name string) (Scheme, error) {
	for s := Central; s < schemeEnd; s++ {
		if strings.EqualFold(name, schemeNames[s]) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("numerical: scheme %q: %w", name, ErrInvalidArgument)
}

// CriticalPoint is the outcome of the second partial derivative test.
type CriticalPoint int

const (
	// Minimum: the Hessian is positive definite.
	Minimum CriticalPoint = iota + 1
	// Maximum: the Hessian is negative definite.
	Maximum
	// Saddle: the Hessian has eigenvalues of both signs.
	Saddle
	// Inconclusive: the Hessian is semidefinite with a zero eigenvalue.
	Inconclusive

	criticalEnd
)

var criticalNames = [...]string{
	Minimum:      "Minimum",
	Maximum:      "Maximum",
	Saddle:       "Saddle",
	Inconclusive: "Inconclusive",
}

// String returns the outcome name.
func (c CriticalPoint) String() string {
	if c < Minimum || c >= criticalEnd {
		return fmt.Sprintf("CriticalPoint(%d)", int(c))
	}

	return criticalNames[c]
}
