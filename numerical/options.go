// SPDX-License-Identifier: MIT

package numerical

import "math"

const (
	// DefaultTolerance is the relative step size at which the root finders
	// stop: |Δx| <= tol·(1 + |x|).
	DefaultTolerance = 1e-12

	// CurvatureTolerance is the eigenvalue magnitude below which
	// ClassifyCriticalPoint treats a Hessian direction as flat.
	CurvatureTolerance = 1e-6

	panicStepInvalid      = "numerical: WithStep: step must be finite and > 0"
	panicToleranceInvalid = "numerical: WithTolerance: tol must be finite and >= 0"
	panicSchemeInvalid    = "numerical: WithScheme: unknown scheme"
)

// Option configures a numerical routine.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	scheme     Scheme  // Central
	step       float64 // 0 = formula default
	tol        float64 // DefaultTolerance
	concurrent bool
}

// WithScheme selects the stencil. Panics on an undefined scheme.
func WithScheme(s Scheme) Option {
	if !s.Valid() {
		panic(panicSchemeInvalid)
	}

	return func(o *Options) { o.scheme = s }
}

// WithStep overrides the finite-difference step. Panics unless step is
// finite and positive.
func WithStep(step float64) Option {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = step }
}

// WithTolerance sets the root-finder stopping tolerance. Panics unless tol is
// finite and non-negative; 0 stops only on an exact root or a zero step.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithConcurrent evaluates stencil points concurrently. f must then be safe
// for concurrent use.
func WithConcurrent() Option {
	return func(o *Options) { o.concurrent = true }
}

func gatherOptions(opts []Option) Options {
	o := Options{scheme: Central, tol: DefaultTolerance}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
