// SPDX-License-Identifier: MIT

package cost

import "math"

const (
	// DefaultDelta is the Huber transition point between the quadratic and
	// linear regimes.
	DefaultDelta = 1.0

	// DefaultClampEpsilon bounds ŷ away from 0 and 1 in LogLoss and CrossEntropy.
	DefaultClampEpsilon = 1e-8
)

const (
	panicDeltaInvalid = "cost: WithDelta: delta must be finite and > 0"
	panicClampInvalid = "cost: WithClampEpsilon: eps must be in (0, 0.5)"
)

// Option configures a loss evaluation.
type Option func(*Options)

// Options holds the resolved loss parameters.
type Options struct {
	delta float64
	eps   float64
}

// WithDelta sets the Huber δ. Panics unless δ is finite and positive.
func WithDelta(delta float64) Option {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		panic(panicDeltaInvalid)
	}

	return func(o *Options) { o.delta = delta }
}

// WithClampEpsilon sets the clamp applied to ŷ by log-based kinds.
// Panics unless 0 < eps < 0.5.
func WithClampEpsilon(eps float64) Option {
	if math.IsNaN(eps) || eps <= 0 || eps >= 0.5 {
		panic(panicClampInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(user []Option) Options {
	o := Options{delta: DefaultDelta, eps: DefaultClampEpsilon}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
