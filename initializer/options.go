// SPDX-License-Identifier: MIT

package initializer

import "math/rand"

// Option configures the random source of a draw.
type Option func(*config)

type config struct {
	rng *rand.Rand // nil = process-wide source
}

// source is the subset of *rand.Rand the samplers need.
type source interface {
	Float64() float64
	NormFloat64() float64
}

// globalSource forwards to the process-wide math/rand functions.
type globalSource struct{}

func (globalSource) Float64() float64     { return rand.Float64() }
func (globalSource) NormFloat64() float64 { return rand.NormFloat64() }

// WithSeed draws from a private source seeded with seed (reproducible).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand draws from r, advancing the caller's stream. A nil r selects the
// process-wide source.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// sourceFrom resolves options to a sampler, last option winning.
func sourceFrom(opts []Option) source {
	var c config
	for _, set := range opts {
		if set != nil {
			set(&c)
		}
	}
	if c.rng != nil {
		return c.rng
	}

	return globalSource{}
}
