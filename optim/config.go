// SPDX-License-Identifier: MIT

package optim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvml/regularization"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultLearningRate  = 0.01
	DefaultMaxIterations = 1000
	DefaultMomentum      = 0.9
	DefaultBeta1         = 0.9
	DefaultBeta2         = 0.999
	DefaultEpsilon       = 1e-8
	DefaultRho           = 0.9
)

// Config is the complete training configuration.
//
// Zero values take the Default* constants, except Tolerance (0 disables early
// convergence), BatchSize (0 means full batch) and Seed. An explicit 0 is
// therefore indistinguishable from an unset field: LearningRate: 0 trains at
// DefaultLearningRate and MaxIterations: 0 runs DefaultMaxIterations steps.
// Validate rejects only values that stay out of range after this
// substitution (negative counts, a non-positive rate, coefficients outside
// [0,1)). Pass a small positive Momentum or Beta1 to approximate zero.
type Config struct {
	Rule           Rule
	LearningRate   float64 // η > 0; unused by Adadelta
	MaxIterations  int     // iteration cap ≥ 1
	Tolerance      float64 // converge when |Δloss| < Tolerance; ≥ 0
	Regularization regularization.Config

	Momentum float64 // μ ∈ [0,1) for Momentum and Nesterov
	Beta1    float64 // β1 ∈ [0,1) for the Adam family
	Beta2    float64 // β2 ∈ [0,1) for the Adam family and Adamax
	Epsilon  float64 // ε ≥ 0 added to denominators
	Rho      float64 // ρ ∈ [0,1) decay for Adadelta and RMSProp

	BatchSize int   // mini-batch size; 0 = full batch
	Seed      int64 // mini-batch shuffling seed
}

// withDefaults returns c with zero-valued fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.Rule == 0 {
		c.Rule = Plain
	}
	if c.LearningRate == 0 {
		c.LearningRate = DefaultLearningRate
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if c.Momentum == 0 {
		c.Momentum = DefaultMomentum
	}
	if c.Beta1 == 0 {
		c.Beta1 = DefaultBeta1
	}
	if c.Beta2 == 0 {
		c.Beta2 = DefaultBeta2
	}
	if c.Epsilon == 0 {
		c.Epsilon = DefaultEpsilon
	}
	if c.Rho == 0 {
		c.Rho = DefaultRho
	}

	return c
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// unitInterval reports x ∈ [0, 1).
func unitInterval(x float64) bool { return x >= 0 && x < 1 }

// Validate checks c after defaults are applied. Every failure matches
// ErrInvalidConfiguration; regularization faults also match their own sentinel.
func (c Config) Validate() error {
	r := c.withDefaults()
	switch {
	case !r.Rule.Valid():
		return configErrorf("Validate", fmt.Errorf("rule %d", int(c.Rule)))
	case !finite(r.LearningRate) || r.LearningRate <= 0:
		return configErrorf("Validate", fmt.Errorf("learning rate %v", c.LearningRate))
	case r.MaxIterations < 0:
		return configErrorf("Validate", fmt.Errorf("max iterations %d", c.MaxIterations))
	case !finite(r.Tolerance) || r.Tolerance < 0:
		return configErrorf("Validate", fmt.Errorf("tolerance %v", c.Tolerance))
	case !unitInterval(r.Momentum):
		return configErrorf("Validate", fmt.Errorf("momentum %v", c.Momentum))
	case !unitInterval(r.Beta1) || !unitInterval(r.Beta2):
		return configErrorf("Validate", fmt.Errorf("betas (%v, %v)", c.Beta1, c.Beta2))
	case !finite(r.Epsilon) || r.Epsilon < 0:
		return configErrorf("Validate", fmt.Errorf("epsilon %v", c.Epsilon))
	case !unitInterval(r.Rho):
		return configErrorf("Validate", fmt.Errorf("rho %v", c.Rho))
	case r.BatchSize < 0:
		return configErrorf("Validate", fmt.Errorf("batch size %d", c.BatchSize))
	}
	if err := r.Regularization.Validate(); err != nil {
		return configErrorf("Validate", err)
	}

	return nil
}
