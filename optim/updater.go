// SPDX-License-Identifier: MIT

package optim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvml/matrix"
)

const opUpdate = "Updater.Update"

// Updater applies one update rule to a parameter Vector.
type Updater interface {
	// Update sets params from grad. It is atomic: on error neither params nor
	// the rule's internal state change.
	// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch, ErrNumericalDivergence.
	Update(params, grad *matrix.Vector) error

	// Reset clears accumulated state (moments, step counter).
	Reset()

	// Name returns the rule name.
	Name() string
}

// hyper holds the resolved hyper-parameters plus the bias corrections of the
// step being staged.
type hyper struct {
	lr, mu, rho, beta1, beta2, eps float64
	c1, c2                         float64 // 1−β1ᵗ, 1−β2ᵗ
}

// slots are per-coordinate state buffers; a rule uses the first few.
type slots [3][]float64

// elemFn computes the new value of coordinate i from its weight w and
// gradient g, reading cur and writing next.
type elemFn func(h *hyper, i int, w, g float64, cur, next *slots) float64

// ruleImpl is the table entry of one rule.
type ruleImpl struct {
	slots int
	step  elemFn
}

// updater implements Updater for every built-in rule with a two-phase
// stage/commit protocol, so the optimizer can inspect a proposal first.
type updater struct {
	rule      Rule
	impl      ruleImpl
	h         hyper
	t         int // committed steps
	n         int // parameter length fixed by the first stage; 0 = unset
	cur, next slots
	staged    bool
}

// NewUpdater builds the rule selected by cfg after applying defaults.
// Errors: ErrInvalidConfiguration.
func NewUpdater(cfg Config) (Updater, error) {
	return newUpdater(cfg)
}

func newUpdater(cfg Config) (*updater, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := cfg.withDefaults()
	impl, ok := rules[r.Rule]
	if !ok {
		return nil, configErrorf("NewUpdater", fmt.Errorf("rule %s has no implementation", r.Rule))
	}

	return &updater{
		rule: r.Rule,
		impl: impl,
		h: hyper{
			lr: r.LearningRate, mu: r.Momentum, rho: r.Rho,
			beta1: r.Beta1, beta2: r.Beta2, eps: r.Epsilon,
		},
	}, nil
}

// Name implements Updater.
func (u *updater) Name() string { return u.rule.String() }

// Reset implements Updater.
func (u *updater) Reset() {
	u.t, u.n, u.staged = 0, 0, false
	u.cur, u.next = slots{}, slots{}
}

// stage writes the proposed parameters into out and the proposed state into
// u.next. Nothing observable changes until commit.
// Errors: matrix.ErrShapeMismatch when len(w) differs from earlier calls.
func (u *updater) stage(w, g, out []float64) error {
	if u.n == 0 {
		u.n = len(w)
		for k := 0; k < u.impl.slots; k++ {
			u.cur[k] = make([]float64, u.n)
			u.next[k] = make([]float64, u.n)
		}
	}
	if len(w) != u.n || len(g) != u.n || len(out) != u.n {
		return fmt.Errorf("stage: len %d, want %d: %w", len(w), u.n, matrix.ErrShapeMismatch)
	}
	t := float64(u.t + 1)
	u.h.c1 = 1 - math.Pow(u.h.beta1, t)
	u.h.c2 = 1 - math.Pow(u.h.beta2, t)
	for i := range w {
		out[i] = u.impl.step(&u.h, i, w[i], g[i], &u.cur, &u.next)
	}
	u.staged = true

	return nil
}

// commit makes the staged state current.
func (u *updater) commit() {
	if !u.staged {
		return
	}
	u.cur, u.next = u.next, u.cur
	u.t++
	u.staged = false
}

// discard drops a staged proposal.
func (u *updater) discard() { u.staged = false }

// Update implements Updater.
func (u *updater) Update(params, grad *matrix.Vector) error {
	if err := matrix.ValidateSameLen(params, grad); err != nil {
		return optimErrorf(opUpdate, err)
	}
	if params.Len() == 0 {
		return nil
	}
	out := make([]float64, params.Len())
	if err := u.stage(params.Data(), grad.Data(), out); err != nil {
		return optimErrorf(opUpdate, err)
	}
	if !allFinite(out) {
		u.discard()
		return optimErrorf(opUpdate, ErrNumericalDivergence)
	}
	u.commit()
	copy(params.Data(), out)

	return nil
}

func allFinite(xs []float64) bool {
	for _, x := range xs {
		if !finite(x) {
			return false
		}
	}

	return true
}
