// SPDX-License-Identifier: MIT

package optim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/katalvlaran/lvml/regularization"
)

const (
	opNew  = "New"
	opStep = "Step"
	opRun  = "Run"
)

// Optimizer drives an Objective toward a minimum. It is not safe for
// concurrent use.
type Optimizer struct {
	cfg     Config // defaults applied
	obj     Objective
	batched Batched // nil unless cfg.BatchSize > 0
	mask    []bool
	rule    *updater
	rng     *rand.Rand
	order   []int
	opts    options

	state   State
	iter    int
	loss    float64
	history []float64

	grad     *matrix.Vector
	proposal []float64
	snapshot []float64
}

// New validates cfg against obj and returns an Initialized optimizer.
// Errors: ErrInvalidConfiguration (nil objective, Dim() < 1, BatchSize > 0
// without Batched, a mask of the wrong length, or any Config.Validate fault).
func New(cfg Config, obj Objective, opts ...Option) (*Optimizer, error) {
	if obj == nil {
		return nil, configErrorf(opNew, errors.New("nil objective"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := cfg.withDefaults()
	n := obj.Dim()
	if n < 1 {
		return nil, configErrorf(opNew, fmt.Errorf("objective dimension %d", n))
	}

	o := &Optimizer{
		cfg:      r,
		obj:      obj,
		opts:     gatherOptions(opts),
		rng:      rand.New(rand.NewSource(r.Seed)),
		grad:     matrix.NewVectorFrom(make([]float64, n), matrix.WithNoValidateNaNInf()),
		proposal: make([]float64, n),
		snapshot: make([]float64, n),
	}
	if r.BatchSize > 0 {
		b, ok := obj.(Batched)
		if !ok {
			return nil, configErrorf(opNew, fmt.Errorf("batch size %d requires a Batched objective", r.BatchSize))
		}
		if b.Len() < 1 {
			return nil, configErrorf(opNew, fmt.Errorf("batched objective has %d samples", b.Len()))
		}
		o.batched = b
		o.order = make([]int, b.Len())
	}
	if m, ok := obj.(Masked); ok {
		mask := m.RegularizationMask()
		if mask != nil && len(mask) != n {
			return nil, configErrorf(opNew, fmt.Errorf("mask len %d, dim %d: %w", len(mask), n, matrix.ErrShapeMismatch))
		}
		o.mask = append([]bool(nil), mask...)
	}
	rule, err := newUpdater(r)
	if err != nil {
		return nil, err
	}
	o.rule = rule

	return o, nil
}

// State returns the current lifecycle state.
func (o *Optimizer) State() State { return o.state }

// Iterations returns the number of completed iterations.
func (o *Optimizer) Iterations() int { return o.iter }

// Loss returns the loss of the last completed iteration (0 before the first).
func (o *Optimizer) Loss() float64 { return o.loss }

// Config returns the configuration with defaults applied.
func (o *Optimizer) Config() Config { return o.cfg }

// History returns a copy of the per-iteration losses.
func (o *Optimizer) History() []float64 { return append([]float64(nil), o.history...) }

// Step runs one iteration on params in place.
//
// Implementation:
//   - Stage 1: reject terminal states and a params length other than Dim().
//   - Stage 2: snapshot params; run one update (full batch) or one shuffled
//     epoch of mini-batch updates.
//   - Stage 3: on failure restore the snapshot and move to Failed.
//   - Stage 4: record the loss and test convergence, then the iteration cap.
//
// Errors: ErrTerminated, matrix.ErrNilMatrix, matrix.ErrShapeMismatch (state
// unchanged); ErrNumericalDivergence or an objective error (state Failed).
func (o *Optimizer) Step(params *matrix.Vector) (StepInfo, error) {
	if o.state.Terminal() {
		return StepInfo{Iteration: o.iter, Loss: o.loss, State: o.state},
			optimErrorf(opStep, fmt.Errorf("%s: %w", o.state, ErrTerminated))
	}
	if err := matrix.ValidateVecLen(params, o.obj.Dim()); err != nil {
		return StepInfo{Iteration: o.iter, State: o.state}, optimErrorf(opStep, err)
	}
	if o.state == Initialized {
		o.transition(Training)
	}

	copy(o.snapshot, params.Data())
	var (
		loss float64
		err  error
	)
	if o.batched == nil {
		loss, err = o.update(params, nil)
	} else {
		loss, err = o.epoch(params)
	}
	if err != nil {
		copy(params.Data(), o.snapshot)
		o.fail(err)
		return StepInfo{Iteration: o.iter, Loss: o.loss, State: o.state}, optimErrorf(opStep, err)
	}

	o.iter++
	delta := math.Inf(1)
	if len(o.history) > 0 {
		delta = math.Abs(loss - o.loss)
	}
	o.loss = loss
	o.history = append(o.history, loss)
	switch {
	case o.cfg.Tolerance > 0 && delta < o.cfg.Tolerance:
		o.transition(Converged)
	case o.iter >= o.cfg.MaxIterations:
		o.transition(MaxIterationsReached)
	}

	info := StepInfo{Iteration: o.iter, Loss: loss, Delta: delta, State: o.state}
	o.opts.logger.Debug("optim step", "iteration", o.iter, "loss", loss, "delta", delta)
	if o.state.Terminal() {
		o.opts.logger.Info("optim finished",
			"state", o.state.String(), "iterations", o.iter, "loss", loss, "rule", o.rule.Name())
	}
	if o.opts.onStep != nil {
		o.opts.onStep(info)
	}

	return info, nil
}

// Run steps until a terminal state and returns the outcome.
// MaxIterationsReached and Converged return a nil error.
func (o *Optimizer) Run(params *matrix.Vector) (Result, error) {
	if o.state.Terminal() {
		return o.result(), optimErrorf(opRun, fmt.Errorf("%s: %w", o.state, ErrTerminated))
	}
	for !o.state.Terminal() {
		if _, err := o.Step(params); err != nil {
			return o.result(), err
		}
	}

	return o.result(), nil
}

// Reset returns the optimizer to Initialized: history, rule state and the
// shuffling source start over.
func (o *Optimizer) Reset() {
	o.rule.Reset()
	o.rng = rand.New(rand.NewSource(o.cfg.Seed))
	o.iter, o.loss, o.history = 0, 0, nil
	o.transition(Initialized)
}

func (o *Optimizer) result() Result {
	return Result{State: o.state, Iterations: o.iter, Loss: o.loss, History: o.History()}
}

// update performs one evaluate/stage/commit cycle over idx (nil = all samples).
func (o *Optimizer) update(params *matrix.Vector, idx []int) (float64, error) {
	var (
		loss, pen float64
		err       error
	)
	if idx == nil {
		loss, err = o.obj.Evaluate(params, o.grad)
	} else {
		loss, err = o.batched.EvaluateBatch(params, o.grad, idx)
	}
	if err != nil {
		return 0, fmt.Errorf("objective: %w", err)
	}

	reg := o.cfg.Regularization
	if reg.Active() {
		if pen, err = regularization.PenaltyMasked(reg, params, o.mask); err != nil {
			return 0, err
		}
		loss += pen
		if err = regularization.AddGradientInPlace(reg, params, o.grad, o.mask); err != nil {
			return 0, err
		}
	}
	if !finite(loss) {
		return 0, fmt.Errorf("loss %v: %w", loss, ErrNumericalDivergence)
	}
	if !o.grad.IsFinite() {
		return 0, fmt.Errorf("gradient: %w", ErrNumericalDivergence)
	}

	if err = o.rule.stage(params.Data(), o.grad.Data(), o.proposal); err != nil {
		return 0, err
	}
	if !allFinite(o.proposal) {
		o.rule.discard()
		return 0, fmt.Errorf("proposed parameters: %w", ErrNumericalDivergence)
	}
	o.rule.commit()
	copy(params.Data(), o.proposal)
	if err = regularization.ClipInPlace(reg, params, o.mask); err != nil {
		return 0, err
	}

	return loss, nil
}

// epoch shuffles the sample order and updates once per mini-batch. The
// returned loss is the sample-weighted mean of the batch losses.
func (o *Optimizer) epoch(params *matrix.Vector) (float64, error) {
	for i := range o.order {
		o.order[i] = i
	}
	o.rng.Shuffle(len(o.order), func(i, j int) { o.order[i], o.order[j] = o.order[j], o.order[i] })

	var (
		total, loss float64
		lo, hi      int
		err         error
	)
	size := o.cfg.BatchSize
	for lo = 0; lo < len(o.order); lo += size {
		hi = min(lo+size, len(o.order))
		if loss, err = o.update(params, o.order[lo:hi]); err != nil {
			return 0, err
		}
		total += loss * float64(hi-lo)
	}

	return total / float64(len(o.order)), nil
}

func (o *Optimizer) transition(to State) {
	from := o.state
	if from == to {
		return
	}
	o.state = to
	if o.opts.onStateChange != nil {
		o.opts.onStateChange(from, to)
	}
}

func (o *Optimizer) fail(err error) {
	o.transition(Failed)
	if errors.Is(err, ErrNumericalDivergence) {
		o.opts.logger.Warn("optim diverged", "iteration", o.iter+1, "err", err)
		return
	}
	o.opts.logger.Warn("optim failed", "iteration", o.iter+1, "err", err)
}
