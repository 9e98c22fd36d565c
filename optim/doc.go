// SPDX-License-Identifier: MIT

// Package optim minimizes an Objective over a flat parameter Vector with a
// configurable first-order update rule.
//
// The Optimizer is a state machine:
//
//	Initialized ──Step──▶ Training ──▶ Converged
//	                               ├─▶ MaxIterationsReached
//	                               └─▶ Failed
//
// Converged, MaxIterationsReached and Failed are terminal; Step on a terminal
// optimizer returns ErrTerminated until Reset returns it to Initialized.
//
// One Step is one iteration over the data: a single full-batch update, or one
// epoch of shuffled mini-batches when Config.BatchSize > 0 (the objective must
// then implement Batched). Each update:
//
//  1. evaluates loss and gradient and adds the regularization penalty,
//  2. rejects a non-finite loss or gradient,
//  3. stages the rule's proposal in scratch space and rejects a non-finite one,
//  4. commits the proposal into params and applies weight clipping.
//
// A rejected update moves the optimizer to Failed with ErrNumericalDivergence
// and leaves params as they were when the Step began.
//
// Convergence: after iteration t the optimizer compares |loss_t − loss_{t−1}|
// with Config.Tolerance. Tolerance 0 disables the check, so the run ends only
// at MaxIterations. Reaching MaxIterations is a normal outcome: Run returns it
// with a nil error.
//
// Rules: Plain, Momentum, Nesterov, Adagrad, Adadelta, RMSProp, Adam, Adamax,
// Nadam and AMSGrad. Zero-valued hyper-parameters in Config take the Default*
// constants.
//
// Logging goes through log/slog and is discarded unless WithLogger is given.
// Hooks registered with WithOnStep and WithOnStateChange observe progress; they
// cannot alter or abort it.
package optim
