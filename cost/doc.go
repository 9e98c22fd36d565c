// SPDX-License-Identifier: MIT

// Package cost implements the loss functions of lvml and their gradients with
// respect to the prediction ŷ.
//
// Every kind compares a prediction ŷ with a target y of identical shape and
// returns a scalar. The matrix variants treat all entries as one population,
// so LossMatrix on an r×c input is Loss on the r·c flattened entries.
//
// With n entries and d = ŷ − y:
//
//	MSE          Σd²/(2n)                          ∇ = d/n
//	RMSE         √(Σd²/n)                          ∇ = d/(n·RMSE), 0 at RMSE = 0
//	MAE          Σ|d|/n                            ∇ = sign(d)/n
//	MBE          Σ(y−ŷ)/n                          ∇ = −1/n
//	LogLoss      −Σ[y ln ŷ + (1−y) ln(1−ŷ)]/n      ∇ = (ŷ−y)/(ŷ(1−ŷ)n)
//	CrossEntropy −Σ y ln ŷ                         ∇ = −y/ŷ
//	Huber(δ)     Σ(½d² or δ|d|−½δ²)/n              ∇ = d/n or δ·sign(d)/n
//	Hinge        Σ max(0, 1−yŷ)/n                  ∇ = −y/n on the active set
//	Wasserstein  −Σ yŷ/n                           ∇ = −y/n
//
// The halved MSE keeps its gradient free of the factor 2. Log-based kinds
// clamp ŷ into [ε, 1−ε] (WithClampEpsilon, default 1e-8) before evaluation;
// Huber reads δ from WithDelta (default 1).
//
// Errors:
//   - matrix.ErrNilMatrix for nil operands,
//   - matrix.ErrShapeMismatch when ŷ and y differ in length or shape,
//   - ErrEmptyInput for zero entries,
//   - ErrUnknownKind for a Kind outside the enumeration.
package cost
