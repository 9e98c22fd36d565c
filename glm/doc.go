// SPDX-License-Identifier: MIT

// Package glm composes an activation and a cost into a generalized linear
// training objective for the optim package.
//
// For a design matrix X (n samples × k features) and targets y, the model
// parameters are the flat vector θ = [w₀ … w_{k−1}, b] and the prediction is
//
//	ŷ = act(Xw + b)
//
// Problem evaluates cost(ŷ, y) and its gradient by the chain rule:
//
//	dz = cost'(ŷ) ⊙ act'(z),  ∇w = Xᵀdz,  ∇b = Σdz
//
// Problem satisfies optim.Objective, optim.Batched (mini-batches over rows)
// and optim.Masked (the bias is excluded from regularization), so any update
// rule and any regularization of optim can train it:
//
//	params, res, err := glm.Fit(X, y, glm.LogisticRegression, optim.Config{
//		Rule:         optim.Adam,
//		LearningRate: 0.05,
//	})
//
// Presets mirror the classic regression models: LinearRegression (identity,
// MSE), LogisticRegression (sigmoid, log loss), TanhRegression, ProbitRegression
// (Gaussian CDF) and CLogLogRegression (complementary log-log), the last three
// with MSE.
//
// Softmax is rejected: a glm produces one scalar per sample.
package glm
