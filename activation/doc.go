// SPDX-License-Identifier: MIT

// Package activation provides the activation functions of lvml and their
// derivatives, selected by an enumerated Kind.
//
// Every kind maps a container to a container of identical shape. All kinds
// except Softmax act elementwise; Softmax normalizes a Vector jointly and a
// matrix row by row, so each output row sums to 1.
//
// Derivatives:
//
//	Derivative(k, z) always differentiates at the raw input z. For kinds whose
//	derivative is cheaper and stabler from the forward output (Linear, Sigmoid,
//	Softmax, Tanh, UnitStep, ReLU, Sign) DerivativeFromOutput(k, y) takes
//	y = Forward(k, z) instead. Kind.DerivativeSource reports which form a kind
//	prefers; backpropagation code must honour it.
//
// Conventions:
//
//   - Non-differentiable points take the zero subgradient: ReLU'(0) = 0,
//     UnitStep' = Sign' = 0 everywhere.
//   - Softmax subtracts the maximum before exponentiation. Derivative(Softmax)
//     is the Jacobian diagonal s(1−s); SoftmaxJacobian returns diag(s) − s·sᵀ.
//   - Inputs outside a kind's real domain (Logit outside (0,1), Arcosh below 1, ...)
//     produce IEEE NaN/Inf rather than an error.
//
// Parameterized kinds read WithAlpha / WithLambda: LeakyReLU (α = 0.01),
// ELU (α = 1) and SELU (λ ≈ 1.0507, α ≈ 1.6733).
package activation
