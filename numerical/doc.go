// SPDX-License-Identifier: MIT

// Package numerical approximates derivatives, roots and ODE solutions of
// user-supplied functions.
//
// Differentiation is finite-difference based and delegates to gonum/diff/fd:
//
//	Derivative, SecondDerivative, ThirdDerivative    f: ℝ → ℝ
//	Gradient, Hessian, Laplacian, ThirdOrderTensor  f: ℝⁿ → ℝ
//	Jacobian                                        f: ℝⁿ → ℝᵐ
//
// The stencil is chosen with WithScheme (Central by default, Forward or
// Backward) and the step with WithStep; a zero step selects the formula's
// own. Taylor and TaylorAt build polynomial approximations of order 0 to 3
// from those derivatives, and ClassifyCriticalPoint applies the second
// partial derivative test through the Hessian spectrum.
//
// The root finders (NewtonRaphson, Halley, InverseQuadratic) iterate until
// the step falls within the relative tolerance (WithTolerance) and return the
// last iterate together with ErrNotConverged when the budget runs out. Euler
// integrates y' = g(x, y) with a fixed step and Growth evaluates the closed
// form of y' = k·y.
package numerical
