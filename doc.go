// Package lvml is an in-memory numeric engine and gradient-training toolkit:
// dense containers and linear algebra at the bottom, differentiable building
// blocks and an optimizer state machine on top.
//
// What is in the box?
//
//	matrix/           Vector, Dense, Tensor3; products, solvers, decompositions,
//	                  broadcasts, norms, convolution, column statistics
//	activation/       elementwise activations (and Softmax) with derivatives
//	cost/             losses and their gradients with respect to ŷ
//	regularization/   L1, L2, ElasticNet penalties and weight clipping
//	initializer/      seeded Xavier, He, LeCun and uniform weight draws
//	optim/            Objective interface, ten update rules, Optimizer
//	                  (Initialized → Training → Converged | MaxIterationsReached | Failed)
//	glm/              activation + cost composed into a trainable linear model
//	metrics/          performance, confusion-based scores, R², summaries
//	stats/            descriptive statistics, regression coefficients, means
//	numerical/        finite-difference derivatives, Taylor series, root
//	                  finders, Euler integration, critical-point test
//	transforms/       orthonormal DCT-II / inverse, 1-D and 2-D
//
// Guarantees:
//
//   - Kernels are stateless and never panic on user input; failures are
//     sentinel errors checked with errors.Is.
//   - Shapes are validated before the first write, so a failed operation
//     leaves its operands untouched.
//   - The optimizer commits an update only when every new parameter is finite.
//
// Quick example:
//
//	x := matrix.MustDense(3, 1, 1, 2, 3)
//	y := matrix.NewVectorFrom([]float64{2, 4, 6})
//	params, res, err := glm.Fit(x, y, glm.LinearRegression, optim.Config{
//		LearningRate:  0.1,
//		MaxIterations: 5000,
//	})
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/lvml
package lvml
