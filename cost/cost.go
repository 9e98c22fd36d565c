// SPDX-License-Identifier: MIT

package cost

import (
	"fmt"

	"github.com/katalvlaran/lvml/matrix"
)

const (
	opLoss           = "Loss"
	opGradient       = "Gradient"
	opEvaluate       = "Evaluate"
	opLossMatrix     = "LossMatrix"
	opGradientMatrix = "GradientMatrix"
	opEvaluateMatrix = "EvaluateMatrix"
)

// prepare validates a vector pair and resolves the kernel of k.
// Validation order: kind, nil, length, emptiness.
func prepare(op string, k Kind, yHat, y *matrix.Vector) (kernel, error) {
	kn, ok := kernels[k]
	if !ok {
		return kernel{}, costErrorf(op, k, ErrUnknownKind)
	}
	if err := matrix.ValidateSameLen(yHat, y); err != nil {
		return kernel{}, costErrorf(op, k, err)
	}
	if y.Len() == 0 {
		return kernel{}, costErrorf(op, k, ErrEmptyInput)
	}

	return kn, nil
}

// Loss returns the scalar loss of prediction yHat against target y.
// Errors: ErrUnknownKind, matrix.ErrNilMatrix, matrix.ErrShapeMismatch, ErrEmptyInput.
func Loss(k Kind, yHat, y *matrix.Vector, opts ...Option) (float64, error) {
	kn, err := prepare(opLoss, k, yHat, y)
	if err != nil {
		return 0, err
	}

	return kn.loss(yHat.Data(), y.Data(), gatherOptions(opts)), nil
}

// Gradient returns ∂Loss/∂ŷ as a new Vector of len(y).
func Gradient(k Kind, yHat, y *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	kn, err := prepare(opGradient, k, yHat, y)
	if err != nil {
		return nil, err
	}
	g := matrix.NewVectorFrom(make([]float64, y.Len()), matrix.WithNoValidateNaNInf())
	kn.grad(g.Data(), yHat.Data(), y.Data(), gatherOptions(opts))

	return g, nil
}

// Evaluate returns Loss and Gradient in one validated call.
func Evaluate(k Kind, yHat, y *matrix.Vector, opts ...Option) (float64, *matrix.Vector, error) {
	kn, err := prepare(opEvaluate, k, yHat, y)
	if err != nil {
		return 0, nil, err
	}
	o := gatherOptions(opts)
	g := matrix.NewVectorFrom(make([]float64, y.Len()), matrix.WithNoValidateNaNInf())
	kn.grad(g.Data(), yHat.Data(), y.Data(), o)

	return kn.loss(yHat.Data(), y.Data(), o), g, nil
}

// flatten returns the row-major entries of m. A *Dense is read without copying.
func flatten(m matrix.Matrix) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Data(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// prepareMatrix is prepare for matrices; it also returns the flat entries.
func prepareMatrix(op string, k Kind, yHat, y matrix.Matrix) (kernel, []float64, []float64, error) {
	kn, ok := kernels[k]
	if !ok {
		return kernel{}, nil, nil, costErrorf(op, k, ErrUnknownKind)
	}
	if err := matrix.ValidateBinarySameShape(yHat, y); err != nil {
		return kernel{}, nil, nil, costErrorf(op, k, err)
	}
	if y.Rows()*y.Cols() == 0 {
		return kernel{}, nil, nil, costErrorf(op, k, ErrEmptyInput)
	}
	a, err := flatten(yHat)
	if err != nil {
		return kernel{}, nil, nil, costErrorf(op, k, err)
	}
	b, err := flatten(y)
	if err != nil {
		return kernel{}, nil, nil, costErrorf(op, k, err)
	}

	return kn, a, b, nil
}

// LossMatrix is Loss over every entry of a matrix pair.
func LossMatrix(k Kind, yHat, y matrix.Matrix, opts ...Option) (float64, error) {
	kn, a, b, err := prepareMatrix(opLossMatrix, k, yHat, y)
	if err != nil {
		return 0, err
	}

	return kn.loss(a, b, gatherOptions(opts)), nil
}

// GradientMatrix is Gradient over a matrix pair; the result has y's shape.
func GradientMatrix(k Kind, yHat, y matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	kn, a, b, err := prepareMatrix(opGradientMatrix, k, yHat, y)
	if err != nil {
		return nil, err
	}
	g, err := matrix.NewDense(y.Rows(), y.Cols(), matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, costErrorf(opGradientMatrix, k, err)
	}
	kn.grad(g.Data(), a, b, gatherOptions(opts))

	return g, nil
}

// EvaluateMatrix returns LossMatrix and GradientMatrix in one call.
func EvaluateMatrix(k Kind, yHat, y matrix.Matrix, opts ...Option) (float64, *matrix.Dense, error) {
	kn, a, b, err := prepareMatrix(opEvaluateMatrix, k, yHat, y)
	if err != nil {
		return 0, nil, err
	}
	g, err := matrix.NewDense(y.Rows(), y.Cols(), matrix.WithNoValidateNaNInf())
	if err != nil {
		return 0, nil, costErrorf(opEvaluateMatrix, k, err)
	}
	o := gatherOptions(opts)
	kn.grad(g.Data(), a, b, o)

	return kn.loss(a, b, o), g, nil
}
