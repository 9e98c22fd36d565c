// SPDX-License-Identifier: MIT

package activation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvml/matrix"
	"gonum.org/v1/gonum/floats"
)

const (
	opForward        = "Forward"
	opForwardMatrix  = "ForwardMatrix"
	opForwardScalar  = "ForwardScalar"
	opDerivative     = "Derivative"
	opDerivativeMat  = "DerivativeMatrix"
	opFromOutput     = "DerivativeFromOutput"
	opFromOutputMat  = "DerivativeFromOutputMatrix"
	opSoftmaxJac     = "SoftmaxJacobian"
	opSoftmaxRowwise = "softmaxRows"
)

// lookup returns the elementwise definition of k.
func lookup(op string, k Kind) (scalarFn, error) {
	fn, ok := scalarTable[k]
	if !ok {
		return scalarFn{}, activationErrorf(op, k, ErrUnknownKind)
	}

	return fn, nil
}

// ForwardScalar evaluates an elementwise kind at one point.
// Errors: ErrUnknownKind; ErrJointKind for Softmax.
func ForwardScalar(k Kind, z float64, opts ...Option) (float64, error) {
	if k == Softmax {
		return 0, activationErrorf(opForwardScalar, k, ErrJointKind)
	}
	fn, err := lookup(opForwardScalar, k)
	if err != nil {
		return 0, err
	}

	return fn.f(z, resolve(k, opts)), nil
}

// Forward returns f(z) as a new Vector of len(z). Softmax normalizes z jointly.
// Errors: matrix.ErrNilMatrix, ErrUnknownKind.
func Forward(k Kind, z *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	if err := matrix.ValidateVectorNotNil(z); err != nil {
		return nil, activationErrorf(opForward, k, err)
	}
	if k == Softmax {
		out := z.Clone()
		softmaxInPlace(out.Data())

		return out, nil
	}
	fn, err := lookup(opForward, k)
	if err != nil {
		return nil, err
	}
	p := resolve(k, opts)

	return z.Map(func(x float64) float64 { return fn.f(x, p) }), nil
}

// ForwardMatrix returns f(Z) with Z's shape. Softmax normalizes each row.
// Errors: matrix.ErrNilMatrix, ErrUnknownKind.
func ForwardMatrix(k Kind, z matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(z); err != nil {
		return nil, activationErrorf(opForwardMatrix, k, err)
	}
	if k == Softmax {
		return softmaxRows(z)
	}
	fn, err := lookup(opForwardMatrix, k)
	if err != nil {
		return nil, err
	}
	p := resolve(k, opts)
	out, err := matrix.Map(z, func(x float64) float64 { return fn.f(x, p) })
	if err != nil {
		return nil, activationErrorf(opForwardMatrix, k, err)
	}

	return out, nil
}

// Derivative returns f'(z) evaluated at the raw input, one entry per element.
// For Softmax this is the Jacobian diagonal ∂sᵢ/∂zᵢ = sᵢ(1−sᵢ).
// Errors: matrix.ErrNilMatrix, ErrUnknownKind.
func Derivative(k Kind, z *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	if err := matrix.ValidateVectorNotNil(z); err != nil {
		return nil, activationErrorf(opDerivative, k, err)
	}
	if k == Softmax {
		s := z.Clone()
		softmaxInPlace(s.Data())
		s.MapInPlace(func(y float64) float64 { return y * (1 - y) })

		return s, nil
	}
	fn, err := lookup(opDerivative, k)
	if err != nil {
		return nil, err
	}
	p := resolve(k, opts)

	return z.Map(func(x float64) float64 { return fn.df(x, p) }), nil
}

// DerivativeMatrix is Derivative over a matrix; Softmax works row by row.
func DerivativeMatrix(k Kind, z matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(z); err != nil {
		return nil, activationErrorf(opDerivativeMat, k, err)
	}
	if k == Softmax {
		s, err := softmaxRows(z)
		if err != nil {
			return nil, err
		}
		data := s.Data()
		for i, y := range data {
			data[i] = y * (1 - y)
		}

		return s, nil
	}
	fn, err := lookup(opDerivativeMat, k)
	if err != nil {
		return nil, err
	}
	p := resolve(k, opts)
	out, err := matrix.Map(z, func(x float64) float64 { return fn.df(x, p) })
	if err != nil {
		return nil, activationErrorf(opDerivativeMat, k, err)
	}

	return out, nil
}

// fromOutputFn resolves the output-based derivative of k.
func fromOutputFn(op string, k Kind) (func(float64, params) float64, error) {
	if k == Softmax {
		return func(y float64, _ params) float64 { return y * (1 - y) }, nil
	}
	fn, err := lookup(op, k)
	if err != nil {
		return nil, err
	}
	if fn.dy == nil {
		return nil, activationErrorf(op, k, ErrNeedsInput)
	}

	return fn.dy, nil
}

// DerivativeFromOutput returns f' expressed through y = f(z), for kinds whose
// DerivativeSource is FromOutput.
// Errors: matrix.ErrNilMatrix, ErrUnknownKind, ErrNeedsInput.
func DerivativeFromOutput(k Kind, y *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	if err := matrix.ValidateVectorNotNil(y); err != nil {
		return nil, activationErrorf(opFromOutput, k, err)
	}
	dy, err := fromOutputFn(opFromOutput, k)
	if err != nil {
		return nil, err
	}
	p := resolve(k, opts)

	return y.Map(func(x float64) float64 { return dy(x, p) }), nil
}

// DerivativeFromOutputMatrix is DerivativeFromOutput over a matrix.
func DerivativeFromOutputMatrix(k Kind, y matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(y); err != nil {
		return nil, activationErrorf(opFromOutputMat, k, err)
	}
	dy, err := fromOutputFn(opFromOutputMat, k)
	if err != nil {
		return nil, err
	}
	p := resolve(k, opts)
	out, err := matrix.Map(y, func(x float64) float64 { return dy(x, p) })
	if err != nil {
		return nil, activationErrorf(opFromOutputMat, k, err)
	}

	return out, nil
}

// SoftmaxJacobian returns the n×n matrix J[i,j] = sᵢ(δᵢⱼ − sⱼ) for s = softmax(z).
func SoftmaxJacobian(z *matrix.Vector) (*matrix.Dense, error) {
	if err := matrix.ValidateVectorNotNil(z); err != nil {
		return nil, activationErrorf(opSoftmaxJac, Softmax, err)
	}
	s := z.Raw()
	softmaxInPlace(s)
	n := len(s)
	jac, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, activationErrorf(opSoftmaxJac, Softmax, err)
	}
	data := jac.Data()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			data[i*n+j] = -s[i] * s[j]
		}
		data[i*n+i] += s[i]
	}

	return jac, nil
}

// softmaxInPlace overwrites xs with exp(xs − max) / Σ exp(xs − max).
// An empty slice is left as is.
func softmaxInPlace(xs []float64) {
	if len(xs) == 0 {
		return
	}
	floats.AddConst(-floats.Max(xs), xs)
	for i, x := range xs {
		xs[i] = math.Exp(x)
	}
	floats.Scale(1/floats.Sum(xs), xs)
}

// softmaxRows applies softmaxInPlace to every row of a copy of z.
func softmaxRows(z matrix.Matrix) (*matrix.Dense, error) {
	rows, cols := z.Rows(), z.Cols()
	out, err := matrix.NewDense(rows, cols, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, activationErrorf(opSoftmaxRowwise, Softmax, err)
	}
	data := out.Data()
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = z.At(i, j); err != nil {
				return nil, activationErrorf(opSoftmaxRowwise, Softmax, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			data[i*cols+j] = v
		}
		softmaxInPlace(data[i*cols : (i+1)*cols])
	}

	return out, nil
}
