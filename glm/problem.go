// SPDX-License-Identifier: MIT

package glm

import (
	"fmt"

	"github.com/katalvlaran/lvml/activation"
	"github.com/katalvlaran/lvml/cost"
	"github.com/katalvlaran/lvml/matrix"
	"gonum.org/v1/gonum/floats"
)

const (
	opNew           = "New"
	opValidate      = "Spec.Validate"
	opPredict       = "Predict"
	opEvaluate      = "Evaluate"
	opEvaluateBatch = "EvaluateBatch"
	opFit           = "Fit"
)

// Problem is a glm objective over a fixed data set. It owns copies of X and y.
type Problem struct {
	spec Spec
	x    *matrix.Dense
	y    []float64
	mask []bool
}

// New binds spec to the samples (rows of x) and targets y.
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch (rows ≠ len(y)),
// ErrEmptyData, plus Spec.Validate's.
func New(x *matrix.Dense, y *matrix.Vector, spec Spec) (*Problem, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if x == nil {
		return nil, glmErrorf(opNew, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(y, x.Rows()); err != nil {
		return nil, glmErrorf(opNew, err)
	}
	if x.Rows() == 0 {
		return nil, glmErrorf(opNew, ErrEmptyData)
	}

	k := x.Cols()
	mask := make([]bool, k+1)
	for i := 0; i < k; i++ {
		mask[i] = true
	}

	return &Problem{spec: spec, x: x.Copy(), y: y.Raw(), mask: mask}, nil
}

// Spec returns the model configuration.
func (p *Problem) Spec() Spec { return p.spec }

// Dim is the number of features plus one for the bias.
func (p *Problem) Dim() int { return p.x.Cols() + 1 }

// Len is the number of samples.
func (p *Problem) Len() int { return p.x.Rows() }

// RegularizationMask excludes the trailing bias.
func (p *Problem) RegularizationMask() []bool { return append([]bool(nil), p.mask...) }

// Predict is Spec.Predict on the bound samples.
func (p *Problem) Predict(params *matrix.Vector) (*matrix.Vector, error) {
	return p.spec.Predict(params, p.x)
}

// Evaluate returns the loss over all samples and overwrites grad.
func (p *Problem) Evaluate(params, grad *matrix.Vector) (float64, error) {
	return p.evaluate(opEvaluate, params, grad, nil)
}

// EvaluateBatch is Evaluate restricted to the rows listed in idx.
// Errors: matrix.ErrOutOfRange for an index outside [0, Len), cost.ErrEmptyInput
// for an empty idx.
func (p *Problem) EvaluateBatch(params, grad *matrix.Vector, idx []int) (float64, error) {
	n := p.x.Rows()
	for _, r := range idx {
		if r < 0 || r >= n {
			return 0, glmErrorf(opEvaluateBatch, fmt.Errorf("row %d of %d: %w", r, n, matrix.ErrOutOfRange))
		}
	}
	if idx == nil {
		idx = []int{}
	}

	return p.evaluate(opEvaluateBatch, params, grad, idx)
}

// evaluate runs the forward pass and the chain rule on the selected rows;
// idx == nil selects every row. Activations whose DerivativeSource is
// FromOutput are differentiated through ŷ.
func (p *Problem) evaluate(op string, params, grad *matrix.Vector, idx []int) (float64, error) {
	dim := p.Dim()
	if err := matrix.ValidateVecLen(params, dim); err != nil {
		return 0, glmErrorf(op, err)
	}
	if err := matrix.ValidateVecLen(grad, dim); err != nil {
		return 0, glmErrorf(op, err)
	}

	theta := params.Data()
	z := linear(p.x, theta, idx)
	yHat, err := activation.Forward(p.spec.Activation, z, p.spec.ActivationOptions...)
	if err != nil {
		return 0, glmErrorf(op, err)
	}
	target := p.y
	if idx != nil {
		target = make([]float64, len(idx))
		for i, r := range idx {
			target[i] = p.y[r]
		}
	}
	loss, dYHat, err := cost.Evaluate(p.spec.Cost, yHat,
		matrix.NewVectorFrom(target, matrix.WithNoValidateNaNInf()), p.spec.CostOptions...)
	if err != nil {
		return 0, glmErrorf(op, err)
	}
	var dAct *matrix.Vector
	if p.spec.Activation.DerivativeSource() == activation.FromOutput {
		dAct, err = activation.DerivativeFromOutput(p.spec.Activation, yHat, p.spec.ActivationOptions...)
	} else {
		dAct, err = activation.Derivative(p.spec.Activation, z, p.spec.ActivationOptions...)
	}
	if err != nil {
		return 0, glmErrorf(op, err)
	}
	dz := dYHat.Data()
	floats.Mul(dz, dAct.Data())

	k := p.x.Cols()
	g := grad.Data()
	for i := range g {
		g[i] = 0
	}
	data := p.x.Data()
	var r int
	for i, d := range dz {
		r = i
		if idx != nil {
			r = idx[i]
		}
		floats.AddScaled(g[:k], d, data[r*k:(r+1)*k])
		g[k] += d
	}

	return loss, nil
}

// linear returns z = X[rows]·w + b for theta = [w, b]; rows == nil selects all.
func linear(x *matrix.Dense, theta []float64, rows []int) *matrix.Vector {
	k := x.Cols()
	w, b := theta[:k], theta[k]
	data := x.Data()
	n := x.Rows()
	if rows != nil {
		n = len(rows)
	}
	z := make([]float64, n)
	var r int
	for i := range z {
		r = i
		if rows != nil {
			r = rows[i]
		}
		z[i] = floats.Dot(data[r*k:(r+1)*k], w) + b
	}

	return matrix.NewVectorFrom(z, matrix.WithNoValidateNaNInf())
}
