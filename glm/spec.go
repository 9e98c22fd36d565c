// SPDX-License-Identifier: MIT

package glm

import (
	"fmt"

	"github.com/katalvlaran/lvml/activation"
	"github.com/katalvlaran/lvml/cost"
	"github.com/katalvlaran/lvml/initializer"
	"github.com/katalvlaran/lvml/matrix"
)

// Spec is the tagged configuration of a generalized linear model.
type Spec struct {
	Activation activation.Kind
	Cost       cost.Kind

	// ActivationOptions and CostOptions are forwarded to every evaluation.
	ActivationOptions []activation.Option
	CostOptions       []cost.Option

	// Init draws the starting weights in Fit. The zero value is U(0, 1).
	Init initializer.Distribution
}

var (
	LinearRegression   = Spec{Activation: activation.Linear, Cost: cost.MSE}
	LogisticRegression = Spec{Activation: activation.Sigmoid, Cost: cost.LogLoss}
	TanhRegression     = Spec{Activation: activation.Tanh, Cost: cost.MSE}
	ProbitRegression   = Spec{Activation: activation.GaussianCDF, Cost: cost.MSE}
	CLogLogRegression  = Spec{Activation: activation.Cloglog, Cost: cost.MSE}
)

// Validate rejects unknown kinds and joint activations.
func (s Spec) Validate() error {
	switch {
	case s.Activation == activation.Softmax:
		return glmErrorf(opValidate, fmt.Errorf("%s: %w", s.Activation, ErrUnsupportedActivation))
	case !s.Activation.Valid():
		return glmErrorf(opValidate, fmt.Errorf("%d: %w", int(s.Activation), activation.ErrUnknownKind))
	case !s.Cost.Valid():
		return glmErrorf(opValidate, fmt.Errorf("%d: %w", int(s.Cost), cost.ErrUnknownKind))
	case !s.Init.Valid():
		return glmErrorf(opValidate, fmt.Errorf("%d: %w", int(s.Init), initializer.ErrUnknownDistribution))
	}

	return nil
}

// String implements fmt.Stringer.
func (s Spec) String() string {
	return fmt.Sprintf("glm(%s, %s)", s.Activation, s.Cost)
}

// Predict returns act(Xw + b) for params = [w, b] with len(w) == X.Cols().
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch, plus Validate's.
func (s Spec) Predict(params *matrix.Vector, x *matrix.Dense) (*matrix.Vector, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if x == nil {
		return nil, glmErrorf(opPredict, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(params, x.Cols()+1); err != nil {
		return nil, glmErrorf(opPredict, err)
	}
	z := linear(x, params.Data(), nil)
	yHat, err := activation.Forward(s.Activation, z, s.ActivationOptions...)
	if err != nil {
		return nil, glmErrorf(opPredict, err)
	}

	return yHat, nil
}
