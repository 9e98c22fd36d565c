// SPDX-License-Identifier: MIT

package regularization

import (
	"math"

	"github.com/katalvlaran/lvml/matrix"
	"gonum.org/v1/gonum/floats"
)

const (
	opPenaltyMasked = "PenaltyMasked"
	opAddGradient   = "AddGradientInPlace"
	opClipInPlace   = "ClipInPlace"
)

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// term returns the penalty contribution of one weight.
func (c Config) term(x float64) float64 {
	switch c.Kind {
	case L1:
		return c.Strength * math.Abs(x)
	case L2:
		return 0.5 * c.Strength * x * x
	case ElasticNet:
		return c.Strength * (c.Ratio*math.Abs(x) + 0.5*(1-c.Ratio)*x*x)
	default:
		return 0
	}
}

// slope returns ∂term/∂x.
func (c Config) slope(x float64) float64 {
	switch c.Kind {
	case L1:
		return c.Strength * sign(x)
	case L2:
		return c.Strength * x
	case ElasticNet:
		return c.Strength * (c.Ratio*sign(x) + (1-c.Ratio)*x)
	default:
		return 0
	}
}

// Penalty returns the penalty of w under c; a nil w contributes 0.
// c is assumed valid (see Config.Validate).
func Penalty(c Config, w *matrix.Vector) float64 {
	if w == nil || !c.Active() {
		return 0
	}
	switch c.Kind {
	case L1:
		return c.Strength * floats.Norm(w.Data(), 1)
	case L2:
		return 0.5 * c.Strength * floats.Dot(w.Data(), w.Data())
	}
	var sum float64
	for _, x := range w.Data() {
		sum += c.term(x)
	}

	return sum
}

// PenaltyMasked is Penalty restricted to coordinates with mask[i] == true.
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch (len(mask) != len(w)).
func PenaltyMasked(c Config, w *matrix.Vector, mask []bool) (float64, error) {
	if err := checkMask(w, mask); err != nil {
		return 0, regErrorf(opPenaltyMasked, err)
	}
	if mask == nil {
		return Penalty(c, w), nil
	}
	var sum float64
	for i, x := range w.Data() {
		if mask[i] {
			sum += c.term(x)
		}
	}

	return sum, nil
}

// Gradient returns ∂Penalty/∂w as a new Vector of len(w).
func Gradient(c Config, w *matrix.Vector) *matrix.Vector {
	if w == nil {
		return matrix.NewVectorFrom(nil)
	}
	g := matrix.NewVectorFrom(make([]float64, w.Len()))
	if !c.Active() {
		return g
	}
	if c.Kind == L2 {
		floats.ScaleTo(g.Data(), c.Strength, w.Data())
		return g
	}
	gd := g.Data()
	for i, x := range w.Data() {
		gd[i] = c.slope(x)
	}

	return g
}

// AddGradientInPlace adds ∂Penalty/∂w to grad, skipping masked-out coordinates.
// grad is untouched on error.
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch.
func AddGradientInPlace(c Config, w, grad *matrix.Vector, mask []bool) error {
	if err := matrix.ValidateSameLen(w, grad); err != nil {
		return regErrorf(opAddGradient, err)
	}
	if err := checkMask(w, mask); err != nil {
		return regErrorf(opAddGradient, err)
	}
	if !c.Active() {
		return nil
	}
	gd := grad.Data()
	for i, x := range w.Data() {
		if mask == nil || mask[i] {
			gd[i] += c.slope(x)
		}
	}

	return nil
}

// Clip returns a copy of w with every entry clamped into [−λ, λ] when c is
// WeightClipping; otherwise it returns an unmodified copy.
func Clip(c Config, w *matrix.Vector) *matrix.Vector {
	if w == nil {
		return matrix.NewVectorFrom(nil)
	}
	out := w.Clone()
	_ = ClipInPlace(c, out, nil)

	return out
}

// ClipInPlace clamps w into [−λ, λ] for WeightClipping, skipping masked-out
// coordinates. Other kinds leave w unchanged.
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch.
func ClipInPlace(c Config, w *matrix.Vector, mask []bool) error {
	if err := checkMask(w, mask); err != nil {
		return regErrorf(opClipInPlace, err)
	}
	if c.Kind != WeightClipping || c.Strength <= 0 {
		return nil
	}
	wd := w.Data()
	for i, x := range wd {
		if mask == nil || mask[i] {
			wd[i] = math.Max(-c.Strength, math.Min(c.Strength, x))
		}
	}

	return nil
}

// checkMask validates w and an optional mask against it.
func checkMask(w *matrix.Vector, mask []bool) error {
	if err := matrix.ValidateVectorNotNil(w); err != nil {
		return err
	}
	if mask != nil && len(mask) != w.Len() {
		return matrix.ErrShapeMismatch
	}

	return nil
}
