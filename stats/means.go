// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvml/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	opWeightedMean       = "WeightedMean"
	opGeometricMean      = "GeometricMean"
	opHarmonicMean       = "HarmonicMean"
	opRMS                = "RMS"
	opPowerMean          = "PowerMean"
	opLehmerMean         = "LehmerMean"
	opWeightedLehmerMean = "WeightedLehmerMean"
	opHeronian           = "Heronian"
	opHeinz              = "Heinz"
	opNeumanSandor       = "NeumanSandor"
	opStolarsky          = "Stolarsky"
	opIdentric           = "Identric"
	opLogarithmic        = "Logarithmic"
)

// positive fails unless every entry is > 0 (strict) or >= 0.
func positive(op string, xs []float64, strict bool) error {
	for i, x := range xs {
		if x < 0 || (strict && x == 0) || math.IsNaN(x) {
			return statsErrorf(op, fmt.Errorf("entry %d = %v: %w", i, x, ErrDomain))
		}
	}

	return nil
}

// weighted validates x with non-negative weights w of equal length and a
// positive total.
func weighted(op string, x, w *matrix.Vector) ([]float64, []float64, error) {
	xs, ws, err := paired(op, x, w, 1)
	if err != nil {
		return nil, nil, err
	}
	if err = positive(op, ws, false); err != nil {
		return nil, nil, err
	}
	if floats.Sum(ws) == 0 {
		return nil, nil, statsErrorf(op, fmt.Errorf("zero total weight: %w", ErrDomain))
	}

	return xs, ws, nil
}

// WeightedMean returns Σwᵢxᵢ / Σwᵢ.
// Errors: ErrDomain for a negative weight or a zero total weight.
func WeightedMean(x, w *matrix.Vector) (float64, error) {
	xs, ws, err := weighted(opWeightedMean, x, w)
	if err != nil {
		return 0, err
	}

	return stat.Mean(xs, ws), nil
}

// GeometricMean returns (Πxᵢ)^(1/n) for non-negative entries.
func GeometricMean(v *matrix.Vector) (float64, error) {
	xs, err := sample(opGeometricMean, v, 1)
	if err != nil {
		return 0, err
	}
	if err = positive(opGeometricMean, xs, false); err != nil {
		return 0, err
	}

	return stat.GeometricMean(xs, nil), nil
}

// HarmonicMean returns n / Σ(1/xᵢ) for positive entries.
func HarmonicMean(v *matrix.Vector) (float64, error) {
	xs, err := sample(opHarmonicMean, v, 1)
	if err != nil {
		return 0, err
	}
	if err = positive(opHarmonicMean, xs, true); err != nil {
		return 0, err
	}

	return stat.HarmonicMean(xs, nil), nil
}

// RMS returns the quadratic mean √(Σxᵢ²/n).
func RMS(v *matrix.Vector) (float64, error) {
	xs, err := sample(opRMS, v, 1)
	if err != nil {
		return 0, err
	}

	return floats.Norm(xs, 2) / math.Sqrt(float64(len(xs))), nil
}

// PowerMean returns the generalized mean (Σxᵢᵖ/n)^(1/p) of non-negative
// entries. p = 0 is the geometric mean; p < 0 requires positive entries.
func PowerMean(v *matrix.Vector, p float64) (float64, error) {
	xs, err := sample(opPowerMean, v, 1)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, statsErrorf(opPowerMean, fmt.Errorf("p = %v: %w", p, ErrDomain))
	}
	if err = positive(opPowerMean, xs, p < 0); err != nil {
		return 0, err
	}
	if p == 0 {
		return stat.GeometricMean(xs, nil), nil
	}
	var sum float64
	for _, x := range xs {
		sum += math.Pow(x, p)
	}

	return result(opPowerMean, math.Pow(sum/float64(len(xs)), 1/p))
}

// lehmer returns Σwᵢxᵢᵖ / Σwᵢxᵢᵖ⁻¹; ws == nil weighs every entry 1.
func lehmer(op string, xs, ws []float64, p float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, statsErrorf(op, fmt.Errorf("p = %v: %w", p, ErrDomain))
	}
	if err := positive(op, xs, p < 1); err != nil {
		return 0, err
	}
	var num, den float64
	w := 1.0
	for i, x := range xs {
		if ws != nil {
			w = ws[i]
		}
		num += w * math.Pow(x, p)
		den += w * math.Pow(x, p-1)
	}

	return result(op, num/den)
}

// LehmerMean returns Σxᵢᵖ / Σxᵢᵖ⁻¹. p < 1 requires positive entries.
func LehmerMean(v *matrix.Vector, p float64) (float64, error) {
	xs, err := sample(opLehmerMean, v, 1)
	if err != nil {
		return 0, err
	}

	return lehmer(opLehmerMean, xs, nil, p)
}

// WeightedLehmerMean returns Σwᵢxᵢᵖ / Σwᵢxᵢᵖ⁻¹.
func WeightedLehmerMean(x, w *matrix.Vector, p float64) (float64, error) {
	xs, ws, err := weighted(opWeightedLehmerMean, x, w)
	if err != nil {
		return 0, err
	}

	return lehmer(opWeightedLehmerMean, xs, ws, p)
}

// ContraharmonicMean is LehmerMean with p = 2: Σxᵢ² / Σxᵢ.
func ContraharmonicMean(v *matrix.Vector) (float64, error) {
	return LehmerMean(v, 2)
}

// pairDomain checks that a and b are non-negative (or positive) and finite.
func pairDomain(op string, a, b float64, strict bool) error {
	for _, x := range [2]float64{a, b} {
		if x < 0 || (strict && x == 0) || math.IsNaN(x) || math.IsInf(x, 0) {
			return statsErrorf(op, fmt.Errorf("(%v, %v): %w", a, b, ErrDomain))
		}
	}

	return nil
}

// Heronian returns (a + √(ab) + b) / 3 for a, b ≥ 0.
func Heronian(a, b float64) (float64, error) {
	if err := pairDomain(opHeronian, a, b, false); err != nil {
		return 0, err
	}

	return (a + math.Sqrt(a*b) + b) / 3, nil
}

// Heinz returns (aˣb¹⁻ˣ + a¹⁻ˣbˣ) / 2 for a, b ≥ 0 and x ∈ [0, 1].
// x = 0 gives the arithmetic mean and x = 1/2 the geometric mean.
func Heinz(a, b, x float64) (float64, error) {
	if err := pairDomain(opHeinz, a, b, false); err != nil {
		return 0, err
	}
	if !(x >= 0 && x <= 1) {
		return 0, statsErrorf(opHeinz, fmt.Errorf("x = %v: %w", x, ErrDomain))
	}

	return (math.Pow(a, x)*math.Pow(b, 1-x) + math.Pow(a, 1-x)*math.Pow(b, x)) / 2, nil
}

// NeumanSandor returns (a − b) / (2·arsinh((a − b)/(a + b))) for a, b > 0,
// and a when a == b.
func NeumanSandor(a, b float64) (float64, error) {
	if err := pairDomain(opNeumanSandor, a, b, true); err != nil {
		return 0, err
	}
	if a == b {
		return a, nil
	}

	return (a - b) / (2 * math.Asinh((a-b)/(a+b))), nil
}

// Stolarsky returns ((xᵖ − yᵖ) / (p(x − y)))^(1/(p−1)) for x, y > 0.
// The removable cases are filled by their limits: x == y gives x, p = 0 the
// logarithmic mean and p = 1 the identric mean.
func Stolarsky(x, y, p float64) (float64, error) {
	if err := pairDomain(opStolarsky, x, y, true); err != nil {
		return 0, err
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, statsErrorf(opStolarsky, fmt.Errorf("p = %v: %w", p, ErrDomain))
	}
	switch {
	case x == y:
		return x, nil
	case p == 0:
		return Logarithmic(x, y)
	case p == 1:
		return Identric(x, y)
	}

	return result(opStolarsky, math.Pow((math.Pow(x, p)-math.Pow(y, p))/(p*(x-y)), 1/(p-1)))
}

// Identric returns (1/e)·(xˣ/yʸ)^(1/(x−y)) for x, y > 0, and x when x == y.
// It is evaluated in log space so large arguments do not overflow.
func Identric(x, y float64) (float64, error) {
	if err := pairDomain(opIdentric, x, y, true); err != nil {
		return 0, err
	}
	if x == y {
		return x, nil
	}

	return result(opIdentric, math.Exp((x*math.Log(x)-y*math.Log(y))/(x-y)-1))
}

// Logarithmic returns (y − x) / (ln y − ln x) for x, y > 0, and x when x == y.
func Logarithmic(x, y float64) (float64, error) {
	if err := pairDomain(opLogarithmic, x, y, true); err != nil {
		return 0, err
	}
	if x == y {
		return x, nil
	}

	return (y - x) / (math.Log(y) - math.Log(x)), nil
}
