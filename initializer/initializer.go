// SPDX-License-Identifier: MIT

package initializer

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvml/matrix"
)

const (
	opVector      = "Vector"
	opMatrix      = "Matrix"
	opFillVector  = "FillVector"
	opFillMatrix  = "FillMatrix"
	opBiasVector  = "BiasVector"
	opNoise       = "GaussianNoise"
	panicBadScale = "initializer: scale requested for an unknown distribution"
)

// scale returns σ for Gaussian kinds, the half-width a for symmetric uniform
// kinds and 1 for Default. xavierFan is the Xavier denominator.
func scale(d Distribution, fanIn, xavierFan float64) float64 {
	switch d {
	case Default:
		return 1
	case XavierNormal:
		return math.Sqrt(2 / xavierFan)
	case XavierUniform:
		return math.Sqrt(6 / xavierFan)
	case HeNormal:
		return math.Sqrt(2 / fanIn)
	case HeUniform:
		return math.Sqrt(6 / fanIn)
	case LeCunNormal:
		return math.Sqrt(1 / fanIn)
	case LeCunUniform:
		return math.Sqrt(3 / fanIn)
	case Uniform:
		return 1 / math.Sqrt(fanIn)
	default:
		panic(panicBadScale)
	}
}

// fill overwrites dst with draws of d at scale s.
func fill(dst []float64, d Distribution, s float64, src source) {
	switch {
	case d == Default:
		for i := range dst {
			dst[i] = src.Float64()
		}
	case d.normal():
		for i := range dst {
			dst[i] = s * src.NormFloat64()
		}
	default:
		for i := range dst {
			dst[i] = s * (2*src.Float64() - 1)
		}
	}
}

// Vector returns n draws of d with fan-in n.
// Errors: matrix.ErrInvalidDimensions (n < 0), ErrUnknownDistribution.
func Vector(n int, d Distribution, opts ...Option) (*matrix.Vector, error) {
	if !d.Valid() {
		return nil, initErrorf(opVector, ErrUnknownDistribution)
	}
	v, err := matrix.NewVector(n)
	if err != nil {
		return nil, initErrorf(opVector, err)
	}
	if n > 0 {
		fill(v.Data(), d, scale(d, float64(n), float64(n+1)), sourceFrom(opts))
	}

	return v, nil
}

// Matrix returns an r×c matrix of draws of d with fan-in r; the Xavier kinds
// use r + c.
// Errors: matrix.ErrInvalidDimensions, ErrUnknownDistribution.
func Matrix(r, c int, d Distribution, opts ...Option) (*matrix.Dense, error) {
	if !d.Valid() {
		return nil, initErrorf(opMatrix, ErrUnknownDistribution)
	}
	m, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, initErrorf(opMatrix, err)
	}
	if r*c > 0 {
		fill(m.Data(), d, scale(d, float64(r), float64(r+c)), sourceFrom(opts))
	}

	return m, nil
}

// FillVector overwrites v in place with draws of d (fan-in len(v)).
// Errors: matrix.ErrNilMatrix, ErrUnknownDistribution.
func FillVector(v *matrix.Vector, d Distribution, opts ...Option) error {
	if err := matrix.ValidateVectorNotNil(v); err != nil {
		return initErrorf(opFillVector, err)
	}
	if !d.Valid() {
		return initErrorf(opFillVector, ErrUnknownDistribution)
	}
	if n := v.Len(); n > 0 {
		fill(v.Data(), d, scale(d, float64(n), float64(n+1)), sourceFrom(opts))
	}

	return nil
}

// FillMatrix overwrites m in place with draws of d (fan-in m.Rows()).
// Errors: matrix.ErrNilMatrix, ErrUnknownDistribution.
func FillMatrix(m *matrix.Dense, d Distribution, opts ...Option) error {
	if m == nil {
		return initErrorf(opFillMatrix, matrix.ErrNilMatrix)
	}
	if !d.Valid() {
		return initErrorf(opFillMatrix, ErrUnknownDistribution)
	}
	r, c := m.Shape()
	if r*c > 0 {
		fill(m.Data(), d, scale(d, float64(r), float64(r+c)), sourceFrom(opts))
	}

	return nil
}

// Bias returns one U(0, 1) draw.
func Bias(opts ...Option) float64 {
	return sourceFrom(opts).Float64()
}

// BiasVector returns n U(0, 1) draws.
// Errors: matrix.ErrInvalidDimensions.
func BiasVector(n int, opts ...Option) (*matrix.Vector, error) {
	v, err := matrix.NewVector(n)
	if err != nil {
		return nil, initErrorf(opBiasVector, fmt.Errorf("n=%d: %w", n, err))
	}
	fill(v.Data(), Default, 1, sourceFrom(opts))

	return v, nil
}

// GaussianNoise returns an r×c matrix of standard normal N(0, 1) draws,
// independent of any fan-in.
// Errors: matrix.ErrInvalidDimensions.
func GaussianNoise(r, c int, opts ...Option) (*matrix.Dense, error) {
	m, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, initErrorf(opNoise, err)
	}
	src := sourceFrom(opts)
	data := m.Data()
	for i := range data {
		data[i] = src.NormFloat64()
	}

	return m, nil
}
