// SPDX-License-Identifier: MIT

package transforms

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvml/matrix"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	opDCT    = "DCT"
	opIDCT   = "IDCT"
	opDCT2D  = "DCT2D"
	opIDCT2D = "IDCT2D"
)

// plan holds the FFT tables and scale factors for one length.
type plan struct {
	fft    *fourier.QuarterWaveFFT
	s0, sk float64
	buf    []float64
}

func newPlan(n int) *plan {
	return &plan{
		fft: fourier.NewQuarterWaveFFT(n),
		s0:  math.Sqrt(1 / float64(n)),
		sk:  math.Sqrt(2 / float64(n)),
		buf: make([]float64, n),
	}
}

// forward writes the orthonormal DCT-II of src into dst. CosSequence
// evaluates 4·Σ x[n]·cos(π(2n+1)k / 2N).
func (p *plan) forward(dst, src []float64) {
	p.fft.CosSequence(p.buf, src)
	dst[0] = p.buf[0] * p.s0 / 4
	for k := 1; k < len(dst); k++ {
		dst[k] = p.buf[k] * p.sk / 4
	}
}

// inverse writes the orthonormal DCT-III of src into dst. CosCoefficients
// evaluates c[0] + 2·Σ_{k≥1} c[k]·cos(π(2n+1)k / 2N).
func (p *plan) inverse(dst, src []float64) {
	p.buf[0] = src[0] * p.s0
	for k := 1; k < len(src); k++ {
		p.buf[k] = src[k] * p.sk / 2
	}
	p.fft.CosCoefficients(dst, p.buf)
}

func checkFinite(op string, vals []float64) error {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return transformsErrorf(op, fmt.Errorf("index %d: %w", i, matrix.ErrNaNInf))
		}
	}

	return nil
}

func vector1D(op string, v *matrix.Vector, run func(p *plan, dst, src []float64)) (*matrix.Vector, error) {
	if err := matrix.ValidateVectorNotNil(v); err != nil {
		return nil, transformsErrorf(op, err)
	}
	n := v.Len()
	if n == 0 {
		return nil, transformsErrorf(op, matrix.ErrEmpty)
	}
	src := v.Data()
	if err := checkFinite(op, src); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	run(newPlan(n), out, src)

	return matrix.NewVectorFrom(out), nil
}

// DCT returns the orthonormal DCT-II of v.
// Errors: matrix.ErrNilMatrix, matrix.ErrEmpty, matrix.ErrNaNInf.
// Complexity: Time O(N log N), Space O(N).
func DCT(v *matrix.Vector) (*matrix.Vector, error) {
	return vector1D(opDCT, v, (*plan).forward)
}

// IDCT inverts DCT: IDCT(DCT(v)) == v up to rounding.
func IDCT(v *matrix.Vector) (*matrix.Vector, error) {
	return vector1D(opIDCT, v, (*plan).inverse)
}

// flatten copies m into a row-major slice, rejecting empty or non-finite input.
func flatten(op string, m matrix.Matrix) ([]float64, int, int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, 0, 0, transformsErrorf(op, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, 0, 0, transformsErrorf(op, matrix.ErrEmpty)
	}
	data := make([]float64, r*c)
	var (
		i, j int
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if data[i*c+j], err = m.At(i, j); err != nil {
				return nil, 0, 0, transformsErrorf(op, err)
			}
		}
	}
	if err = checkFinite(op, data); err != nil {
		return nil, 0, 0, err
	}

	return data, r, c, nil
}

// separable runs rowFn over every row and colFn over every column in place.
func separable(data []float64, r, c int, rowFn, colFn func(p *plan, dst, src []float64)) {
	rp, cp := newPlan(c), newPlan(r)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		rowFn(rp, row, data[i*c:(i+1)*c])
		copy(data[i*c:(i+1)*c], row)
	}
	col, tmp := make([]float64, r), make([]float64, r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			col[i] = data[i*c+j]
		}
		colFn(cp, tmp, col)
		for i := 0; i < r; i++ {
			data[i*c+j] = tmp[i]
		}
	}
}

// DCT2D returns the separable orthonormal 2-D DCT-II of m, normalized per
// dimension, after subtracting the level shift (WithLevelShift, default 0).
// Errors: matrix.ErrNilMatrix, matrix.ErrEmpty, matrix.ErrNaNInf.
// Complexity: Time O(r·c·(log r + log c)), Space O(r·c).
func DCT2D(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	data, r, c, err := flatten(opDCT2D, m)
	if err != nil {
		return nil, err
	}
	if o := gatherOptions(opts); o.shift != 0 {
		for i := range data {
			data[i] -= o.shift
		}
	}
	separable(data, r, c, (*plan).forward, (*plan).forward)

	return matrix.NewDenseFrom(r, c, data)
}

// IDCT2D inverts DCT2D and adds the level shift back.
func IDCT2D(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	data, r, c, err := flatten(opIDCT2D, m)
	if err != nil {
		return nil, err
	}
	separable(data, r, c, (*plan).inverse, (*plan).inverse)
	if o := gatherOptions(opts); o.shift != 0 {
		for i := range data {
			data[i] += o.shift
		}
	}

	return matrix.NewDenseFrom(r, c, data)
}
