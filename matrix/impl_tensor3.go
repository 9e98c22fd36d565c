// SPDX-License-Identifier: MIT

// Package matrix - Tensor3 reductions across the channel axis.
package matrix

const (
	opSumChannels  = "SumChannels"
	opMeanChannels = "MeanChannels"
	opMapChannels  = "MapChannels"
)

// SumChannels returns the rows×cols matrix Σₖ T[k].
// Errors: ErrNilMatrix.
func SumChannels(t *Tensor3) (*Dense, error) {
	if t == nil {
		return nil, matrixErrorf(opSumChannels, ErrNilMatrix)
	}
	plane := t.r * t.c
	out := newDense(t.r, t.c)
	var k, idx, base int
	for k = 0; k < t.ch; k++ {
		base = k * plane
		for idx = 0; idx < plane; idx++ {
			out.data[idx] += t.data[base+idx]
		}
	}

	return out, nil
}

// MeanChannels returns Σₖ T[k] / channels.
// Errors: ErrNilMatrix; ErrShapeMismatch for a tensor without channels.
func MeanChannels(t *Tensor3) (*Dense, error) {
	if t == nil {
		return nil, matrixErrorf(opMeanChannels, ErrNilMatrix)
	}
	if t.ch == 0 {
		return nil, matrixErrorf(opMeanChannels, ErrShapeMismatch)
	}
	out, err := SumChannels(t)
	if err != nil {
		return nil, err
	}
	out.ScaleInPlace(1 / float64(t.ch))

	return out, nil
}

// MapChannels applies f to every channel and stacks the results.
// All results must share one shape, otherwise ErrShapeMismatch.
func MapChannels(t *Tensor3, f func(k int, ch *Dense) (*Dense, error)) (*Tensor3, error) {
	if t == nil {
		return nil, matrixErrorf(opMapChannels, ErrNilMatrix)
	}
	if t.ch == 0 {
		return &Tensor3{validateNaNInf: t.validateNaNInf}, nil
	}
	outs := make([]*Dense, t.ch)
	var (
		k   int
		src *Dense
		err error
	)
	for k = 0; k < t.ch; k++ {
		src, _ = t.Channel(k)
		if outs[k], err = f(k, src.Copy()); err != nil {
			return nil, matrixErrorf(opMapChannels, err)
		}
	}
	res, err := FromMatrices(outs)
	if err != nil {
		return nil, matrixErrorf(opMapChannels, err)
	}

	return res, nil
}
