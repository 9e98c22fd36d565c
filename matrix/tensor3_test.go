// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTensor3_Basics(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewTensor3(1, -1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	tt, err := matrix.NewTensor3(2, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, tt.Channels())
	assert.Equal(t, 2, tt.Rows())
	assert.Equal(t, 3, tt.Cols())

	require.NoError(t, tt.Set(1, 1, 2, 9))
	v, err := tt.At(1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
	_, err = tt.At(2, 0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	ch, err := tt.Channel(1)
	require.NoError(t, err)
	require.NoError(t, ch.Set(0, 0, 4))
	v, _ = tt.At(1, 0, 0)
	assert.Equal(t, 4.0, v, "Channel is a view")

	cl := tt.Clone()
	require.NoError(t, cl.Set(1, 0, 0, -1))
	v, _ = tt.At(1, 0, 0)
	assert.Equal(t, 4.0, v, "Clone is independent")
}

func TestFromMatrices(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 2, 5, 6, 7, 8)

	tt, err := matrix.FromMatrices([]*matrix.Dense{a, b})
	require.NoError(t, err)
	assert.Equal(t, [][][]float64{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}}, tt.ToSlices())

	_, err = matrix.FromMatrices([]*matrix.Dense{a, MustDense(t, 1, 2)})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	require.ErrorIs(t, tt.SetChannel(0, MustDense(t, 3, 3)), matrix.ErrShapeMismatch)
	require.NoError(t, tt.SetChannel(0, b))
	c0, _ := tt.Channel(0)
	assert.Equal(t, b.Raw(), c0.Raw())
}

func TestTensor3_Arithmetic(t *testing.T) {
	t.Parallel()
	a, _ := matrix.FromMatrices([]*matrix.Dense{MustDense(t, 1, 2, 1, 2), MustDense(t, 1, 2, 3, 4)})
	b, _ := matrix.FromMatrices([]*matrix.Dense{MustDense(t, 1, 2, 1, 1), MustDense(t, 1, 2, 2, 2)})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 5, 6}, sum.Data())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 2}, diff.Data())

	prod, err := a.MulElem(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 6, 8}, prod.Data())
	assert.Equal(t, []float64{2, 4, 6, 8}, a.Scale(2).Data())

	require.NoError(t, a.AddInPlace(b))
	assert.True(t, a.Equal(sum, 0))

	other, _ := matrix.NewTensor3(1, 1, 2)
	_, err = a.Add(other)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestChannelReductions(t *testing.T) {
	t.Parallel()
	tt, _ := matrix.FromMatrices([]*matrix.Dense{MustDense(t, 1, 2, 1, 2), MustDense(t, 1, 2, 3, 6)})

	s, err := matrix.SumChannels(tt)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 8}, s.Raw())

	m, err := matrix.MeanChannels(tt)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, m.Raw())

	empty, _ := matrix.NewTensor3(0, 2, 2)
	_, err = matrix.MeanChannels(empty)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	mapped, err := matrix.MapChannels(tt, func(k int, ch *matrix.Dense) (*matrix.Dense, error) {
		return ch.Scale(float64(k + 1)), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 6, 12}, mapped.Data())
}
