// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatVectors(t *testing.T) {
	t.Parallel()
	a, b := vec(1, 2), vec(3)
	out, err := matrix.ConcatVectors(a, vec(), b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, out.Raw())

	out.Data()[0] = 99
	assert.Equal(t, []float64{1, 2}, a.Raw(), "result does not alias operands")

	empty, err := matrix.ConcatVectors()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	_, err = matrix.ConcatVectors(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestHStackVStack(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 1, 5, 6)

	h, err := matrix.HStack(a, hide{b})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 5}, {3, 4, 6}}, h.ToRows())

	c := MustDense(t, 1, 2, 7, 8)
	v, err := matrix.VStack(hide{a}, c)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {7, 8}}, v.ToRows())

	_, err = matrix.HStack(a, c)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.VStack(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	var nilDense *matrix.Dense
	_, err = matrix.HStack(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.VStack(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	e, err := matrix.HStack()
	require.NoError(t, err)
	assert.Equal(t, 0, e.Len())
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	f, err := matrix.Flatten(hide{m})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, f.Raw())

	t3, err := matrix.FromMatrices([]*matrix.Dense{MustDense(t, 1, 2, 1, 2), MustDense(t, 1, 2, 3, 4)})
	require.NoError(t, err)
	ft, err := matrix.FlattenTensor3(t3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, ft.Raw())

	_, err = matrix.Flatten(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FlattenTensor3(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
