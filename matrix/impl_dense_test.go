// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Dimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Zero-sized matrices are legal.
	m, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Empty(t, m.Raw())
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 7.5))
	assert.Equal(t, 7.5, MustAt(t, m, 1, 0))
}

func TestDense_NaNPolicy(t *testing.T) {
	t.Parallel()

	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.Equal(t, 0.0, MustAt(t, strict, 0, 0), "failed Set must not write")

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Raw())
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())

	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)

	empty, err := matrix.FromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestDense_RowViewAliases(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	row, err := m.RowView(1)
	require.NoError(t, err)
	require.NoError(t, row.Set(0, 40))
	assert.Equal(t, 40.0, MustAt(t, m, 1, 0), "view must write through")

	cp, err := m.Row(0)
	require.NoError(t, err)
	require.NoError(t, cp.Set(0, -1))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0), "Row must copy")

	col, err := m.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, col.Raw())

	_, err = m.RowView(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_SetRowCol(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 2)

	require.NoError(t, m.SetRow(0, vec(1, 2)))
	require.NoError(t, m.SetCol(1, vec(7, 8)))
	assert.Equal(t, []float64{1, 7, 0, 8}, m.Raw())

	require.ErrorIs(t, m.SetRow(0, vec(1)), matrix.ErrShapeMismatch)
	require.ErrorIs(t, m.SetCol(5, vec(1, 2)), matrix.ErrOutOfRange)
	assert.Equal(t, []float64{1, 7, 0, 8}, m.Raw(), "failed writes leave m intact")
}

func TestDense_ViewAndInduced(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, func() float64 { x, _ := v.At(0, 0); return x }())
	require.NoError(t, v.Set(1, 1, 90))
	assert.Equal(t, 90.0, MustAt(t, m, 2, 2))
	assert.Equal(t, []float64{5, 6, 8, 90}, v.Materialize().Raw())

	_, err = m.View(2, 2, 2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	sub, err := m.Induced([]int{0, 2}, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 8, 8}, sub.Raw())
	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_ApplyIsAtomic(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 1, 3, 1, 0, 2)

	err := m.Apply(func(_, _ int, v float64) float64 { return 1 / v })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Equal(t, []float64{1, 0, 2}, m.Raw())

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v + float64(j) }))
	assert.Equal(t, []float64{1, 1, 4}, m.Raw())

	var visited int
	m.Do(func(_, _ int, _ float64) bool { visited++; return visited < 2 })
	assert.Equal(t, 2, visited)
}

func TestDense_Arithmetic(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 2, 4, 3, 2, 1)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5, 5}, sum.Raw())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -1, 1, 3}, diff.Raw())

	prod, err := a.MulElem(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6, 6, 4}, prod.Raw())

	quot, err := a.DivElem(b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 2.0 / 3, 1.5, 4}, quot.Raw(), tol)

	assert.Equal(t, []float64{2, 4, 6, 8}, a.Scale(2).Raw())
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Raw(), "value ops never mutate")

	c := a.Copy()
	require.NoError(t, c.AddScaledInPlace(-1, a))
	assert.Equal(t, []float64{0, 0, 0, 0}, c.Raw())

	wide := MustDense(t, 1, 4)
	_, err = a.Add(wide)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.ErrorIs(t, c.MulElemInPlace(wide), matrix.ErrShapeMismatch)
}

func TestDense_Equal(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 1, 2, 1, 2)

	assert.True(t, a.Equal(MustDense(t, 1, 2, 1, 2), 0))
	assert.False(t, a.Equal(MustDense(t, 1, 2, 1, 2.1), 0))
	assert.True(t, a.Equal(MustDense(t, 1, 2, 1, 2.1), 0.2))
	assert.False(t, a.Equal(MustDense(t, 2, 1, 1, 2), 1))
}
