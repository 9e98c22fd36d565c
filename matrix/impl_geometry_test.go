// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistances(t *testing.T) {
	t.Parallel()
	d, err := matrix.EuclideanDistance(vec(0, 0), vec(3, 4))
	require.NoError(t, err)
	assert.InDelta(t, 5, d, tol)

	d, err = matrix.SquaredDistance(vec(0, 0), vec(3, 4))
	require.NoError(t, err)
	assert.InDelta(t, 25, d, tol)

	_, err = matrix.EuclideanDistance(vec(1), vec(1, 2))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.SquaredDistance(nil, vec(1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCross(t *testing.T) {
	t.Parallel()
	z, err := matrix.Cross(vec(1, 0, 0), vec(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, z.Raw())

	a, b := vec(1, 2, 3), vec(4, 5, 6)
	c, err := matrix.Cross(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 6, -3}, c.Raw())
	dot, err := c.Dot(a)
	require.NoError(t, err)
	assert.Zero(t, dot, "a × b is orthogonal to a")

	_, err = matrix.Cross(vec(1, 2), vec(1, 2))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestProjection(t *testing.T) {
	t.Parallel()
	p, err := matrix.Projection(vec(2, 3), vec(4, 0))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0}, p.Raw())

	_, err = matrix.Projection(vec(1, 1), vec(0, 0))
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

func TestGramSchmidt(t *testing.T) {
	t.Parallel()
	a := MustDense(t, 3, 2, 1, 1, 1, 0, 0, 1)

	q, err := matrix.GramSchmidt(hide{a})
	require.NoError(t, err)
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)

	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(2)
	requireClose(t, id, qtq, 1e-12)

	// Q·(QᵀA) = A: Q spans the columns of A.
	r, err := matrix.Mul(qt, a)
	require.NoError(t, err)
	back, err := matrix.Mul(q, r)
	require.NoError(t, err)
	requireClose(t, a, back, 1e-12)
	assert.InDelta(t, 1/1.4142135623730951, MustAt(t, q, 0, 0), 1e-15)

	_, err = matrix.GramSchmidt(MustDense(t, 2, 2, 1, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.GramSchmidt(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
