// SPDX-License-Identifier: MIT
package optim_test

import (
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/katalvlaran/lvml/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckGradient(t *testing.T) {
	t.Parallel()

	diff, err := optim.CheckGradient(newLinReg(), vec(0.3, -0.7), 1e-6)
	require.NoError(t, err)
	assert.Less(t, diff, 1e-6)

	q := quadratic{a: []float64{1, 4}, c: []float64{2, -1}}
	p := vec(0.5, 0.5)
	_, err = optim.CheckGradient(q, p, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, p.Raw())

	diff, err = optim.CheckGradient(wrongGrad{q}, p, 1e-6)
	require.ErrorIs(t, err, optim.ErrGradientMismatch)
	assert.Greater(t, diff, 1.0)

	_, err = optim.CheckGradient(q, vec(1), 1e-6)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = optim.CheckGradient(broken{}, vec(1), 1e-6)
	require.ErrorIs(t, err, errBoom)
}
