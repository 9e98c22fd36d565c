// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions, so
// kernels under test take the At/Set fallback instead of the *Dense fast path.
type hide struct{ matrix.Matrix }

// MustDense builds an r×c *Dense from row-major values or fails the test.
func MustDense(t *testing.T, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	if len(vals) == 0 {
		vals = make([]float64, r*c)
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from nested rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// vec is a terse Vector literal.
func vec(vals ...float64) *matrix.Vector { return matrix.NewVectorFrom(vals) }

// RandomDense fills an r×c matrix with U(-1,1) values from a seeded source.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	data := m.Data()
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}

	return m
}

// RandomSPD returns AᵀA + n·I for a random A, which is symmetric positive definite.
func RandomSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	a := RandomDense(t, n, n, seed)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	g, err := matrix.Mul(at, a)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	require.NoError(t, g.AddScaledInPlace(float64(n), id))

	return g
}

// requireClose asserts shape equality and element-wise |a-b| <= eps.
func requireClose(t *testing.T, want, got matrix.Matrix, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	ok, err := matrix.AllClose(got, want, 0, eps)
	require.NoError(t, err)
	require.True(t, ok, "want\n%v\ngot\n%v", want, got)
}

// requireVecClose asserts length equality and element-wise |a-b| <= eps.
func requireVecClose(t *testing.T, want []float64, got *matrix.Vector, eps float64) {
	t.Helper()
	require.Equal(t, len(want), got.Len())
	require.InDeltaSlice(t, want, got.Raw(), eps)
}
