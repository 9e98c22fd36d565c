// SPDX-License-Identifier: MIT
package transforms_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/katalvlaran/lvml/transforms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

// direct evaluates the orthonormal DCT-II by its defining sum.
func direct(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		s := math.Sqrt(2 / float64(n))
		if k == 0 {
			s = math.Sqrt(1 / float64(n))
		}
		var sum float64
		for i, v := range x {
			sum += v * math.Cos(math.Pi*float64((2*i+1)*k)/float64(2*n))
		}
		out[k] = s * sum
	}

	return out
}

func randomSlice(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

func TestDCT_MatchesDefinition(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 4, 5, 8, 12} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			x := randomSlice(n, int64(n))
			got, err := transforms.DCT(matrix.NewVectorFrom(x))
			require.NoError(t, err)
			assert.InDeltaSlice(t, direct(x), got.Raw(), tol)

			back, err := transforms.IDCT(got)
			require.NoError(t, err)
			assert.InDeltaSlice(t, x, back.Raw(), tol, "round trip")

			var e0, e1 float64
			for i, c := range got.Raw() {
				e0 += x[i] * x[i]
				e1 += c * c
			}
			assert.InDelta(t, e0, e1, tol, "Parseval")
		})
	}
}

func TestDCT_Constant(t *testing.T) {
	t.Parallel()

	got, err := transforms.DCT(matrix.NewVectorFrom([]float64{3, 3, 3, 3}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{6, 0, 0, 0}, got.Raw(), tol, "all energy in the DC term")
}

func TestDCT2D(t *testing.T) {
	t.Parallel()
	const r, c = 3, 4
	data := randomSlice(r*c, 7)
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	got, err := transforms.DCT2D(m)
	require.NoError(t, err)

	// Rows first, then columns, each by the defining sum.
	want := make([]float64, r*c)
	for i := 0; i < r; i++ {
		copy(want[i*c:(i+1)*c], direct(data[i*c:(i+1)*c]))
	}
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			col[i] = want[i*c+j]
		}
		for i, v := range direct(col) {
			want[i*c+j] = v
		}
	}
	assert.InDeltaSlice(t, want, got.Data(), tol)

	back, err := transforms.IDCT2D(got)
	require.NoError(t, err)
	assert.InDeltaSlice(t, data, back.Data(), tol)
	assert.Equal(t, data, m.Data(), "input is not modified")
}

func TestDCT2D_LevelShift(t *testing.T) {
	t.Parallel()

	block, err := matrix.NewDense(8, 8)
	require.NoError(t, err)
	for i := range block.Data() {
		block.Data()[i] = 128
	}
	got, err := transforms.DCT2D(block, transforms.WithLevelShift(128))
	require.NoError(t, err)
	assert.InDeltaSlice(t, make([]float64, 64), got.Data(), tol, "a flat mid-gray block has no energy")

	back, err := transforms.IDCT2D(got, transforms.WithLevelShift(128))
	require.NoError(t, err)
	assert.InDeltaSlice(t, block.Data(), back.Data(), tol)

	plain, err := transforms.DCT2D(block)
	require.NoError(t, err)
	dc, err := plain.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 128*8, dc, 1e-9)

	assert.Panics(t, func() { transforms.WithLevelShift(math.NaN()) })
}

func TestDCT_Errors(t *testing.T) {
	t.Parallel()

	_, err := transforms.DCT(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = transforms.IDCT(matrix.NewVectorFrom(nil))
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = transforms.DCT(matrix.NewVectorFrom([]float64{1, math.Inf(1)}))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	empty, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	_, err = transforms.DCT2D(empty)
	require.ErrorIs(t, err, matrix.ErrEmpty)
	_, err = transforms.IDCT2D(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
