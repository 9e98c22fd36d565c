// SPDX-License-Identifier: MIT
package stats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/katalvlaran/lvml/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func vec(vals ...float64) *matrix.Vector { return matrix.NewVectorFrom(vals) }

// sampleData has mean 5, median 4.5 and a single mode 4.
func sampleData() *matrix.Vector { return vec(2, 4, 4, 4, 5, 5, 7, 9) }

func TestLocationAndSpread(t *testing.T) {
	t.Parallel()
	v := sampleData()

	tests := []struct {
		name string
		fn   func(*matrix.Vector) (float64, error)
		want float64
	}{
		{"mean", stats.Mean, 5},
		{"median", stats.Median, 4.5},
		{"range", stats.Range, 7},
		{"midrange", stats.Midrange, 5.5},
		{"abs avg deviation", stats.AbsAvgDeviation, 1.5},
		{"variance", stats.Variance, 32.0 / 7},
		{"std dev", stats.StdDev, math.Sqrt(32.0 / 7)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.fn(v)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tol)
		})
	}

	got, err := stats.Median(vec(3, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, got, "odd length picks the middle order statistic")
	assert.Equal(t, []float64{2, 4, 4, 4, 5, 5, 7, 9}, v.Raw(), "input is not reordered")
}

func TestMode(t *testing.T) {
	t.Parallel()
	m, err := stats.Mode(sampleData())
	require.NoError(t, err)
	assert.Equal(t, []float64{4}, m)

	m, err = stats.Mode(vec(3, 2, 3, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, m)

	m, err = stats.Mode(vec(3, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, m)
}

func TestAssociation(t *testing.T) {
	t.Parallel()
	x := vec(1, 2, 3, 4)
	y := vec(5, 7, 9, 11) // y = 3 + 2x

	c, err := stats.Covariance(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/3, c, tol)

	r, err := stats.Correlation(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 1, r, tol)

	r, err = stats.Correlation(x, vec(4, 3, 2, 1))
	require.NoError(t, err)
	assert.InDelta(t, -1, r, tol)

	r2, err := stats.RSquared(x, vec(4, 3, 2, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1, r2, tol)

	b0, err := stats.B0(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 3, b0, tol)
	b1, err := stats.B1(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2, b1, tol)

	_, err = stats.Correlation(x, vec(1, 1, 1, 1))
	require.ErrorIs(t, err, stats.ErrDomain)
	_, err = stats.B1(vec(2, 2), vec(1, 3))
	require.ErrorIs(t, err, stats.ErrDomain)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	_, err := stats.Mean(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = stats.Median(vec())
	require.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Mode(vec())
	require.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Variance(vec(1))
	require.ErrorIs(t, err, stats.ErrTooFewSamples)
	_, err = stats.Covariance(vec(1, 2), vec(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = stats.ChebyshevBound(0)
	require.ErrorIs(t, err, stats.ErrDomain)
}

func TestChebyshevBound(t *testing.T) {
	t.Parallel()
	b, err := stats.ChebyshevBound(2)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, b, tol)

	b, err = stats.ChebyshevBound(0.5)
	require.NoError(t, err)
	assert.Zero(t, b)
}

func TestMeans(t *testing.T) {
	t.Parallel()
	v := vec(1, 2, 4)
	harmonic := 12.0 / 7

	single := []struct {
		name string
		fn   func(*matrix.Vector) (float64, error)
		want float64
	}{
		{"geometric", stats.GeometricMean, 2},
		{"harmonic", stats.HarmonicMean, harmonic},
		{"rms", stats.RMS, math.Sqrt(7)},
		{"contraharmonic", stats.ContraharmonicMean, 3},
	}
	for _, tc := range single {
		got, err := tc.fn(v)
		require.NoError(t, err, tc.name)
		assert.InDelta(t, tc.want, got, tol, tc.name)
	}

	power := map[float64]float64{-1: harmonic, 0: 2, 1: 7.0 / 3, 2: math.Sqrt(7)}
	for p, want := range power {
		got, err := stats.PowerMean(v, p)
		require.NoError(t, err, "p=%v", p)
		assert.InDelta(t, want, got, tol, "p=%v", p)
	}

	lehmer := map[float64]float64{0: harmonic, 1: 7.0 / 3, 2: 3}
	for p, want := range lehmer {
		got, err := stats.LehmerMean(v, p)
		require.NoError(t, err, "p=%v", p)
		assert.InDelta(t, want, got, tol, "p=%v", p)
	}

	w := vec(1, 1, 2)
	got, err := stats.WeightedMean(v, w)
	require.NoError(t, err)
	assert.InDelta(t, 11.0/4, got, tol)
	got, err = stats.WeightedLehmerMean(v, w, 1)
	require.NoError(t, err)
	assert.InDelta(t, 11.0/4, got, tol)
}

func TestMeans_Domain(t *testing.T) {
	t.Parallel()

	g, err := stats.GeometricMean(vec(0, 3))
	require.NoError(t, err)
	assert.Zero(t, g)

	_, err = stats.GeometricMean(vec(-1, 4))
	require.ErrorIs(t, err, stats.ErrDomain)
	_, err = stats.HarmonicMean(vec(0, 4))
	require.ErrorIs(t, err, stats.ErrDomain)
	_, err = stats.PowerMean(vec(0, 4), -1)
	require.ErrorIs(t, err, stats.ErrDomain)
	_, err = stats.LehmerMean(vec(0, 0), 2)
	require.ErrorIs(t, err, stats.ErrDomain, "zero denominator")
	_, err = stats.WeightedMean(vec(1, 2), vec(1, -1))
	require.ErrorIs(t, err, stats.ErrDomain)
	_, err = stats.WeightedMean(vec(1, 2), vec(0, 0))
	require.ErrorIs(t, err, stats.ErrDomain)
	_, err = stats.WeightedMean(vec(1, 2), vec(1))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestTwoArgumentMeans(t *testing.T) {
	t.Parallel()

	h, err := stats.Heronian(1, 4)
	require.NoError(t, err)
	assert.InDelta(t, 7.0/3, h, tol)

	h, err = stats.Heinz(1, 4, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2, h, tol, "x = 1/2 is the geometric mean")
	h, err = stats.Heinz(1, 4, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, h, tol, "x = 0 is the arithmetic mean")
	_, err = stats.Heinz(1, 4, 2)
	require.ErrorIs(t, err, stats.ErrDomain)

	ns, err := stats.NeumanSandor(3, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Asinh(0.5), ns, tol)
	assert.Greater(t, ns, 2.0, "above the arithmetic mean")
	assert.Less(t, ns, math.Sqrt(5), "below the quadratic mean")

	s, err := stats.Stolarsky(1, 4, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, s, tol, "p = 2 is the arithmetic mean")
	s, err = stats.Stolarsky(1, 4, -1)
	require.NoError(t, err)
	assert.InDelta(t, 2, s, tol, "p = -1 is the geometric mean")

	id, err := stats.Identric(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 6.75/math.E, id, tol)
	s, err = stats.Stolarsky(2, 3, 1)
	require.NoError(t, err)
	assert.InDelta(t, id, s, tol)

	l, err := stats.Logarithmic(1, math.E)
	require.NoError(t, err)
	assert.InDelta(t, math.E-1, l, tol)
	s, err = stats.Stolarsky(1, math.E, 0)
	require.NoError(t, err)
	assert.InDelta(t, l, s, tol)

	for _, fn := range []func(a, b float64) (float64, error){
		stats.NeumanSandor, stats.Identric, stats.Logarithmic,
	} {
		m, err := fn(5, 5)
		require.NoError(t, err)
		assert.Equal(t, 5.0, m)

		_, err = fn(0, 5)
		require.ErrorIs(t, err, stats.ErrDomain)
	}
	_, err = stats.Heronian(-1, 5)
	require.ErrorIs(t, err, stats.ErrDomain)
}
