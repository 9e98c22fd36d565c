// SPDX-License-Identifier: MIT
package regularization_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/katalvlaran/lvml/regularization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

func vec(vals ...float64) *matrix.Vector { return matrix.NewVectorFrom(vals) }

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cfg  regularization.Config
		want error
	}{
		{"zero value", regularization.Config{}, nil},
		{"l2", regularization.Config{Kind: regularization.L2, Strength: 0.1}, nil},
		{"elastic", regularization.Config{Kind: regularization.ElasticNet, Strength: 1, Ratio: 0.3}, nil},
		{"clip", regularization.Config{Kind: regularization.WeightClipping, Strength: 0.5}, nil},
		{"negative", regularization.Config{Kind: regularization.L1, Strength: -1}, regularization.ErrInvalidStrength},
		{"nan", regularization.Config{Kind: regularization.L1, Strength: math.NaN()}, regularization.ErrInvalidStrength},
		{"none with strength", regularization.Config{Strength: 0.1}, regularization.ErrInvalidStrength},
		{"clip zero bound", regularization.Config{Kind: regularization.WeightClipping}, regularization.ErrInvalidStrength},
		{"ratio", regularization.Config{Kind: regularization.ElasticNet, Strength: 1, Ratio: 1.5}, regularization.ErrInvalidRatio},
		{"kind", regularization.Config{Kind: 17}, regularization.ErrUnknownKind},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPenalty_KnownValues(t *testing.T) {
	t.Parallel()
	w := vec(1, -2, 0)

	assert.InDelta(t, 1.5, regularization.Penalty(regularization.Config{Kind: regularization.L1, Strength: 0.5}, w), 1e-15)
	assert.InDelta(t, 2.5, regularization.Penalty(regularization.Config{Kind: regularization.L2, Strength: 1}, w), 1e-15)
	// α=0.5: 0.5·3 + 0.25·5
	assert.InDelta(t, 2.75, regularization.Penalty(regularization.Config{Kind: regularization.ElasticNet, Strength: 1, Ratio: 0.5}, w), 1e-15)
	assert.Zero(t, regularization.Penalty(regularization.Config{}, w))
	assert.Zero(t, regularization.Penalty(regularization.Config{Kind: regularization.WeightClipping, Strength: 1}, w))
	assert.Zero(t, regularization.Penalty(regularization.Config{Kind: regularization.L2, Strength: 1}, nil))
}

func TestGradient_MatchesFiniteDifference(t *testing.T) {
	t.Parallel()
	w := []float64{0.7, -1.3, 0.25, -0.05}
	for _, cfg := range []regularization.Config{
		{Kind: regularization.L1, Strength: 0.3},
		{Kind: regularization.L2, Strength: 0.8},
		{Kind: regularization.ElasticNet, Strength: 0.6, Ratio: 0.4},
	} {
		cfg := cfg
		t.Run(cfg.Kind.String(), func(t *testing.T) {
			t.Parallel()
			f := func(x []float64) float64 { return regularization.Penalty(cfg, vec(x...)) }
			want := fd.Gradient(nil, f, w, &fd.Settings{Formula: fd.Central, Step: 1e-6})
			got := regularization.Gradient(cfg, vec(w...))
			assert.InDeltaSlice(t, want, got.Raw(), 1e-7)
		})
	}

	g := regularization.Gradient(regularization.Config{Kind: regularization.L1, Strength: 2}, vec(0, 3))
	assert.Equal(t, []float64{0, 2}, g.Raw())
}

func TestMaskedVariants(t *testing.T) {
	t.Parallel()
	cfg := regularization.Config{Kind: regularization.L2, Strength: 1}
	w := vec(1, 2, 3)
	mask := []bool{true, true, false}

	p, err := regularization.PenaltyMasked(cfg, w, mask)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, p, 1e-15)

	grad := vec(10, 10, 10)
	require.NoError(t, regularization.AddGradientInPlace(cfg, w, grad, mask))
	assert.Equal(t, []float64{11, 12, 10}, grad.Raw())

	require.NoError(t, regularization.AddGradientInPlace(regularization.Config{}, w, grad, nil))
	assert.Equal(t, []float64{11, 12, 10}, grad.Raw())

	err = regularization.AddGradientInPlace(cfg, w, grad, []bool{true})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	err = regularization.AddGradientInPlace(cfg, w, vec(1), nil)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	assert.Equal(t, []float64{11, 12, 10}, grad.Raw())
	_, err = regularization.PenaltyMasked(cfg, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestClip(t *testing.T) {
	t.Parallel()
	cfg := regularization.Config{Kind: regularization.WeightClipping, Strength: 0.5}
	w := vec(-2, 0.1, 0.9)

	out := regularization.Clip(cfg, w)
	assert.Equal(t, []float64{-0.5, 0.1, 0.5}, out.Raw())
	assert.Equal(t, []float64{-2, 0.1, 0.9}, w.Raw())

	require.NoError(t, regularization.ClipInPlace(cfg, w, []bool{true, true, false}))
	assert.Equal(t, []float64{-0.5, 0.1, 0.9}, w.Raw())

	same := regularization.Clip(regularization.Config{Kind: regularization.L2, Strength: 0.5}, w)
	assert.True(t, same.Equal(w, 0))
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	k, err := regularization.ParseKind("elasticnet")
	require.NoError(t, err)
	assert.Equal(t, regularization.ElasticNet, k)
	assert.Equal(t, "WeightClipping", regularization.WeightClipping.String())
	_, err = regularization.ParseKind("dropout")
	require.ErrorIs(t, err, regularization.ErrUnknownKind)
}
