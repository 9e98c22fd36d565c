// SPDX-License-Identifier: MIT
package activation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvml/activation"
	"github.com/katalvlaran/lvml/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// samplePoints returns inputs inside k's real domain and away from kinks.
func samplePoints(k activation.Kind) []float64 {
	switch k {
	case activation.Logit, activation.Arsech:
		return []float64{0.2, 0.45, 0.7}
	case activation.Artanh:
		return []float64{-0.6, 0.1, 0.5}
	case activation.Arcosh:
		return []float64{1.3, 2, 3.5}
	case activation.Arcoth:
		return []float64{-2.5, 1.4, 3}
	default:
		return []float64{-1.7, -0.4, 0.35, 1.2}
	}
}

func TestDerivative_MatchesFiniteDifference(t *testing.T) {
	t.Parallel()
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}

	for _, k := range activation.Kinds() {
		k := k
		if k == activation.Softmax {
			continue // joint kind, covered by TestSoftmax_DerivativeDiagonal
		}
		t.Run(k.String(), func(t *testing.T) {
			t.Parallel()
			pts := samplePoints(k)
			z := matrix.NewVectorFrom(pts)

			d, err := activation.Derivative(k, z)
			require.NoError(t, err)
			f := func(x float64) float64 {
				y, err := activation.ForwardScalar(k, x)
				require.NoError(t, err)
				return y
			}
			for i, x := range pts {
				want := fd.Derivative(f, x, settings)
				got, _ := d.At(i)
				assert.InDelta(t, want, got, 1e-5*math.Max(1, math.Abs(want)), "%s'(%v)", k, x)
			}
		})
	}
}

func TestDerivativeFromOutput_AgreesWithInput(t *testing.T) {
	t.Parallel()
	z := matrix.NewVectorFrom([]float64{-1.5, -0.2, 0.3, 2})

	for _, k := range activation.Kinds() {
		if k.DerivativeSource() != activation.FromOutput {
			_, err := activation.DerivativeFromOutput(k, z)
			if k != activation.Softmax {
				require.ErrorIs(t, err, activation.ErrNeedsInput, k.String())
			}
			continue
		}
		y, err := activation.Forward(k, z)
		require.NoError(t, err, k.String())
		fromY, err := activation.DerivativeFromOutput(k, y)
		require.NoError(t, err, k.String())
		fromZ, err := activation.Derivative(k, z)
		require.NoError(t, err, k.String())
		assert.True(t, fromY.Equal(fromZ, 1e-12), "%s: %v vs %v", k, fromY, fromZ)
	}
}

func TestSoftmax(t *testing.T) {
	t.Parallel()

	// softmax([1,1,1]) = [1/3,1/3,1/3]
	s, err := activation.Forward(activation.Softmax, matrix.NewVectorFrom([]float64{1, 1, 1}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, s.Raw(), 1e-15)

	// Large logits stay finite.
	s, err = activation.Forward(activation.Softmax, matrix.NewVectorFrom([]float64{1000, 1001}))
	require.NoError(t, err)
	assert.True(t, s.IsFinite())
	assert.InDelta(t, 1.0, s.Sum(), 1e-12)

	m := matrix.MustDense(2, 3, 1, 2, 3, 0, 0, 0)
	out, err := activation.ForwardMatrix(activation.Softmax, m)
	require.NoError(t, err)
	rs, err := matrix.RowSums(out)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1}, rs.Raw(), 1e-12)
	assert.InDelta(t, 1.0/3, out.ToRows()[1][0], 1e-15)

	_, err = activation.ForwardScalar(activation.Softmax, 1)
	require.ErrorIs(t, err, activation.ErrJointKind)

	empty, err := activation.Forward(activation.Softmax, matrix.NewVectorFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestSoftmax_DerivativeDiagonal(t *testing.T) {
	t.Parallel()
	zs := []float64{0.3, -1.2, 2.0}
	z := matrix.NewVectorFrom(zs)

	diag, err := activation.Derivative(activation.Softmax, z)
	require.NoError(t, err)
	jac, err := activation.SoftmaxJacobian(z)
	require.NoError(t, err)

	for i := range zs {
		i := i
		f := func(x float64) float64 {
			zz := append([]float64(nil), zs...)
			zz[i] = x
			s, _ := activation.Forward(activation.Softmax, matrix.NewVectorFrom(zz))
			v, _ := s.At(i)
			return v
		}
		want := fd.Derivative(f, zs[i], &fd.Settings{Formula: fd.Central})
		got, _ := diag.At(i)
		assert.InDelta(t, want, got, 1e-6)
		jii, _ := jac.At(i, i)
		assert.InDelta(t, got, jii, 1e-15)
	}

	// Rows of the Jacobian sum to zero since Σs = 1.
	rs, err := matrix.RowSums(jac)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, rs.Raw(), 1e-15)

	dm, err := activation.DerivativeMatrix(activation.Softmax, matrix.MustDense(1, 3, zs...))
	require.NoError(t, err)
	assert.InDeltaSlice(t, diag.Raw(), dm.Raw(), 1e-15)
}

func TestSubgradientConventions(t *testing.T) {
	t.Parallel()
	zero := matrix.NewVectorFrom([]float64{0})

	for _, k := range []activation.Kind{activation.ReLU, activation.UnitStep, activation.Sign} {
		d, err := activation.Derivative(k, zero)
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, d.Raw(), k.String())
	}

	y, err := activation.Forward(activation.UnitStep, matrix.NewVectorFrom([]float64{-1, 0, 2}))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, y.Raw())
}

func TestParameterizedKinds(t *testing.T) {
	t.Parallel()
	z := matrix.NewVectorFrom([]float64{-2})

	y, err := activation.Forward(activation.LeakyReLU, z)
	require.NoError(t, err)
	assert.InDelta(t, -0.02, y.Raw()[0], 1e-15)

	y, err = activation.Forward(activation.LeakyReLU, z, activation.WithAlpha(0.5))
	require.NoError(t, err)
	assert.InDelta(t, -1.0, y.Raw()[0], 1e-15)

	y, err = activation.Forward(activation.SELU, matrix.NewVectorFrom([]float64{1}))
	require.NoError(t, err)
	assert.InDelta(t, activation.DefaultSELULambda, y.Raw()[0], 1e-15)

	y, err = activation.Forward(activation.ELU, z, activation.WithAlpha(2))
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Expm1(-2), y.Raw()[0], 1e-15)

	assert.Panics(t, func() { activation.WithAlpha(math.NaN()) })
	assert.Panics(t, func() { activation.WithLambda(math.Inf(1)) })
}

func TestDomainViolationIsNaN(t *testing.T) {
	t.Parallel()
	y, err := activation.Forward(activation.Arcosh, matrix.NewVectorFrom([]float64{0.5}))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(y.Raw()[0]))
}

func TestForwardMatrix_Elementwise(t *testing.T) {
	t.Parallel()
	m := matrix.MustDense(2, 2, -1, 0, 1, 2)

	out, err := activation.ForwardMatrix(activation.ReLU, m)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 2}, out.Raw())

	d, err := activation.DerivativeFromOutputMatrix(activation.Tanh, m)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, -3}, d.Raw())

	dz, err := activation.DerivativeMatrix(activation.Sigmoid, m)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, dz.ToRows()[0][1], 1e-15)
}

func TestKindsAndErrors(t *testing.T) {
	t.Parallel()

	k, err := activation.ParseKind("relu")
	require.NoError(t, err)
	assert.Equal(t, activation.ReLU, k)
	_, err = activation.ParseKind("swoosh")
	require.ErrorIs(t, err, activation.ErrUnknownKind)

	assert.Equal(t, "GaussianCDF", activation.GaussianCDF.String())
	assert.Equal(t, "Unknown", activation.Kind(0).String())
	assert.Len(t, activation.Kinds(), 31)
	assert.Equal(t, activation.FromOutput, activation.Sigmoid.DerivativeSource())
	assert.Equal(t, activation.FromInput, activation.Mish.DerivativeSource())

	_, err = activation.Forward(activation.Kind(99), matrix.NewVectorFrom([]float64{1}))
	require.ErrorIs(t, err, activation.ErrUnknownKind)
	_, err = activation.Derivative(activation.Sigmoid, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = activation.ForwardMatrix(activation.Tanh, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
