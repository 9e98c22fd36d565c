// SPDX-License-Identifier: MIT
package numerical_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvml/matrix"
	"github.com/katalvlaran/lvml/numerical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(vals ...float64) *matrix.Vector { return matrix.NewVectorFrom(vals) }

// cubic is x₀²x₁ + x₁³: H = [[2x₁, 2x₀], [2x₀, 6x₁]].
func cubic(x []float64) float64 { return x[0]*x[0]*x[1] + x[1]*x[1]*x[1] }

func TestDerivatives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(numerical.Func, float64, ...numerical.Option) (float64, error)
		f    numerical.Func
		x    float64
		want float64
		opts []numerical.Option
		tol  float64
	}{
		{"first central", numerical.Derivative, math.Sin, 1, math.Cos(1), nil, 1e-8},
		{"first forward", numerical.Derivative, math.Sin, 1, math.Cos(1), []numerical.Option{numerical.WithScheme(numerical.Forward)}, 1e-6},
		{"first backward", numerical.Derivative, math.Sin, 1, math.Cos(1), []numerical.Option{numerical.WithScheme(numerical.Backward)}, 1e-6},
		{"first custom step", numerical.Derivative, math.Exp, 0, 1, []numerical.Option{numerical.WithStep(1e-4)}, 1e-7},
		{"second central", numerical.SecondDerivative, math.Exp, 0, 1, nil, 1e-6},
		{"second forward", numerical.SecondDerivative, math.Exp, 0, 1, []numerical.Option{numerical.WithScheme(numerical.Forward)}, 1e-3},
		{"third central", numerical.ThirdDerivative, math.Sin, 0.3, -math.Cos(0.3), nil, 1e-5},
		{"third forward", numerical.ThirdDerivative, math.Sin, 0.3, -math.Cos(0.3), []numerical.Option{numerical.WithScheme(numerical.Forward)}, 5e-3},
		{"third backward", numerical.ThirdDerivative, math.Sin, 0.3, -math.Cos(0.3), []numerical.Option{numerical.WithScheme(numerical.Backward)}, 5e-3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.fn(tc.f, tc.x, tc.opts...)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, tc.tol)
		})
	}
}

func TestDerivative_Errors(t *testing.T) {
	t.Parallel()

	_, err := numerical.Derivative(nil, 1)
	require.ErrorIs(t, err, numerical.ErrNilFunction)
	_, err = numerical.Derivative(math.Sin, math.NaN())
	require.ErrorIs(t, err, numerical.ErrInvalidArgument)
	_, err = numerical.Derivative(func(float64) float64 { return math.NaN() }, 1)
	require.ErrorIs(t, err, numerical.ErrNotFinite)

	_, err = numerical.Gradient(cubic, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = numerical.Gradient(cubic, vec())
	require.ErrorIs(t, err, numerical.ErrEmptyInput)
	_, err = numerical.Hessian(nil, vec(1, 2))
	require.ErrorIs(t, err, numerical.ErrNilFunction)
	_, err = numerical.Jacobian(func(y, x []float64) {}, 0, vec(1))
	require.ErrorIs(t, err, numerical.ErrInvalidArgument)
}

func TestGradientAndJacobian(t *testing.T) {
	t.Parallel()

	f := func(x []float64) float64 { return x[0]*x[0] + 3*x[0]*x[1] + math.Sin(x[1]) }
	g, err := numerical.Gradient(f, vec(1, 2))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{8, 3 + math.Cos(2)}, g.Raw(), 1e-7)

	x := vec(2, 3)
	j, err := numerical.Jacobian(func(y, x []float64) {
		y[0] = x[0] * x[1]
		y[1] = x[0] + x[1]*x[1]
	}, 2, x, numerical.WithConcurrent())
	require.NoError(t, err)
	require.Equal(t, 2, j.Rows())
	require.Equal(t, 2, j.Cols())
	assert.InDeltaSlice(t, []float64{3, 2, 1, 6}, j.Data(), 1e-6)
	assert.Equal(t, []float64{2, 3}, x.Raw(), "evaluation point is not modified")
}

func TestHessianAndLaplacian(t *testing.T) {
	t.Parallel()
	x := vec(1, 2)

	h, err := numerical.Hessian(cubic, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{4, 2, 2, 12}, h.Data(), 1e-6)

	l, err := numerical.Laplacian(cubic, x)
	require.NoError(t, err)
	assert.InDelta(t, 16, l, 1e-5)
}

func TestThirdOrderTensor(t *testing.T) {
	t.Parallel()

	tt, err := numerical.ThirdOrderTensor(cubic, vec(1, 2))
	require.NoError(t, err)
	require.Equal(t, 2, tt.Channels())

	want := [2][2][2]float64{
		{{0, 2}, {2, 0}},
		{{2, 0}, {0, 6}},
	}
	for k := 0; k < 2; k++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				got, err := tt.At(k, i, j)
				require.NoError(t, err)
				assert.InDelta(t, want[k][i][j], got, 1e-5, "T[%d][%d][%d]", k, i, j)
			}
		}
	}
}

func TestTaylor(t *testing.T) {
	t.Parallel()

	want := []float64{1, 1.1, 1.105, 1.1 + 0.005 + 0.001/6}
	for order, w := range want {
		got, err := numerical.Taylor(math.Exp, 0, 0.1, order)
		require.NoError(t, err)
		assert.InDelta(t, w, got, 1e-9, "order %d", order)
	}

	_, err := numerical.Taylor(math.Exp, 0, 0.1, 4)
	require.ErrorIs(t, err, numerical.ErrInvalidArgument)
}

func TestTaylorAt(t *testing.T) {
	t.Parallel()
	c, x := vec(1, 2), vec(1.5, 1)

	// At c: f = 10, ∇f = (4, 13), H = [[4, 2], [2, 12]]; d = (0.5, −1).
	want := []float64{
		10,
		10 + 2 - 13,
		10 + 2 - 13 + 0.5*(4*0.25+2*2*0.5*-1+12*1),
		cubic([]float64{1.5, 1}),
	}
	for order, w := range want {
		got, err := numerical.TaylorAt(cubic, c, x, order)
		require.NoError(t, err)
		assert.InDelta(t, w, got, 1e-5, "order %d", order)
	}

	_, err := numerical.TaylorAt(cubic, c, vec(1), 2)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = numerical.TaylorAt(cubic, c, x, -1)
	require.ErrorIs(t, err, numerical.ErrInvalidArgument)
}

func TestRootFinders(t *testing.T) {
	t.Parallel()
	f := func(x float64) float64 { return x*x - 2 }

	r, err := numerical.NewtonRaphson(f, 1, 50)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, r, 1e-10)

	r, err = numerical.Halley(f, 1, 50)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, r, 1e-10)

	r, err = numerical.InverseQuadratic(f, 1, 1.5, 2, 50)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, r, 1e-10)

	r, err = numerical.NewtonRaphson(math.Sin, 3, 50, numerical.WithTolerance(1e-14))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, r, 1e-12)
}

func TestRootFinders_Failures(t *testing.T) {
	t.Parallel()
	noRoot := func(x float64) float64 { return x*x + 1 }

	_, err := numerical.NewtonRaphson(noRoot, 0, 10)
	require.ErrorIs(t, err, numerical.ErrDegenerate, "f'(0) = 0")

	_, err = numerical.NewtonRaphson(noRoot, 0.5, 5)
	require.ErrorIs(t, err, numerical.ErrNotConverged)

	_, err = numerical.InverseQuadratic(func(float64) float64 { return 1 }, 0, 1, 2, 10)
	require.ErrorIs(t, err, numerical.ErrDegenerate)

	_, err = numerical.Halley(noRoot, 1, 0)
	require.ErrorIs(t, err, numerical.ErrInvalidArgument)
	_, err = numerical.NewtonRaphson(nil, 1, 10)
	require.ErrorIs(t, err, numerical.ErrNilFunction)
}

func TestEulerAndGrowth(t *testing.T) {
	t.Parallel()

	y, err := numerical.Euler(func(_, y float64) float64 { return y }, 0, 1, 1, 1e-4)
	require.NoError(t, err)
	assert.InDelta(t, math.E, y, 2e-4)
	assert.InDelta(t, math.E, numerical.Growth(1, 1, 1), 1e-15)

	y, err = numerical.Euler(func(x, _ float64) float64 { return 2 * x }, 0, 0, 1, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 0.99, y, 1e-9, "left Riemann sum of 2x")

	y, err = numerical.Euler(func(_, _ float64) float64 { return 1 }, 0, 0, 1, 0.3)
	require.NoError(t, err)
	assert.InDelta(t, 1, y, 1e-12, "partial last step lands on xEnd")

	_, err = numerical.Euler(func(_, y float64) float64 { return y }, 0, 1, 1, 0)
	require.ErrorIs(t, err, numerical.ErrInvalidArgument)
	_, err = numerical.Euler(func(_, y float64) float64 { return y }, 1, 1, 0, 0.1)
	require.ErrorIs(t, err, numerical.ErrInvalidArgument)
	_, err = numerical.Euler(nil, 0, 1, 1, 0.1)
	require.ErrorIs(t, err, numerical.ErrNilFunction)
}

func TestClassifyCriticalPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    numerical.MultiFunc
		dim  int
		want numerical.CriticalPoint
	}{
		{"bowl", func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] }, 2, numerical.Minimum},
		{"cap", func(x []float64) float64 { return -x[0]*x[0] - 2*x[1]*x[1] }, 2, numerical.Maximum},
		{"saddle", func(x []float64) float64 { return x[0]*x[0] - x[1]*x[1] }, 2, numerical.Saddle},
		{"flat", func(x []float64) float64 { return x[0]*x[0]*x[0] + x[1]*x[1]*x[1] }, 2, numerical.Inconclusive},
		{"3d saddle", func(x []float64) float64 { return x[0]*x[0] + x[1]*x[1] - x[2]*x[2] }, 3, numerical.Saddle},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := numerical.ClassifyCriticalPoint(tc.f, matrix.NewVectorFrom(make([]float64, tc.dim)))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, got.String())
		})
	}
}

func TestOptionsAndKinds(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { numerical.WithStep(0) })
	assert.Panics(t, func() { numerical.WithStep(math.Inf(1)) })
	assert.Panics(t, func() { numerical.WithTolerance(-1) })
	assert.Panics(t, func() { numerical.WithScheme(numerical.Scheme(42)) })

	s, err := numerical.ParseScheme("backward")
	require.NoError(t, err)
	assert.Equal(t, numerical.Backward, s)
	_, err = numerical.ParseScheme("upwind")
	require.ErrorIs(t, err, numerical.ErrInvalidArgument)

	assert.Equal(t, "Central", numerical.Central.String())
	assert.Equal(t, "Scheme(0)", numerical.Scheme(0).String())
	assert.Equal(t, "Saddle", numerical.Saddle.String())
	assert.Equal(t, "CriticalPoint(9)", numerical.CriticalPoint(9).String())
}
