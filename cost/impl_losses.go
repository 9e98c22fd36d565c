// SPDX-License-Identifier: MIT

package cost

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// kernel is the flat-slice definition of one kind. Both functions receive
// equal-length, non-empty slices; grad writes ∂L/∂ŷ into dst.
type kernel struct {
	loss func(yHat, y []float64, o Options) float64
	grad func(dst, yHat, y []float64, o Options)
}

// kernels holds every declared kind.
var kernels = map[Kind]kernel{
	MSE:          {loss: mseLoss, grad: mseGrad},
	RMSE:         {loss: rmseLoss, grad: rmseGrad},
	MAE:          {loss: maeLoss, grad: maeGrad},
	MBE:          {loss: mbeLoss, grad: mbeGrad},
	LogLoss:      {loss: logLoss, grad: logLossGrad},
	CrossEntropy: {loss: crossEntropyLoss, grad: crossEntropyGrad},
	Huber:        {loss: huberLoss, grad: huberGrad},
	Hinge:        {loss: hingeLoss, grad: hingeGrad},
	Wasserstein:  {loss: wassersteinLoss, grad: wassersteinGrad},
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// clamp bounds p into [eps, 1-eps].
func clamp(p, eps float64) float64 { return math.Min(math.Max(p, eps), 1-eps) }

func mseLoss(yHat, y []float64, _ Options) float64 {
	return sumSqDiff(yHat, y) / float64(2*len(y))
}

func mseGrad(dst, yHat, y []float64, _ Options) {
	floats.SubTo(dst, yHat, y)
	floats.Scale(1/float64(len(y)), dst)
}

func rmseLoss(yHat, y []float64, _ Options) float64 {
	return math.Sqrt(sumSqDiff(yHat, y) / float64(len(y)))
}

func rmseGrad(dst, yHat, y []float64, o Options) {
	r := rmseLoss(yHat, y, o)
	if r == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	floats.SubTo(dst, yHat, y)
	floats.Scale(1/(float64(len(y))*r), dst)
}

func maeLoss(yHat, y []float64, _ Options) float64 {
	return floats.Distance(yHat, y, 1) / float64(len(y))
}

func maeGrad(dst, yHat, y []float64, _ Options) {
	n := float64(len(y))
	for i := range dst {
		dst[i] = sign(yHat[i]-y[i]) / n
	}
}

func mbeLoss(yHat, y []float64, _ Options) float64 {
	return (floats.Sum(y) - floats.Sum(yHat)) / float64(len(y))
}

func mbeGrad(dst, _, y []float64, _ Options) {
	for i := range dst {
		dst[i] = -1 / float64(len(y))
	}
}

func logLoss(yHat, y []float64, o Options) float64 {
	var (
		sum, p float64
		i      int
	)
	for i = range y {
		p = clamp(yHat[i], o.eps)
		sum += y[i]*math.Log(p) + (1-y[i])*math.Log1p(-p)
	}

	return -sum / float64(len(y))
}

func logLossGrad(dst, yHat, y []float64, o Options) {
	n := float64(len(y))
	var p float64
	for i := range dst {
		p = clamp(yHat[i], o.eps)
		dst[i] = (p - y[i]) / (p * (1 - p) * n)
	}
}

func crossEntropyLoss(yHat, y []float64, o Options) float64 {
	var sum float64
	for i := range y {
		sum += y[i] * math.Log(clamp(yHat[i], o.eps))
	}

	return -sum
}

func crossEntropyGrad(dst, yHat, y []float64, o Options) {
	for i := range dst {
		dst[i] = -y[i] / clamp(yHat[i], o.eps)
	}
}

func huberLoss(yHat, y []float64, o Options) float64 {
	var (
		sum, d float64
		i      int
	)
	for i = range y {
		d = math.Abs(yHat[i] - y[i])
		if d <= o.delta {
			sum += 0.5 * d * d
		} else {
			sum += o.delta*d - 0.5*o.delta*o.delta
		}
	}

	return sum / float64(len(y))
}

func huberGrad(dst, yHat, y []float64, o Options) {
	n := float64(len(y))
	var d float64
	for i := range dst {
		d = yHat[i] - y[i]
		if math.Abs(d) <= o.delta {
			dst[i] = d / n
		} else {
			dst[i] = o.delta * sign(d) / n
		}
	}
}

func hingeLoss(yHat, y []float64, _ Options) float64 {
	var sum float64
	for i := range y {
		sum += math.Max(0, 1-y[i]*yHat[i])
	}

	return sum / float64(len(y))
}

func hingeGrad(dst, yHat, y []float64, _ Options) {
	n := float64(len(y))
	for i := range dst {
		if 1-y[i]*yHat[i] > 0 {
			dst[i] = -y[i] / n
		} else {
			dst[i] = 0
		}
	}
}

func wassersteinLoss(yHat, y []float64, _ Options) float64 {
	return -floats.Dot(yHat, y) / float64(len(y))
}

func wassersteinGrad(dst, _, y []float64, _ Options) {
	floats.ScaleTo(dst, -1/float64(len(y)), y)
}

func sumSqDiff(a, b []float64) float64 {
	var sum, d float64
	for i := range a {
		d = a[i] - b[i]
		sum += d * d
	}

	return sum
}
