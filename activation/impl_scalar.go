// SPDX-License-Identifier: MIT

package activation

import "math"

// scalarFn is the elementwise definition of one kind.
// df differentiates at the input; dy (optional) at the output.
type scalarFn struct {
	f  func(z float64, p params) float64
	df func(z float64, p params) float64
	dy func(y float64, p params) float64
}

const (
	// gelu tanh-approximation constants: √(2/π) and the cubic coefficient.
	geluScale = 0.7978845608028654
	geluCubic = 0.044715
)

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)

	return e / (1 + e)
}

// softplus is log(1+eᶻ) without overflow for large z.
func softplus(z float64) float64 {
	if z > 30 {
		return z
	}

	return math.Log1p(math.Exp(z))
}

func sech(z float64) float64 { return 1 / math.Cosh(z) }

func sign(z float64) float64 {
	switch {
	case z > 0:
		return 1
	case z < 0:
		return -1
	default:
		return 0
	}
}

func one(float64, params) float64  { return 1 }
func zero(float64, params) float64 { return 0 }

// scalarTable holds every elementwise kind. Softmax is handled jointly.
var scalarTable = map[Kind]scalarFn{
	Linear: {
		f:  func(z float64, _ params) float64 { return z },
		df: one,
		dy: one,
	},
	Sigmoid: {
		f: func(z float64, _ params) float64 { return sigmoid(z) },
		df: func(z float64, _ params) float64 {
			s := sigmoid(z)
			return s * (1 - s)
		},
		dy: func(y float64, _ params) float64 { return y * (1 - y) },
	},
	Swish: {
		f: func(z float64, _ params) float64 { return z * sigmoid(z) },
		df: func(z float64, _ params) float64 {
			s := sigmoid(z)
			return s + z*s*(1-s)
		},
	},
	Mish: {
		f: func(z float64, _ params) float64 { return z * math.Tanh(softplus(z)) },
		df: func(z float64, _ params) float64 {
			sp := softplus(z)
			sh := sech(sp)
			return math.Tanh(sp) + z*sh*sh*sigmoid(z)
		},
	},
	Sinc: {
		f: func(z float64, _ params) float64 {
			if z == 0 {
				return 1
			}
			return math.Sin(z) / z
		},
		df: func(z float64, _ params) float64 {
			if z == 0 {
				return 0
			}
			return (z*math.Cos(z) - math.Sin(z)) / (z * z)
		},
	},
	Softplus: {
		f:  func(z float64, _ params) float64 { return softplus(z) },
		df: func(z float64, _ params) float64 { return sigmoid(z) },
	},
	Softsign: {
		f: func(z float64, _ params) float64 { return z / (1 + math.Abs(z)) },
		df: func(z float64, _ params) float64 {
			d := 1 + math.Abs(z)
			return 1 / (d * d)
		},
	},
	GaussianCDF: {
		f:  func(z float64, _ params) float64 { return 0.5 * (1 + math.Erf(z/math.Sqrt2)) },
		df: func(z float64, _ params) float64 { return math.Exp(-z*z/2) / math.Sqrt(2*math.Pi) },
	},
	Cloglog: {
		f:  func(z float64, _ params) float64 { return 1 - math.Exp(-math.Exp(z)) },
		df: func(z float64, _ params) float64 { return math.Exp(z - math.Exp(z)) },
	},
	Logit: {
		f:  func(z float64, _ params) float64 { return math.Log(z / (1 - z)) },
		df: func(z float64, _ params) float64 { return 1 / (z * (1 - z)) },
	},
	UnitStep: {
		f: func(z float64, _ params) float64 {
			if z < 0 {
				return 0
			}
			return 1
		},
		df: zero,
		dy: zero,
	},
	ReLU: {
		f: func(z float64, _ params) float64 { return math.Max(0, z) },
		df: func(z float64, _ params) float64 {
			if z > 0 {
				return 1
			}
			return 0
		},
		dy: func(y float64, _ params) float64 {
			if y > 0 {
				return 1
			}
			return 0
		},
	},
	LeakyReLU: {
		f: func(z float64, p params) float64 {
			if z > 0 {
				return z
			}
			return p.alpha * z
		},
		df: func(z float64, p params) float64 {
			if z > 0 {
				return 1
			}
			return p.alpha
		},
	},
	ELU: {
		f: func(z float64, p params) float64 {
			if z >= 0 {
				return z
			}
			return p.alpha * math.Expm1(z)
		},
		df: func(z float64, p params) float64 {
			if z > 0 {
				return 1
			}
			return p.alpha * math.Exp(z)
		},
	},
	SELU: {
		f: func(z float64, p params) float64 {
			if z >= 0 {
				return p.lambda * z
			}
			return p.lambda * p.alpha * math.Expm1(z)
		},
		df: func(z float64, p params) float64 {
			if z > 0 {
				return p.lambda
			}
			return p.lambda * p.alpha * math.Exp(z)
		},
	},
	GELU: {
		f: func(z float64, _ params) float64 {
			return 0.5 * z * (1 + math.Tanh(geluScale*(z+geluCubic*z*z*z)))
		},
		df: func(z float64, _ params) float64 {
			u := geluScale * (z + geluCubic*z*z*z)
			sh := sech(u)
			return 0.5*(1+math.Tanh(u)) + 0.5*z*sh*sh*geluScale*(1+3*geluCubic*z*z)
		},
	},
	Sign: {
		f:  func(z float64, _ params) float64 { return sign(z) },
		df: zero,
		dy: zero,
	},
	Sin: {
		f:  func(z float64, _ params) float64 { return math.Sin(z) },
		df: func(z float64, _ params) float64 { return math.Cos(z) },
	},
	Sinh: {
		f:  func(z float64, _ params) float64 { return math.Sinh(z) },
		df: func(z float64, _ params) float64 { return math.Cosh(z) },
	},
	Cosh: {
		f:  func(z float64, _ params) float64 { return math.Cosh(z) },
		df: func(z float64, _ params) float64 { return math.Sinh(z) },
	},
	Tanh: {
		f: func(z float64, _ params) float64 { return math.Tanh(z) },
		df: func(z float64, _ params) float64 {
			t := math.Tanh(z)
			return 1 - t*t
		},
		dy: func(y float64, _ params) float64 { return 1 - y*y },
	},
	Csch: {
		f: func(z float64, _ params) float64 { return 1 / math.Sinh(z) },
		df: func(z float64, _ params) float64 {
			return -1 / (math.Sinh(z) * math.Tanh(z))
		},
	},
	Sech: {
		f:  func(z float64, _ params) float64 { return sech(z) },
		df: func(z float64, _ params) float64 { return -sech(z) * math.Tanh(z) },
	},
	Coth: {
		f: func(z float64, _ params) float64 { return 1 / math.Tanh(z) },
		df: func(z float64, _ params) float64 {
			s := math.Sinh(z)
			return -1 / (s * s)
		},
	},
	Arsinh: {
		f:  func(z float64, _ params) float64 { return math.Asinh(z) },
		df: func(z float64, _ params) float64 { return 1 / math.Sqrt(z*z+1) },
	},
	Arcosh: {
		f:  func(z float64, _ params) float64 { return math.Acosh(z) },
		df: func(z float64, _ params) float64 { return 1 / math.Sqrt(z*z-1) },
	},
	Artanh: {
		f:  func(z float64, _ params) float64 { return math.Atanh(z) },
		df: func(z float64, _ params) float64 { return 1 / (1 - z*z) },
	},
	Arcsch: {
		f: func(z float64, _ params) float64 { return math.Asinh(1 / z) },
		df: func(z float64, _ params) float64 {
			return -1 / (math.Abs(z) * math.Sqrt(1+z*z))
		},
	},
	Arsech: {
		f: func(z float64, _ params) float64 { return math.Acosh(1 / z) },
		df: func(z float64, _ params) float64 {
			return -1 / (z * math.Sqrt(1-z*z))
		},
	},
	Arcoth: {
		f:  func(z float64, _ params) float64 { return 0.5 * math.Log((z+1)/(z-1)) },
		df: func(z float64, _ params) float64 { return 1 / (1 - z*z) },
	},
}
