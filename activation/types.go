// SPDX-License-Identifier: MIT

package activation

import "strings"

// Kind enumerates the supported activation functions.
type Kind int

const (
	Linear Kind = iota + 1
	Sigmoid
	Swish
	Mish
	Sinc
	Softmax
	Softplus
	Softsign
	GaussianCDF
	Cloglog
	Logit
	UnitStep
	ReLU
	LeakyReLU
	ELU
	SELU
	GELU
	Sign
	Sin
	Sinh
	Cosh
	Tanh
	Csch
	Sech
	Coth
	Arsinh
	Arcosh
	Artanh
	Arcsch
	Arsech
	Arcoth

	kindEnd // sentinel, keep last
)

var kindNames = [...]string{
	Linear:      "Linear",
	Sigmoid:     "Sigmoid",
	Swish:       "Swish",
	Mish:        "Mish",
	Sinc:        "Sinc",
	Softmax:     "Softmax",
	Softplus:    "Softplus",
	Softsign:    "Softsign",
	GaussianCDF: "GaussianCDF",
	Cloglog:     "Cloglog",
	Logit:       "Logit",
	UnitStep:    "UnitStep",
	ReLU:        "ReLU",
	LeakyReLU:   "LeakyReLU",
	ELU:         "ELU",
	SELU:        "SELU",
	GELU:        "GELU",
	Sign:        "Sign",
	Sin:         "Sin",
	Sinh:        "Sinh",
	Cosh:        "Cosh",
	Tanh:        "Tanh",
	Csch:        "Csch",
	Sech:        "Sech",
	Coth:        "Coth",
	Arsinh:      "Arsinh",
	Arcosh:      "Arcosh",
	Artanh:      "Artanh",
	Arcsch:      "Arcsch",
	Arsech:      "Arsech",
	Arcoth:      "Arcoth",
}

// Kinds returns every declared Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindEnd)-1)
	for k := Linear; k < kindEnd; k++ {
		out = append(out, k)
	}

	return out
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool { return k >= Linear && k < kindEnd }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return "Unknown"
	}

	return kindNames[k]
}

// ParseKind resolves a case-insensitive kind name ("relu", "Sigmoid", ...).
func ParseKind(name string) (Kind, error) {
	for k := Linear; k < kindEnd; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}

	return 0, activationErrorf("ParseKind", 0, ErrUnknownKind)
}

// Source tells which value a kind's derivative is expressed in.
type Source int

const (
	// FromInput derivatives are evaluated at the pre-activation z.
	FromInput Source = iota + 1
	// FromOutput derivatives are evaluated at the activation y = f(z).
	FromOutput
)

// DerivativeSource reports the preferred derivative form of k.
func (k Kind) DerivativeSource() Source {
	switch k {
	case Linear, Sigmoid, Softmax, Tanh, UnitStep, ReLU, Sign:
		return FromOutput
	default:
		return FromInput
	}
}
