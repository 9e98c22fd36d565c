// SPDX-License-Identifier: MIT

package cost

import "strings"

// Kind enumerates the supported loss functions.
type Kind int

const (
	MSE Kind = iota + 1
	RMSE
	MAE
	MBE
	LogLoss
	CrossEntropy
	Huber
	Hinge
	Wasserstein

	kindEnd
)

var kindNames = [...]string{
	MSE:          "MSE",
	RMSE:         "RMSE",
	MAE:          "MAE",
	MBE:          "MBE",
	LogLoss:      "LogLoss",
	CrossEntropy: "CrossEntropy",
	Huber:        "Huber",
	Hinge:        "Hinge",
	Wasserstein:  "Wasserstein",
}

// Kinds returns every declared Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindEnd)-1)
	for k := MSE; k < kindEnd; k++ {
		out = append(out, k)
	}

	return out
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool { return k >= MSE && k < kindEnd }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return "Unknown"
	}

	return kindNames[k]
}

// ParseKind resolves a case-insensitive kind name ("mse", "LogLoss", ...).
func ParseKind(name string) (Kind, error) {
	for k := MSE; k < kindEnd; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}

	return 0, costErrorf("ParseKind", 0, ErrUnknownKind)
}
