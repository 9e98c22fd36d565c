// SPDX-License-Identifier: MIT

package regularization

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects a penalty. The zero value is None.
type Kind int

const (
	None Kind = iota
	L1
	L2
	ElasticNet
	WeightClipping

	kindEnd
)

var kindNames = [...]string{
	None:           "None",
	L1:             "L1",
	L2:             "L2",
	ElasticNet:     "ElasticNet",
	WeightClipping: "WeightClipping",
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool { return k >= None && k < kindEnd }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return "Unknown"
	}

	return kindNames[k]
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(name string) (Kind, error) {
	for k := None; k < kindEnd; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}

	return None, regErrorf("ParseKind", fmt.Errorf("%q: %w", name, ErrUnknownKind))
}

// Config is a complete penalty description.
type Config struct {
	Kind     Kind
	Strength float64 // λ ≥ 0; the clipping bound for WeightClipping
	Ratio    float64 // ElasticNet L1 share α ∈ [0, 1]
}

// Validate reports the first invalid field of c.
// Errors: ErrUnknownKind, ErrInvalidStrength, ErrInvalidRatio.
func (c Config) Validate() error {
	if !c.Kind.Valid() {
		return regErrorf("Validate", ErrUnknownKind)
	}
	if math.IsNaN(c.Strength) || math.IsInf(c.Strength, 0) || c.Strength < 0 {
		return regErrorf("Validate", fmt.Errorf("strength %v: %w", c.Strength, ErrInvalidStrength))
	}
	switch c.Kind {
	case None:
		if c.Strength != 0 {
			return regErrorf("Validate", fmt.Errorf("strength %v with None: %w", c.Strength, ErrInvalidStrength))
		}
	case WeightClipping:
		if c.Strength == 0 {
			return regErrorf("Validate", fmt.Errorf("zero clipping bound: %w", ErrInvalidStrength))
		}
	case ElasticNet:
		if math.IsNaN(c.Ratio) || c.Ratio < 0 || c.Ratio > 1 {
			return regErrorf("Validate", fmt.Errorf("ratio %v: %w", c.Ratio, ErrInvalidRatio))
		}
	}

	return nil
}

// Active reports whether c changes the objective or the parameters at all.
func (c Config) Active() bool { return c.Kind != None && c.Strength > 0 }
