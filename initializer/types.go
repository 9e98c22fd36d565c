// SPDX-License-Identifier: MIT

package initializer

import (
	"fmt"
	"strings"
)

// Distribution selects a sampling law. The zero value is Default.
type Distribution int

const (
	Default Distribution = iota
	XavierNormal
	XavierUniform
	HeNormal
	HeUniform
	LeCunNormal
	LeCunUniform
	Uniform

	distEnd
)

var distNames = [...]string{
	Default:       "Default",
	XavierNormal:  "XavierNormal",
	XavierUniform: "XavierUniform",
	HeNormal:      "HeNormal",
	HeUniform:     "HeUniform",
	LeCunNormal:   "LeCunNormal",
	LeCunUniform:  "LeCunUniform",
	Uniform:       "Uniform",
}

// Valid reports whether d is a declared distribution.
func (d Distribution) Valid() bool { return d >= Default && d < distEnd }

// String implements fmt.Stringer.
func (d Distribution) String() string {
	if !d.Valid() {
		return "Unknown"
	}

	return distNames[d]
}

// Distributions returns every declared Distribution in declaration order.
func Distributions() []Distribution {
	out := make([]Distribution, 0, int(distEnd))
	for d := Default; d < distEnd; d++ {
		out = append(out, d)
	}

	return out
}

// ParseDistribution resolves a case-insensitive distribution name.
func ParseDistribution(name string) (Distribution, error) {
	for d := Default; d < distEnd; d++ {
		if strings.EqualFold(distNames[d], name) {
			return d, nil
		}
	}

	return Default, initErrorf("ParseDistribution", fmt.Errorf("%q: %w", name, ErrUnknownDistribution))
}

// normal reports whether d samples from a Gaussian.
func (d Distribution) normal() bool {
	return d == XavierNormal || d == HeNormal || d == LeCunNormal
}
