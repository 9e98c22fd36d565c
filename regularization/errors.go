// SPDX-License-Identifier: MIT

package regularization

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned for a Kind outside the declared enumeration.
	ErrUnknownKind = errors.New("regularization: unknown kind")

	// ErrInvalidStrength is returned for a negative or non-finite λ, a
	// non-zero λ with None, or λ = 0 with WeightClipping.
	ErrInvalidStrength = errors.New("regularization: invalid strength")

	// ErrInvalidRatio is returned when the ElasticNet ratio is outside [0, 1].
	ErrInvalidRatio = errors.New("regularization: ratio must be in [0, 1]")
)

func regErrorf(op string, err error) error {
	return fmt.Errorf("regularization.%s: %w", op, err)
}
