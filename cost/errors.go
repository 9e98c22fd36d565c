// SPDX-License-Identifier: MIT

package cost

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned for a Kind outside the declared enumeration.
	ErrUnknownKind = errors.New("cost: unknown kind")

	// ErrEmptyInput is returned when ŷ and y hold no entries; every loss
	// averages over n and is undefined at n = 0.
	ErrEmptyInput = errors.New("cost: empty input")
)

func costErrorf(op string, k Kind, err error) error {
	return fmt.Errorf("%s(%s): %w", op, k, err)
}
