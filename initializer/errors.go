// SPDX-License-Identifier: MIT

package initializer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDistribution is returned for a Distribution outside the enumeration.
	ErrUnknownDistribution = errors.New("initializer: unknown distribution")
)

func initErrorf(op string, err error) error {
	return fmt.Errorf("initializer.%s: %w", op, err)
}
