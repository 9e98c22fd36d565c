// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when there is nothing to score.
var ErrEmptyInput = errors.New("metrics: empty input")

func metricsErrorf(op string, err error) error {
	return fmt.Errorf("metrics.%s: %w", op, err)
}
