// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a sample has no entries.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrTooFewSamples is returned by n−1 estimators on a single entry.
	ErrTooFewSamples = errors.New("stats: at least two samples required")

	// ErrDomain is returned when an argument lies outside the domain of the
	// statistic, or the result would not be finite.
	ErrDomain = errors.New("stats: argument outside the domain")
)

func statsErrorf(op string, err error) error {
	return fmt.Errorf("stats.%s: %w", op, err)
}
