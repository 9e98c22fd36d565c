// SPDX-License-Identifier: MIT

package optim

import (
	"errors"
	"fmt"
)

var (
	// ErrNumericalDivergence is returned when a loss, gradient or proposed
	// parameter is NaN or ±Inf. The optimizer moves to Failed.
	ErrNumericalDivergence = errors.New("optim: numerical divergence")

	// ErrInvalidConfiguration is returned by Config.Validate, New and
	// NewUpdater for any fault detectable before the first step.
	ErrInvalidConfiguration = errors.New("optim: invalid configuration")

	// ErrTerminated is returned by Step and Run once the optimizer has
	// reached a terminal state.
	ErrTerminated = errors.New("optim: optimizer is in a terminal state")

	// ErrGradientMismatch is returned by CheckGradient when the analytic and
	// numeric gradients differ by more than the tolerance.
	ErrGradientMismatch = errors.New("optim: analytic gradient disagrees with finite differences")
)

func optimErrorf(op string, err error) error {
	return fmt.Errorf("optim.%s: %w", op, err)
}

// configErrorf marks cause as a configuration fault while keeping it matchable.
func configErrorf(op string, cause error) error {
	return fmt.Errorf("optim.%s: %w: %w", op, ErrInvalidConfiguration, cause)
}
