// SPDX-License-Identifier: MIT

package numerical

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunction is returned when the function argument is nil.
	ErrNilFunction = errors.New("numerical: nil function")

	// ErrEmptyInput is returned for a zero-length evaluation point.
	ErrEmptyInput = errors.New("numerical: empty input")

	// ErrInvalidArgument covers scalar arguments outside their domain
	// (non-positive iteration budget or step, unsupported order, ...).
	ErrInvalidArgument = errors.New("numerical: invalid argument")

	// ErrNotFinite is returned when an approximation or iterate is NaN or ±Inf.
	ErrNotFinite = errors.New("numerical: non-finite value")

	// ErrDegenerate is returned when an iteration divides by a zero
	// derivative or by coincident function values.
	ErrDegenerate = errors.New("numerical: zero derivative or coincident values")

	// ErrNotConverged is returned when a root finder exhausts its iterations.
	ErrNotConverged = errors.New("numerical: iteration did not converge")
)

func numericalErrorf(op string, err error) error {
	return fmt.Errorf("numerical.%s: %w", op, err)
}
