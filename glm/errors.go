// SPDX-License-Identifier: MIT

package glm

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyData is returned when X has no rows.
	ErrEmptyData = errors.New("glm: empty data")

	// ErrUnsupportedActivation is returned for joint activations such as Softmax.
	ErrUnsupportedActivation = errors.New("glm: activation is not elementwise")
)

func glmErrorf(op string, err error) error {
	return fmt.Errorf("glm.%s: %w", op, err)
}
