// SPDX-License-Identifier: MIT

package activation

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned for a Kind outside the declared enumeration.
	ErrUnknownKind = errors.New("activation: unknown kind")

	// ErrNeedsInput is returned by DerivativeFromOutput for kinds whose
	// derivative cannot be recovered from the forward output alone.
	ErrNeedsInput = errors.New("activation: derivative requires the raw input")

	// ErrJointKind is returned by ForwardScalar for Softmax, which is only
	// defined over a whole vector or row.
	ErrJointKind = errors.New("activation: kind is not elementwise")
)

// activationErrorf tags err with the operation and kind that produced it.
func activationErrorf(op string, k Kind, err error) error {
	return fmt.Errorf("%s(%s): %w", op, k, err)
}
