// SPDX-License-Identifier: MIT

package transforms

import "fmt"

func transformsErrorf(op string, err error) error {
	return fmt.Errorf("transforms.%s: %w", op, err)
}
