// SPDX-License-Identifier: MIT

package transforms

import "math"

const panicShiftInvalid = "transforms: WithLevelShift: shift must be finite"

// Option configures the 2-D transforms.
type Option func(*options)

type options struct {
	shift float64
}

// WithLevelShift subtracts s from every sample before DCT2D and adds it back
// after IDCT2D. Panics on a non-finite s.
func WithLevelShift(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		panic(panicShiftInvalid)
	}

	return func(o *options) { o.shift = s }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
