// SPDX-License-Identifier: MIT

package optim

import (
	"io"
	"log/slog"
)

// Option configures an Optimizer.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	onStep        func(StepInfo)
	onStateChange func(from, to State)
}

// WithLogger routes lifecycle logs to l. A nil l keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnStep registers fn to run after every completed iteration.
func WithOnStep(fn func(StepInfo)) Option {
	return func(o *options) { o.onStep = fn }
}

// WithOnStateChange registers fn to run on every state transition.
func WithOnStateChange(fn func(from, to State)) Option {
	return func(o *options) { o.onStateChange = fn }
}

func gatherOptions(user []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
