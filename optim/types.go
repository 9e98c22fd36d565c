// SPDX-License-Identifier: MIT

package optim

import (
	"fmt"
	"strings"
)

// State is the lifecycle position of an Optimizer.
type State int

const (
	Initialized State = iota
	Training
	Converged
	MaxIterationsReached
	Failed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Initialized:
		return "Initialized"
	case Training:
		return "Training"
	case Converged:
		return "Converged"
	case MaxIterationsReached:
		return "MaxIterationsReached"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further Step is permitted.
func (s State) Terminal() bool {
	return s == Converged || s == MaxIterationsReached || s == Failed
}

// Rule selects the parameter update formula. The zero value resolves to Plain.
type Rule int

const (
	Plain Rule = iota + 1
	Momentum
	Nesterov
	Adagrad
	Adadelta
	RMSProp
	Adam
	Adamax
	Nadam
	AMSGrad

	ruleEnd
)

var ruleNames = [...]string{
	Plain:    "Plain",
	Momentum: "Momentum",
	Nesterov: "Nesterov",
	Adagrad:  "Adagrad",
	Adadelta: "Adadelta",
	RMSProp:  "RMSProp",
	Adam:     "Adam",
	Adamax:   "Adamax",
	Nadam:    "Nadam",
	AMSGrad:  "AMSGrad",
}

// Valid reports whether r is a declared rule.
func (r Rule) Valid() bool { return r >= Plain && r < ruleEnd }

// String implements fmt.Stringer.
func (r Rule) String() string {
	if !r.Valid() {
		return "Unknown"
	}

	return ruleNames[r]
}

// Rules returns every declared Rule in declaration order.
func Rules() []Rule {
	out := make([]Rule, 0, int(ruleEnd)-1)
	for r := Plain; r < ruleEnd; r++ {
		out = append(out, r)
	}

	return out
}

// ParseRule resolves a case-insensitive rule name ("adam", "RMSProp", ...).
func ParseRule(name string) (Rule, error) {
	for r := Plain; r < ruleEnd; r++ {
		if strings.EqualFold(ruleNames[r], name) {
			return r, nil
		}
	}

	return 0, configErrorf("ParseRule", fmt.Errorf("unknown rule %q", name))
}

// StepInfo describes one completed iteration.
type StepInfo struct {
	Iteration int     // 1-based
	Loss      float64 // regularized loss at the start of the iteration
	Delta     float64 // |Loss − previous Loss|; +Inf on the first iteration
	State     State   // state after the iteration
}

// Result summarizes a Run.
type Result struct {
	State      State
	Iterations int
	Loss       float64   // loss of the last completed iteration
	History    []float64 // loss per iteration, oldest first
}
