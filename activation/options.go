// SPDX-License-Identifier: MIT

package activation

import "math"

const (
	// DefaultLeakyAlpha is the negative-side slope of LeakyReLU.
	DefaultLeakyAlpha = 0.01
	// DefaultELUAlpha is the saturation value of ELU for z → −∞.
	DefaultELUAlpha = 1.0
	// DefaultSELUAlpha and DefaultSELULambda are the self-normalizing constants.
	DefaultSELUAlpha  = 1.6732632423543772
	DefaultSELULambda = 1.0507009873554805
)

const panicParamInvalid = "activation: parameter must be finite"

// Option configures parameterized kinds.
type Option func(*Options)

// Options holds resolved parameters. Unset values fall back to per-kind defaults.
type Options struct {
	alpha, lambda       float64
	alphaSet, lambdaSet bool
}

// WithAlpha overrides α for LeakyReLU, ELU and SELU. Panics on NaN/Inf.
func WithAlpha(a float64) Option {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		panic(panicParamInvalid)
	}

	return func(o *Options) { o.alpha, o.alphaSet = a, true }
}

// WithLambda overrides the SELU scale λ. Panics on NaN/Inf.
func WithLambda(l float64) Option {
	if math.IsNaN(l) || math.IsInf(l, 0) {
		panic(panicParamInvalid)
	}

	return func(o *Options) { o.lambda, o.lambdaSet = l, true }
}

// params is the per-call resolved parameter pair.
type params struct{ alpha, lambda float64 }

// resolve applies user options over the defaults of kind k.
func resolve(k Kind, opts []Option) params {
	var o Options
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}
	p := params{lambda: 1}
	switch k {
	case LeakyReLU:
		p.alpha = DefaultLeakyAlpha
	case ELU:
		p.alpha = DefaultELUAlpha
	case SELU:
		p.alpha, p.lambda = DefaultSELUAlpha, DefaultSELULambda
	}
	if o.alphaSet {
		p.alpha = o.alpha
	}
	if o.lambdaSet {
		p.lambda = o.lambda
	}

	return p
}
