// SPDX-License-Identifier: MIT

package glm

import (
	"math/rand"

	"github.com/katalvlaran/lvml/initializer"
	"github.com/katalvlaran/lvml/matrix"
	"github.com/katalvlaran/lvml/optim"
)

// Fit trains spec on (x, y) from weights drawn with spec.Init and a U(0, 1)
// bias, both seeded by cfg.Seed, and returns the final parameters [w, b].
// A run that stops at MaxIterations is not an error; inspect Result.State.
// On failure the returned parameters are the last committed ones.
func Fit(x *matrix.Dense, y *matrix.Vector, spec Spec, cfg optim.Config, opts ...optim.Option) (*matrix.Vector, optim.Result, error) {
	p, err := New(x, y, spec)
	if err != nil {
		return nil, optim.Result{}, err
	}
	o, err := optim.New(cfg, p, opts...)
	if err != nil {
		return nil, optim.Result{}, glmErrorf(opFit, err)
	}

	src := initializer.WithRand(rand.New(rand.NewSource(cfg.Seed)))
	w, err := initializer.Vector(x.Cols(), spec.Init, src)
	if err != nil {
		return nil, optim.Result{}, glmErrorf(opFit, err)
	}
	params := matrix.NewVectorFrom(append(w.Data(), initializer.Bias(src)))

	res, err := o.Run(params)
	if err != nil {
		return params, res, glmErrorf(opFit, err)
	}

	return params, res, nil
}
