// SPDX-License-Identifier: MIT

package numerical

import (
	"github.com/katalvlaran/lvml/matrix"
)

const (
	opClassify = "ClassifyCriticalPoint"

	eigenTol    = 1e-12
	eigenSweeps = 64
)

// ClassifyCriticalPoint applies the second partial derivative test to f at x,
// which should be a stationary point. The Hessian is approximated with
// Hessian(f, x, opts...) and its eigenvalues λ are compared against
// CurvatureTolerance:
//
//	all λ > tol              Minimum
//	all λ < −tol             Maximum
//	some > tol, some < −tol  Saddle
//	otherwise                Inconclusive
//
// Errors: as Hessian, matrix.ErrNotConverged from the eigen solver.
func ClassifyCriticalPoint(f MultiFunc, x *matrix.Vector, opts ...Option) (CriticalPoint, error) {
	h, err := Hessian(f, x, opts...)
	if err != nil {
		return 0, err
	}
	n := h.Rows()
	vals, _, err := matrix.Eigen(h, eigenTol, eigenSweeps*n*n+1)
	if err != nil {
		return 0, numericalErrorf(opClassify, err)
	}
	var pos, neg int
	for _, l := range vals.Data() {
		switch {
		case l > CurvatureTolerance:
			pos++
		case l < -CurvatureTolerance:
			neg++
		}
	}
	switch {
	case pos == n:
		return Minimum, nil
	case neg == n:
		return Maximum, nil
	case pos > 0 && neg > 0:
		return Saddle, nil
	}

	return Inconclusive, nil
}
