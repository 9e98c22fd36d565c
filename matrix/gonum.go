// SPDX-License-Identifier: MIT

// Package matrix - interoperability with gonum/mat and the SVD facade.
package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const opToGonum = "ToGonum"

// ToGonum copies m into a *mat.Dense.
// Errors: ErrEmpty for 0×n / n×0 inputs (gonum has no empty dense matrix).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToGonum, ErrEmpty)
	}

	return mat.NewDense(m.r, m.c, m.Raw()), nil
}

// FromGonum copies any gonum matrix into a new Dense.
func FromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	out := newDense(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}

// SVD computes the thin singular value decomposition A = U·diag(S)·Vᵀ by
// delegating to gonum's LAPACK-backed factorization.
// For an r×c input with k = min(r,c): U is r×k, S has length k (descending), V is c×k.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNotConverged.
func SVD(m Matrix) (U *Dense, S *Vector, V *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}
	g, err := d.ToGonum()
	if err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDThin); !ok {
		return nil, nil, nil, matrixErrorf(opSVD, ErrNotConverged)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return FromGonum(&u), &Vector{data: svd.Values(nil), validateNaNInf: DefaultValidateNaNInf}, FromGonum(&v), nil
}
