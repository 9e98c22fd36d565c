// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column/row statistics used for data preparation before
//     training (centering, z-scoring, normalization, covariance, correlation).
//   - Build every transform as a composition over canonical kernels
//     (Mul/Transpose/Scale and the row/column broadcasts).
//
// Exposed API:
//   - RowSums(X), ColSums(X)  -> *Vector
//   - CenterColumns(X)        -> (Xc, means)         // subtract per-column mean
//   - CenterRows(X)           -> (Xc, means)         // subtract per-row mean
//   - ZScoreColumns(X)        -> (Z, means, stds)    // sample std; std=0 → zeroed column
//   - NormalizeRowsL1(X)      -> (Y, norms)          // zero rows unchanged
//   - NormalizeRowsL2(X)      -> (Y, norms)          // zero rows unchanged
//   - Covariance(X)           -> (Cov, means)        // (Xcᵀ Xc)/(r-1)
//   - Correlation(X)          -> (Corr, means, stds) // Pearson via z-scoring
//
// Determinism:
//   - Fixed i→j traversal for all explicit loops.
//   - Zero-size matrices are legal: centering and normalization return an
//     empty copy with zero-length statistics.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opRowSums         = "RowSums"
	opColSums         = "ColSums"
	opCenterColumns   = "CenterColumns"
	opCenterRows      = "CenterRows"
	opZScoreColumns   = "ZScoreColumns"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opNormalizeRowsL2 = "NormalizeRowsL2"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
)

// RowSums returns s[i] = Σⱼ X[i,j].
func RowSums(x Matrix) (*Vector, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	d, err := toDense(x)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := newVec(d.r)
	for i := 0; i < d.r; i++ {
		out.data[i] = floats.Sum(d.data[i*d.c : (i+1)*d.c])
	}

	return out, nil
}

// ColSums returns s[j] = Σᵢ X[i,j].
func ColSums(x Matrix) (*Vector, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	d, err := toDense(x)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	out := newVec(d.c)
	for i := 0; i < d.r; i++ {
		floats.Add(out.data, d.data[i*d.c:(i+1)*d.c])
	}

	return out, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X; handle zero rows (means stay 0).
//   - Stage 2: ColSums / r → means.
//   - Stage 3: SubRowVector(X, means) builds the centered copy.
//
// Complexity: Time O(r*c), Space O(r*c).
func CenterColumns(x Matrix) (*Dense, *Vector, error) {
	means, err := ColSums(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	if r := x.Rows(); r > 0 {
		means.ScaleInPlace(1 / float64(r))
	}
	xc, err := SubRowVector(x, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return xc, means, nil
}

// CenterRows subtracts the per-row mean from every element.
func CenterRows(x Matrix) (*Dense, *Vector, error) {
	means, err := RowSums(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	if c := x.Cols(); c > 0 {
		means.ScaleInPlace(1 / float64(c))
	}
	xc, err := SubColVector(x, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	return xc, means, nil
}

// ZScoreColumns standardizes every column to mean 0 and sample std 1.
// A constant column (std == 0) is zeroed rather than divided by zero.
// Errors: ErrNilMatrix; ErrShapeMismatch when c > 0 and r < 2.
func ZScoreColumns(x Matrix) (*Dense, *Vector, *Vector, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, nil, matrixErrorf(opZScoreColumns, err)
	}
	r, c := x.Rows(), x.Cols()
	if c > 0 && r < 2 {
		return nil, nil, nil, matrixErrorf(opZScoreColumns, ErrShapeMismatch)
	}
	xc, means, err := CenterColumns(x)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opZScoreColumns, err)
	}

	stds := newVec(c)
	invStd := newVec(c)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = xc.data[i*c+j]
			stds.data[j] += v * v
		}
	}
	for j = 0; j < c; j++ {
		stds.data[j] = math.Sqrt(stds.data[j] / float64(r-1))
		if stds.data[j] > 0 {
			invStd.data[j] = 1 / stds.data[j]
		}
	}
	z, err := MulRowVector(xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opZScoreColumns, err)
	}

	return z, means, stds, nil
}

// normalizeRows scales each non-zero row by 1/‖row‖ (p = 1 or 2).
func normalizeRows(x Matrix, p float64, tag string) (*Dense, *Vector, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	d, err := toDense(x)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	out := d.Copy()
	norms := newVec(d.r)
	var row []float64
	for i := 0; i < d.r; i++ {
		row = out.data[i*d.c : (i+1)*d.c]
		if len(row) == 0 {
			continue
		}
		norms.data[i] = floats.Norm(row, p)
		if norms.data[i] > 0 {
			floats.Scale(1/norms.data[i], row)
		}
	}

	return out, norms, nil
}

// NormalizeRowsL1 scales every row to unit L1 norm; zero rows are unchanged.
func NormalizeRowsL1(x Matrix) (*Dense, *Vector, error) {
	return normalizeRows(x, 1, opNormalizeRowsL1)
}

// NormalizeRowsL2 scales every row to unit L2 norm; zero rows are unchanged.
func NormalizeRowsL2(x Matrix) (*Dense, *Vector, error) {
	return normalizeRows(x, 2, opNormalizeRowsL2)
}

// Covariance returns the sample covariance of the columns, (Xcᵀ Xc)/(r-1),
// and the column means.
// Errors: ErrNilMatrix; ErrShapeMismatch when c > 0 and r < 2.
// A 0-column input yields a 0×0 covariance.
func Covariance(x Matrix) (*Dense, *Vector, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := x.Rows(), x.Cols()
	if c == 0 {
		return newDense(0, 0), newVec(0), nil
	}
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrShapeMismatch)
	}
	xc, means, err := CenterColumns(x)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	g, err := gram(xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	g.ScaleInPlace(1 / float64(r-1))

	return g, means, nil
}

// Correlation returns the Pearson correlation of the columns with the means
// and sample stds. A constant column correlates 0 with everything (its
// diagonal entry is 0 as well).
func Correlation(x Matrix) (*Dense, *Vector, *Vector, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := x.Rows(), x.Cols()
	if c == 0 {
		return newDense(0, 0), newVec(0), newVec(0), nil
	}
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrShapeMismatch)
	}
	z, means, stds, err := ZScoreColumns(x)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	g, err := gram(z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	g.ScaleInPlace(1 / float64(r-1))

	return g, means, stds, nil
}

// gram returns XᵀX.
func gram(x *Dense) (*Dense, error) {
	xt, err := Transpose(x)
	if err != nil {
		return nil, err
	}

	return Mul(xt, x)
}
