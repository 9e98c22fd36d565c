// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvml/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	opMean            = "Mean"
	opMedian          = "Median"
	opMode            = "Mode"
	opRange           = "Range"
	opMidrange        = "Midrange"
	opAbsAvgDeviation = "AbsAvgDeviation"
	opVariance        = "Variance"
	opStdDev          = "StdDev"
	opCovariance      = "Covariance"
	opCorrelation     = "Correlation"
	opRSquared        = "RSquared"
	opB0              = "B0"
	opB1              = "B1"
	opChebyshev       = "ChebyshevBound"
)

// sample returns the backing slice of a non-empty v.
func sample(op string, v *matrix.Vector, minLen int) ([]float64, error) {
	if err := matrix.ValidateVectorNotNil(v); err != nil {
		return nil, statsErrorf(op, err)
	}
	switch {
	case v.Len() == 0:
		return nil, statsErrorf(op, ErrEmptyInput)
	case v.Len() < minLen:
		return nil, statsErrorf(op, fmt.Errorf("%d < %d: %w", v.Len(), minLen, ErrTooFewSamples))
	}

	return v.Data(), nil
}

// paired validates two equal-length samples of at least minLen entries.
func paired(op string, x, y *matrix.Vector, minLen int) ([]float64, []float64, error) {
	if err := matrix.ValidateSameLen(x, y); err != nil {
		return nil, nil, statsErrorf(op, err)
	}
	xs, err := sample(op, x, minLen)
	if err != nil {
		return nil, nil, err
	}

	return xs, y.Data(), nil
}

// sorted returns an ascending copy of xs.
func sorted(xs []float64) []float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)

	return s
}

// result rejects a non-finite value with ErrDomain.
func result(op string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, statsErrorf(op, ErrDomain)
	}

	return v, nil
}

// Mean returns the arithmetic mean of v.
func Mean(v *matrix.Vector) (float64, error) {
	xs, err := sample(opMean, v, 1)
	if err != nil {
		return 0, err
	}

	return stat.Mean(xs, nil), nil
}

// Median returns the middle order statistic; for an even length, the mean of
// the two middle entries.
func Median(v *matrix.Vector) (float64, error) {
	xs, err := sample(opMedian, v, 1)
	if err != nil {
		return 0, err
	}
	s := sorted(xs)
	n := len(s)
	if n%2 == 1 {
		return s[n/2], nil
	}

	return (s[n/2-1] + s[n/2]) / 2, nil
}

// Mode returns every value that occurs most often, ascending.
// A sample of distinct values returns all of them.
func Mode(v *matrix.Vector) ([]float64, error) {
	xs, err := sample(opMode, v, 1)
	if err != nil {
		return nil, err
	}
	s := sorted(xs)
	var (
		modes     []float64
		best, run int
		i         int
	)
	for i = 0; i < len(s); i += run {
		run = 1
		for i+run < len(s) && s[i+run] == s[i] {
			run++
		}
		switch {
		case run > best:
			best = run
			modes = append(modes[:0], s[i])
		case run == best:
			modes = append(modes, s[i])
		}
	}

	return modes, nil
}

// Range returns max(v) − min(v).
func Range(v *matrix.Vector) (float64, error) {
	xs, err := sample(opRange, v, 1)
	if err != nil {
		return 0, err
	}

	return floats.Max(xs) - floats.Min(xs), nil
}

// Midrange returns (max(v) + min(v)) / 2.
func Midrange(v *matrix.Vector) (float64, error) {
	xs, err := sample(opMidrange, v, 1)
	if err != nil {
		return 0, err
	}

	return (floats.Max(xs) + floats.Min(xs)) / 2, nil
}

// AbsAvgDeviation returns the mean absolute deviation about the mean.
func AbsAvgDeviation(v *matrix.Vector) (float64, error) {
	xs, err := sample(opAbsAvgDeviation, v, 1)
	if err != nil {
		return 0, err
	}
	mu := stat.Mean(xs, nil)
	var sum float64
	for _, x := range xs {
		sum += math.Abs(x - mu)
	}

	return sum / float64(len(xs)), nil
}

// Variance returns the unbiased (n−1) sample variance.
// Errors: ErrTooFewSamples for a single entry.
func Variance(v *matrix.Vector) (float64, error) {
	xs, err := sample(opVariance, v, 2)
	if err != nil {
		return 0, err
	}

	return stat.Variance(xs, nil), nil
}

// StdDev is the square root of Variance.
func StdDev(v *matrix.Vector) (float64, error) {
	xs, err := sample(opStdDev, v, 2)
	if err != nil {
		return 0, err
	}

	return stat.StdDev(xs, nil), nil
}

// Covariance returns the unbiased sample covariance of x and y.
func Covariance(x, y *matrix.Vector) (float64, error) {
	xs, ys, err := paired(opCovariance, x, y, 2)
	if err != nil {
		return 0, err
	}

	return stat.Covariance(xs, ys, nil), nil
}

// Correlation returns Pearson's r.
// Errors: ErrDomain when either sample is constant.
func Correlation(x, y *matrix.Vector) (float64, error) {
	xs, ys, err := paired(opCorrelation, x, y, 2)
	if err != nil {
		return 0, err
	}

	return result(opCorrelation, stat.Correlation(xs, ys, nil))
}

// RSquared returns r², the share of the variance of y explained by a line in x.
func RSquared(x, y *matrix.Vector) (float64, error) {
	r, err := Correlation(x, y)
	if err != nil {
		return 0, statsErrorf(opRSquared, err)
	}

	return r * r, nil
}

// line fits y = b0 + b1·x by least squares.
func line(op string, x, y *matrix.Vector) (b0, b1 float64, err error) {
	xs, ys, err := paired(op, x, y, 2)
	if err != nil {
		return 0, 0, err
	}
	if floats.Max(xs) == floats.Min(xs) {
		return 0, 0, statsErrorf(op, fmt.Errorf("constant x: %w", ErrDomain))
	}
	b0, b1 = stat.LinearRegression(xs, ys, nil, false)

	return b0, b1, nil
}

// B0 returns the intercept of the least-squares line through (x, y).
// Errors: ErrDomain when x is constant.
func B0(x, y *matrix.Vector) (float64, error) {
	b0, _, err := line(opB0, x, y)

	return b0, err
}

// B1 returns the slope cov(x, y) / var(x) of the least-squares line.
func B1(x, y *matrix.Vector) (float64, error) {
	_, b1, err := line(opB1, x, y)

	return b1, err
}

// ChebyshevBound returns the lower bound 1 − 1/k² on the probability that a
// sample lies within k standard deviations of its mean, for any distribution.
// The bound is 0 for k ≤ 1. Errors: ErrDomain when k ≤ 0 or k is not finite.
func ChebyshevBound(k float64) (float64, error) {
	if k <= 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		return 0, statsErrorf(opChebyshev, ErrDomain)
	}

	return math.Max(0, 1-1/(k*k)), nil
}
