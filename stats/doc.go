// SPDX-License-Identifier: MIT

// Package stats provides descriptive statistics over matrix.Vector samples.
//
// Location and spread (Mean, Median, Mode, Range, Midrange, Variance, StdDev,
// AbsAvgDeviation), association (Covariance, Correlation, RSquared) and the
// simple-regression estimates B0/B1 delegate to gonum/stat where it has the
// routine. Variance and Covariance use the n−1 denominator.
//
// The mean family covers the classical and the parametric means:
//
//	WeightedMean, GeometricMean, HarmonicMean, RMS,
//	PowerMean(p), LehmerMean(p), WeightedLehmerMean(p), ContraharmonicMean
//
// and the two-argument means Heronian, Heinz, NeumanSandor, Stolarsky,
// Identric and Logarithmic.
//
// Every function validates its input before reading it. A sample outside a
// function's domain (a negative entry for GeometricMean, p = 0 where the
// formula divides by p, ...) fails with ErrDomain instead of returning NaN.
package stats
