// SPDX-License-Identifier: MIT

package metrics

import (
	"math"

	"github.com/katalvlaran/lvml/matrix"
	"gonum.org/v1/gonum/stat"
)

const (
	opPerformance       = "Performance"
	opPerformanceMatrix = "PerformanceMatrix"
	opBinary            = "Binary"
	opR2                = "R2"
	opSummary           = "Summary"

	// Threshold separates the positive class in Binary.
	Threshold = 0.5
)

// pair validates a prediction/target pair and returns their backing slices.
func pair(op string, yHat, y *matrix.Vector) ([]float64, []float64, error) {
	if err := matrix.ValidateSameLen(yHat, y); err != nil {
		return nil, nil, metricsErrorf(op, err)
	}
	if y.Len() == 0 {
		return nil, nil, metricsErrorf(op, ErrEmptyInput)
	}

	return yHat.Data(), y.Data(), nil
}

// Performance returns the fraction of i with round(ŷᵢ) == yᵢ.
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch, ErrEmptyInput.
func Performance(yHat, y *matrix.Vector) (float64, error) {
	p, t, err := pair(opPerformance, yHat, y)
	if err != nil {
		return 0, err
	}
	var correct int
	for i := range p {
		if math.Round(p[i]) == t[i] {
			correct++
		}
	}

	return float64(correct) / float64(len(p)), nil
}

// PerformanceMatrix returns the fraction of rows whose every rounded entry
// matches the target row.
func PerformanceMatrix(yHat, y *matrix.Dense) (float64, error) {
	if yHat == nil || y == nil {
		return 0, metricsErrorf(opPerformanceMatrix, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateBinarySameShape(yHat, y); err != nil {
		return 0, metricsErrorf(opPerformanceMatrix, err)
	}
	rows, cols := y.Shape()
	if rows == 0 {
		return 0, metricsErrorf(opPerformanceMatrix, ErrEmptyInput)
	}
	p, t := yHat.Data(), y.Data()
	var (
		correct, i, j int
		ok            bool
	)
	for i = 0; i < rows; i++ {
		ok = true
		for j = 0; j < cols && ok; j++ {
			ok = math.Round(p[i*cols+j]) == t[i*cols+j]
		}
		if ok {
			correct++
		}
	}

	return float64(correct) / float64(rows), nil
}

// Confusion counts binary outcomes.
type Confusion struct {
	TP, FP, TN, FN int
}

// Binary thresholds yHat at Threshold and tallies it against y.
func Binary(yHat, y *matrix.Vector) (Confusion, error) {
	p, t, err := pair(opBinary, yHat, y)
	if err != nil {
		return Confusion{}, err
	}
	var c Confusion
	for i := range p {
		switch pos, want := p[i] >= Threshold, t[i] > Threshold; {
		case pos && want:
			c.TP++
		case pos:
			c.FP++
		case want:
			c.FN++
		default:
			c.TN++
		}
	}

	return c, nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}

// Total is the number of tallied samples.
func (c Confusion) Total() int { return c.TP + c.FP + c.TN + c.FN }

// Accuracy is (TP+TN)/Total.
func (c Confusion) Accuracy() float64 { return ratio(c.TP+c.TN, c.Total()) }

// Precision is TP/(TP+FP).
func (c Confusion) Precision() float64 { return ratio(c.TP, c.TP+c.FP) }

// Recall is TP/(TP+FN).
func (c Confusion) Recall() float64 { return ratio(c.TP, c.TP+c.FN) }

// F1 is the harmonic mean of Precision and Recall.
func (c Confusion) F1() float64 { return ratio(2*c.TP, 2*c.TP+c.FP+c.FN) }

// Accuracy is Binary(yHat, y).Accuracy().
func Accuracy(yHat, y *matrix.Vector) (float64, error) {
	c, err := Binary(yHat, y)
	return c.Accuracy(), err
}

// Precision is Binary(yHat, y).Precision().
func Precision(yHat, y *matrix.Vector) (float64, error) {
	c, err := Binary(yHat, y)
	return c.Precision(), err
}

// Recall is Binary(yHat, y).Recall().
func Recall(yHat, y *matrix.Vector) (float64, error) {
	c, err := Binary(yHat, y)
	return c.Recall(), err
}

// F1 is Binary(yHat, y).F1().
func F1(yHat, y *matrix.Vector) (float64, error) {
	c, err := Binary(yHat, y)
	return c.F1(), err
}

// R2 returns 1 − SS_res/SS_tot of the estimates yHat for the targets y.
// A constant y yields NaN or −Inf.
func R2(yHat, y *matrix.Vector) (float64, error) {
	p, t, err := pair(opR2, yHat, y)
	if err != nil {
		return 0, err
	}

	return stat.RSquaredFrom(p, t, nil), nil
}

// Summary returns the mean and the sample (n−1) standard deviation of v.
// A single entry has std 0.
func Summary(v *matrix.Vector) (mean, std float64, err error) {
	if err = matrix.ValidateVectorNotNil(v); err != nil {
		return 0, 0, metricsErrorf(opSummary, err)
	}
	if v.Len() == 0 {
		return 0, 0, metricsErrorf(opSummary, ErrEmptyInput)
	}
	if v.Len() == 1 {
		return v.Data()[0], 0, nil
	}
	mean, std = stat.MeanStdDev(v.Data(), nil)

	return mean, std, nil
}
