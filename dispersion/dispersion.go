// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dispersion provides uncommon measures of statistical
// dispersion: robust and normalized alternatives to the standard
// deviation.
//
// Every measure is non-negative on any sample it is defined for.
// Distance-based measures (absolute deviations and pairwise
// differences) are exactly zero on a constant sample, not a small
// float left over from round-off. Ratio measures return NaN when
// their denominator is exactly zero.
package dispersion

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/aclements/go-obscurestats/internal/lmom"
	"github.com/aclements/go-obscurestats/sample"
)

var nan = math.NaN()

// DefaultQuantile is the default for QuantileAbsDeviation: the
// probability mass of one standard deviation around the mean of a
// Gaussian, which makes the deviation comparable to a standard
// deviation for normal data.
const DefaultQuantile = 0.682689492137086

// madConsistency rescales the median absolute deviation to estimate
// the standard deviation of Gaussian data (1/Phi^-1(3/4)).
const madConsistency = 1.482602218505602

// constant reports whether all sample values are equal. Estimators
// short-circuit on it so constant samples produce exact zeros instead
// of round-off residue.
func constant(s sample.Sample) bool {
	return floats.Min(s.Xs) == floats.Max(s.Xs)
}

// MedianAbsDeviation returns the median of the absolute deviations
// from the median.
func MedianAbsDeviation(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	if constant(s) {
		return 0
	}
	return sample.Median(absDeviations(s))
}

// QuantileAbsDeviation returns the q-th quantile of the absolute
// deviations from the median, q in (0, 1). With q = DefaultQuantile it
// is a robust drop-in for the standard deviation.
func QuantileAbsDeviation(s sample.Sample, q float64) (float64, error) {
	if err := sample.CheckProb("q", q); err != nil {
		return nan, err
	}
	if !s.Defined(2) {
		return nan, nil
	}
	if constant(s) {
		return 0, nil
	}
	return sample.QuantileOf(absDeviations(s), q), nil
}

func absDeviations(s sample.Sample) []float64 {
	med := s.Quantile(0.5)
	ds := make([]float64, s.Len())
	for i, x := range s.Xs {
		ds[i] = math.Abs(x - med)
	}
	return ds
}

// ShamosEstimator returns the Shamos scale estimate: the median of the
// pairwise absolute differences |x_i - x_j|, i < j. Quadratic time and
// space.
func ShamosEstimator(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	if constant(s) {
		return 0
	}
	n := s.Len()
	ds := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ds = append(ds, math.Abs(s.Xs[i]-s.Xs[j]))
		}
	}
	return sample.Median(ds)
}

// GiniMeanDifference returns the mean of the pairwise absolute
// differences |x_i - x_j| over distinct pairs.
func GiniMeanDifference(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	if constant(s) {
		return 0
	}
	n := s.Len()
	var sum float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum += math.Abs(s.Xs[i] - s.Xs[j])
		}
	}
	return 2 * sum / (float64(n) * float64(n-1))
}

// QuartileCoefDispersion returns (Q3-Q1)/(Q3+Q1), a unitless relative
// spread. It is intended for positive-valued samples; NaN when
// Q3+Q1 is zero.
func QuartileCoefDispersion(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	qs := s.Quantiles(0.25, 0.75)
	den := qs[1] + qs[0]
	if den == 0 {
		return nan
	}
	return (qs[1] - qs[0]) / den
}

// CoefficientOfRange returns (max-min)/(max+min), for positive-valued
// samples. NaN when max+min is zero.
func CoefficientOfRange(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	min, max := floats.Min(s.Xs), floats.Max(s.Xs)
	den := max + min
	if den == 0 {
		return nan
	}
	return (max - min) / den
}

// StudentizedRange returns the sample range divided by the population
// standard deviation. NaN on a constant sample, whose deviation is
// zero.
func StudentizedRange(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	sd := s.StdDev()
	if sd == 0 || constant(s) {
		return nan
	}
	return (floats.Max(s.Xs) - floats.Min(s.Xs)) / sd
}

// CoefficientOfVariation returns the population standard deviation
// divided by the absolute mean, for samples with nonzero mean. It is
// intended for positive-valued samples; the absolute value keeps the
// non-negativity contract for the rest.
func CoefficientOfVariation(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	m := s.Mean()
	if m == 0 {
		return nan
	}
	if constant(s) {
		return 0
	}
	return s.StdDev() / math.Abs(m)
}

// RobustCoefficientOfVariation returns the Gaussian-consistent median
// absolute deviation divided by the absolute median.
func RobustCoefficientOfVariation(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	med := s.Quantile(0.5)
	if med == 0 {
		return nan
	}
	if constant(s) {
		return 0
	}
	return madConsistency * sample.Median(absDeviations(s)) / math.Abs(med)
}

// CoefficientOfLVariation returns the L-moment analogue of the
// coefficient of variation, l2/l1, for samples with nonzero mean.
func CoefficientOfLVariation(s sample.Sample) float64 {
	if !s.Defined(4) {
		return nan
	}
	if constant(s) {
		if s.Xs[0] == 0 {
			return nan
		}
		return 0
	}
	l1, l2, _, _ := lmom.Moments(s.Sorted())
	if l1 == 0 {
		return nan
	}
	return l2 / math.Abs(l1)
}
