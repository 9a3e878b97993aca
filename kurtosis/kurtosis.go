// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kurtosis provides uncommon quantile- and L-moment-based
// measures of peakedness and tail weight.
//
// All measures use the "raw" convention: nothing is subtracted to
// re-baseline them at zero for Gaussian data. The Gaussian reference
// value is documented per function instead, since silently shifted
// baselines are the classic source of disagreement between
// implementations.
package kurtosis

import (
	"math"

	"github.com/aclements/go-obscurestats/internal/lmom"
	"github.com/aclements/go-obscurestats/sample"
)

var nan = math.NaN()

// MoorsKurt returns Moors' octile kurtosis,
// ((E7-E5)+(E3-E1))/(E6-E2) with Ei the i/8 quantile.
// Gaussian reference value ~1.23.
func MoorsKurt(s sample.Sample) float64 {
	if !s.Defined(4) {
		return nan
	}
	e := s.Quantiles(1.0/8, 2.0/8, 3.0/8, 5.0/8, 6.0/8, 7.0/8)
	den := e[4] - e[1]
	if den == 0 {
		return nan
	}
	return ((e[5] - e[3]) + (e[2] - e[0])) / den
}

// CrowSiddiquiKurt returns the Crow-Siddiqui kurtosis,
// (Q(0.975)-Q(0.025))/(Q(0.75)-Q(0.25)).
// Gaussian reference value ~2.91.
func CrowSiddiquiKurt(s sample.Sample) float64 {
	if !s.Defined(4) {
		return nan
	}
	qs := s.Quantiles(0.025, 0.25, 0.75, 0.975)
	den := qs[2] - qs[1]
	if den == 0 {
		return nan
	}
	return (qs[3] - qs[0]) / den
}

// HoggKurt returns Hogg's kurtosis: the spread of the 5% tail means
// over the spread of the half means,
// (U(0.05)-L(0.05))/(U(0.5)-L(0.5)).
// Gaussian reference value ~2.59.
func HoggKurt(s sample.Sample) float64 {
	if !s.Defined(4) {
		return nan
	}
	xs := s.Sorted()
	den := tailMean(xs, 0.5, true) - tailMean(xs, 0.5, false)
	if den == 0 {
		return nan
	}
	return (tailMean(xs, 0.05, true) - tailMean(xs, 0.05, false)) / den
}

// tailMean returns the mean of the upper (or lower) p-fraction of a
// sorted vector, rounding the tail size up so it is never empty.
func tailMean(sorted []float64, p float64, upper bool) float64 {
	k := int(math.Ceil(p * float64(len(sorted))))
	if upper {
		sorted = sorted[len(sorted)-k:]
	} else {
		sorted = sorted[:k]
	}
	var sum float64
	for _, x := range sorted {
		sum += x
	}
	return sum / float64(k)
}

// SchmidTredePeakedness returns the Schmid-Trede measure of
// peakedness, (Q(0.875)-Q(0.125))/(Q(0.75)-Q(0.25)).
// Gaussian reference value ~1.71.
func SchmidTredePeakedness(s sample.Sample) float64 {
	if !s.Defined(4) {
		return nan
	}
	qs := s.Quantiles(0.125, 0.25, 0.75, 0.875)
	den := qs[2] - qs[1]
	if den == 0 {
		return nan
	}
	return (qs[3] - qs[0]) / den
}

// LKurt returns the L-moment kurtosis ratio tau4 = l4/l2.
// Gaussian reference value ~0.1226; an evenly spaced (uniform) sample
// scores ~0.
func LKurt(s sample.Sample) float64 {
	if !s.Defined(4) {
		return nan
	}
	_, l2, _, l4 := lmom.Moments(s.Sorted())
	if l2 == 0 {
		return nan
	}
	return l4 / l2
}
