// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package central provides uncommon measures of central tendency:
// robust and exotic alternatives to the mean and median.
//
// Every estimator is a pure function of its sample. Results are NaN
// when the sample is smaller than the estimator's minimum size, when
// it contains a NaN (see the sample package for the opt-in skipping
// mode), or when a required denominator is zero.
package central

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-obscurestats/sample"
)

var nan = math.NaN()

// Midrange returns the midpoint between the sample minimum and
// maximum.
//
// It is cheap but noisy, since it depends only on the two most extreme
// observations.
func Midrange(s sample.Sample) float64 {
	if !s.Defined(1) {
		return nan
	}
	return (floats.Min(s.Xs) + floats.Max(s.Xs)) * 0.5
}

// Midhinge returns the average of the first and third quartiles.
func Midhinge(s sample.Sample) float64 {
	if !s.Defined(1) {
		return nan
	}
	qs := s.Quantiles(0.25, 0.75)
	return (qs[0] + qs[1]) * 0.5
}

// Trimean returns Tukey's trimean, the weighted average of the three
// quartiles with the median counted twice.
func Trimean(s sample.Sample) float64 {
	if !s.Defined(1) {
		return nan
	}
	qs := s.Quantiles(0.25, 0.5, 0.75)
	return 0.5*qs[1] + 0.25*(qs[0]+qs[2])
}

// Midmean returns the interquartile mean: the mean of the values that
// fall inside the closed interquartile range. NaN if no value does.
func Midmean(s sample.Sample) float64 {
	if !s.Defined(1) {
		return nan
	}
	qs := s.Quantiles(0.25, 0.75)
	var sum float64
	var n int
	for _, x := range s.Xs {
		if qs[0] <= x && x <= qs[1] {
			sum += x
			n++
		}
	}
	if n == 0 {
		return nan
	}
	return sum / float64(n)
}

// ContraharmonicMean returns the contraharmonic mean, the Lehmer mean
// with p=2: sum(x^2)/sum(x). NaN when the plain sum is zero.
func ContraharmonicMean(s sample.Sample) float64 {
	if !s.Defined(1) {
		return nan
	}
	var num, den float64
	for _, x := range s.Xs {
		num += x * x
		den += x
	}
	if den == 0 {
		return nan
	}
	return num / den
}

// HodgesLehmannSen returns the Hodges-Lehmann-Sen location estimate
// (pseudomedian): the median of the Walsh averages (x_i+x_j)/2 over
// all pairs i <= j.
//
// Time and space are quadratic in the sample size.
func HodgesLehmannSen(s sample.Sample) float64 {
	if !s.Defined(1) {
		return nan
	}
	n := s.Len()
	walsh := make([]float64, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			walsh = append(walsh, (s.Xs[i]+s.Xs[j])*0.5)
		}
	}
	return sample.Median(walsh)
}

// GastwirthLocation returns Gastwirth's robust location estimate,
// 0.3 Q(1/3) + 0.4 Q(1/2) + 0.3 Q(2/3).
func GastwirthLocation(s sample.Sample) float64 {
	if !s.Defined(1) {
		return nan
	}
	qs := s.Quantiles(1.0/3, 0.5, 2.0/3)
	return 0.3*qs[0] + 0.4*qs[1] + 0.3*qs[2]
}

// HalfSampleMode returns the Bickel-Frühwirth half sample mode: the
// sample is repeatedly narrowed to the half window of smallest width
// until at most three values remain. It is a far more stable mode
// estimate than binning, especially for floating-point data.
func HalfSampleMode(s sample.Sample) float64 {
	if !s.Defined(1) {
		return nan
	}
	y := s.Sorted()
	for len(y) >= 4 {
		half := len(y) / 2
		wMin := y[len(y)-1] - y[0]
		j := 0
		for i := 0; i+half <= len(y); i++ {
			if w := y[i+half-1] - y[i]; w <= wMin {
				wMin, j = w, i
			}
		}
		if wMin == 0 {
			// A zero-width window is a run of identical
			// values; that value is the mode.
			return y[j]
		}
		y = y[j : j+half]
	}
	if len(y) == 3 {
		switch z := 2*y[1] - y[0] - y[2]; {
		case z < 0:
			return (y[0] + y[1]) * 0.5
		case z > 0:
			return (y[1] + y[2]) * 0.5
		}
		return y[1]
	}
	return floats.Sum(y) / float64(len(y))
}

// TrimmedHarrellDavisQuantile returns the standard trimmed
// Harrell-Davis estimate of the q-th quantile, q in (0, 1). The
// classic Harrell-Davis weights (a Beta((n+1)q, (n+1)(1-q)) CDF over
// the order statistics) are restricted to the highest-density interval
// of width 1/sqrt(n) and renormalized, which keeps the estimator's
// efficiency while restoring robustness to extreme observations.
func TrimmedHarrellDavisQuantile(s sample.Sample, q float64) (float64, error) {
	if err := sample.CheckProb("q", q); err != nil {
		return nan, err
	}
	if !s.Defined(1) {
		return nan, nil
	}
	xs := s.Sorted()
	n := len(xs)
	if n == 1 {
		return xs[0], nil
	}

	nf := float64(n)
	width := 1 / math.Sqrt(nf)
	lo := 0.5 - width*q
	hi := 0.5 + width*(1-q)
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}

	dist := distuv.Beta{Alpha: (nf + 1) * q, Beta: (nf + 1) * (1 - q)}
	cdfLo, cdfHi := dist.CDF(lo), dist.CDF(hi)
	if cdfHi == cdfLo {
		return nan, nil
	}

	iStart := int(math.Floor(lo * nf))
	iEnd := int(math.Ceil(hi * nf))
	if iEnd > n {
		iEnd = n
	}
	var sum float64
	prev := 0.0
	for i := iStart; i < iEnd; i++ {
		p := float64(i+1) / nf
		if p < lo {
			p = lo
		}
		if p > hi {
			p = hi
		}
		c := (dist.CDF(p) - cdfLo) / (cdfHi - cdfLo)
		sum += xs[i] * (c - prev)
		prev = c
	}
	return sum, nil
}

// TrimmedMean returns the mean after discarding the trim fraction of
// the sample from each end. trim must be in [0, 0.5).
func TrimmedMean(s sample.Sample, trim float64) (float64, error) {
	if err := sample.CheckTrim(trim); err != nil {
		return nan, err
	}
	if !s.Defined(1) {
		return nan, nil
	}
	xs := s.Sorted()
	k := int(trim * float64(len(xs)))
	xs = xs[k : len(xs)-k]
	return floats.Sum(xs) / float64(len(xs)), nil
}

// WinsorizedMean returns the mean after clamping the trim fraction of
// the sample at each end to the nearest retained order statistic.
// trim must be in [0, 0.5).
func WinsorizedMean(s sample.Sample, trim float64) (float64, error) {
	if err := sample.CheckTrim(trim); err != nil {
		return nan, err
	}
	if !s.Defined(1) {
		return nan, nil
	}
	xs := s.Sorted()
	n := len(xs)
	k := int(trim * float64(n))
	for i := 0; i < k; i++ {
		xs[i] = xs[k]
		xs[n-1-i] = xs[n-1-k]
	}
	return floats.Sum(xs) / float64(n), nil
}

// mode returns the most frequent value of a sorted vector; the
// smallest wins ties. Exposed to the skewness catalogue via
// ClassicMode.
func mode(xs []float64) float64 {
	best, bestN := xs[0], 0
	for i := 0; i < len(xs); {
		j := i
		for j+1 < len(xs) && xs[j+1] == xs[i] {
			j++
		}
		if n := j - i + 1; n > bestN {
			best, bestN = xs[i], n
		}
		i = j + 1
	}
	return best
}

// ClassicMode returns the most frequent sample value, breaking ties
// toward the smallest value. For continuous data with no repeats this
// degenerates to the minimum; prefer HalfSampleMode there.
func ClassicMode(s sample.Sample) float64 {
	if !s.Defined(1) {
		return nan
	}
	return mode(s.Sorted())
}
