// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skewness provides uncommon measures of sample asymmetry.
//
// Every measure is zero for a symmetric sample (when its location
// components can resolve the center) and changes sign when the sample
// is negated. Scale-normalized measures return NaN when the sample has
// no spread to normalize by.
package skewness

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/aclements/go-obscurestats/central"
	"github.com/aclements/go-obscurestats/internal/lmom"
	"github.com/aclements/go-obscurestats/sample"
)

var nan = math.NaN()

// PearsonModeSkew returns Pearson's first skewness coefficient,
// (mean - mode)/stddev, using the most frequent value as the mode.
// Unstable for samples without repeated values.
func PearsonModeSkew(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	sd := s.StdDev()
	if sd == 0 {
		return nan
	}
	return (s.Mean() - central.ClassicMode(s)) / sd
}

// PearsonHalfModeSkew is PearsonModeSkew with the half sample mode,
// which behaves far better on continuous data.
func PearsonHalfModeSkew(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	sd := s.StdDev()
	if sd == 0 {
		return nan
	}
	return (s.Mean() - central.HalfSampleMode(s)) / sd
}

// BickelModeSkew returns Bickel's robust mode skewness: the mean sign
// of the deviations from the half sample mode.
func BickelModeSkew(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	mode := central.HalfSampleMode(s)
	var sum float64
	for _, x := range s.Xs {
		switch {
		case x > mode:
			sum++
		case x < mode:
			sum--
		}
	}
	return sum / float64(s.Len())
}

// PearsonMedianSkew returns Pearson's second skewness coefficient,
// 3 (mean - median)/stddev.
func PearsonMedianSkew(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	sd := s.StdDev()
	if sd == 0 {
		return nan
	}
	return 3 * (s.Mean() - s.Quantile(0.5)) / sd
}

// MedeenSkew returns the Groeneveld-Meeden skewness statistic,
// (mean - median) over the mean absolute deviation from the median.
func MedeenSkew(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	med := s.Quantile(0.5)
	var dev float64
	for _, x := range s.Xs {
		dev += math.Abs(x - med)
	}
	dev /= float64(s.Len())
	if dev == 0 {
		return nan
	}
	return (s.Mean() - med) / dev
}

// BowleySkew returns Bowley's quartile skewness coefficient,
// (Q3 + Q1 - 2 Q2)/(Q3 - Q1).
func BowleySkew(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	qs := s.Quantiles(0.25, 0.5, 0.75)
	den := qs[2] - qs[0]
	if den == 0 {
		return nan
	}
	return (qs[2] + qs[0] - 2*qs[1]) / den
}

// GroeneveldSkew returns the Groeneveld quartile skewness: Bowley's
// numerator normalized by the half interquartile range on whichever
// side yields the larger magnitude.
func GroeneveldSkew(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	qs := s.Quantiles(0.25, 0.5, 0.75)
	if qs[1] == qs[0] || qs[2] == qs[1] {
		return nan
	}
	num := qs[2] + qs[0] - 2*qs[1]
	rs := num / (qs[1] - qs[0])
	ls := num / (qs[2] - qs[1])
	if math.Abs(rs) > math.Abs(ls) {
		return rs
	}
	return ls
}

// KellySkew returns Kelly's decile skewness coefficient,
// (D9 + D1 - 2 D5)/(D9 - D1).
func KellySkew(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	qs := s.Quantiles(0.1, 0.5, 0.9)
	den := qs[2] - qs[0]
	if den == 0 {
		return nan
	}
	return (qs[2] + qs[0] - 2*qs[1]) / den
}

// HossainAdnanSkew returns the Hossain-Adnan skewness coefficient: the
// mean deviation from the median over the mean absolute deviation from
// the median.
func HossainAdnanSkew(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	med := s.Quantile(0.5)
	var num, den float64
	for _, x := range s.Xs {
		d := x - med
		num += d
		den += math.Abs(d)
	}
	if den == 0 {
		return nan
	}
	return num / den
}

// ForhadShornaRankSkew returns the Forhad-Shorna coefficient of rank
// skewness: the midrange is appended to the sample, everything is
// ranked (average ranks for ties), and the signed rank distances from
// the midrange are summed and normalized by their absolute sum.
func ForhadShornaRankSkew(s sample.Sample) float64 {
	if !s.Defined(2) {
		return nan
	}
	mr := (floats.Min(s.Xs) + floats.Max(s.Xs)) * 0.5
	arr := append(append([]float64(nil), s.Xs...), mr)
	ranks := sample.Ranks(arr)
	last := ranks[len(ranks)-1]
	var num, den float64
	for _, r := range ranks[:len(ranks)-1] {
		d := last - r
		num += d
		den += math.Abs(d)
	}
	if den == 0 {
		return nan
	}
	return num / den
}

// AUCSkewGamma returns the area under the curve of the generalized
// Bowley coefficients gamma(p) for p from 0 to 1/2, integrated with
// the trapezoid rule at step dp. dp must be in (0, 0.25].
func AUCSkewGamma(s sample.Sample, dp float64) (float64, error) {
	return aucSkew(s, dp, false)
}

// WAUCSkewGamma is AUCSkewGamma with linearly decaying weights that
// emphasize the coefficients computed far from the median.
func WAUCSkewGamma(s sample.Sample, dp float64) (float64, error) {
	return aucSkew(s, dp, true)
}

func aucSkew(s sample.Sample, dp float64, weighted bool) (float64, error) {
	if !(dp > 0 && dp <= 0.25) {
		return nan, &sample.InvalidParameterError{Name: "dp", Value: dp, Domain: "(0, 0.25]"}
	}
	if !s.Defined(4) {
		return nan, nil
	}
	// Round, not truncate: 1/0.01 is slightly below 100 in floats.
	n := int(math.Round(1 / dp))
	half := n / 2
	ps := make([]float64, n)
	for i := range ps {
		ps[i] = float64(i) / float64(n-1)
	}
	quants := s.Quantiles(ps...)
	med := s.Quantile(0.5)

	skews := make([]float64, half)
	for i := 0; i < half; i++ {
		// gamma(p) pairs Q(p) with Q(1-p), so each term vanishes
		// on symmetric data and flips sign under negation.
		lo, hi := quants[i], quants[n-1-i]
		den := hi - lo
		if den == 0 {
			return nan, nil
		}
		sk := (lo + hi - 2*med) / den
		if weighted {
			sk *= float64(half-1-i) / float64(half)
		}
		skews[i] = sk
	}

	var area float64
	for i := 0; i+1 < len(skews); i++ {
		area += (skews[i] + skews[i+1]) / 2 * dp
	}
	return area, nil
}

// LSkew returns the L-moment skewness ratio tau3 = l3/l2.
func LSkew(s sample.Sample) float64 {
	if !s.Defined(4) {
		return nan
	}
	_, l2, l3, _ := lmom.Moments(s.Sorted())
	if l2 == 0 {
		return nan
	}
	return l3 / l2
}
