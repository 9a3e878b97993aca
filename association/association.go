// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package association provides uncommon measures of bivariate
// association and concordance over paired samples.
//
// Every estimator validates that its samples have equal length before
// any numeric work and reports a mismatch as an
// *sample.InvalidInputError naming both lengths. Rank- and
// correlation-based measures return NaN when either marginal sample is
// constant, since they are undefined without variance to normalize by.
package association

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/aclements/go-obscurestats/sample"
)

var nan = math.NaN()

func constant(s sample.Sample) bool {
	return floats.Min(s.Xs) == floats.Max(s.Xs)
}

// BlomqvistBeta returns Blomqvist's medial correlation coefficient:
// the mean sign of (x_i - med(x))(y_i - med(y)), in [-1, 1]. Pairs on
// a median contribute zero, so strictly monotonic even-length pairs
// saturate the bound exactly.
func BlomqvistBeta(x, y sample.Sample) (float64, error) {
	if err := sample.CheckPaired(x, y); err != nil {
		return nan, err
	}
	if !x.Defined(2) || !y.Defined(2) {
		return nan, nil
	}
	if constant(x) || constant(y) {
		return nan, nil
	}
	mx, my := x.Quantile(0.5), y.Quantile(0.5)
	var sum float64
	for i := range x.Xs {
		sum += sign(x.Xs[i]-mx) * sign(y.Xs[i]-my)
	}
	return sum / float64(x.Len()), nil
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// ConcordanceCorrelation returns Lin's concordance correlation
// coefficient, which measures agreement with the identity line:
// 2 cov(x,y) / (var(x) + var(y) + (mean(x)-mean(y))^2), in [-1, 1].
// Identical increasing samples score exactly 1.
func ConcordanceCorrelation(x, y sample.Sample) (float64, error) {
	if err := sample.CheckPaired(x, y); err != nil {
		return nan, err
	}
	if !x.Defined(2) || !y.Defined(2) {
		return nan, nil
	}
	if constant(x) || constant(y) {
		return nan, nil
	}
	mx, my := x.Mean(), y.Mean()
	var sxx, syy, sxy float64
	for i := range x.Xs {
		dx, dy := x.Xs[i]-mx, y.Xs[i]-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	md := mx - my
	den := sxx + syy + float64(x.Len())*md*md
	if den == 0 {
		return nan, nil
	}
	return 2 * sxy / den, nil
}

// TanimotoSimilarity returns the Tanimoto coefficient of the two
// samples viewed as vectors: <x,y> / (|x|^2 + |y|^2 - <x,y>). It is 1
// exactly when the samples are identical, and is defined even for
// constant samples since it is not variance-normalized.
func TanimotoSimilarity(x, y sample.Sample) (float64, error) {
	if err := sample.CheckPaired(x, y); err != nil {
		return nan, err
	}
	if !x.Defined(1) || !y.Defined(1) {
		return nan, nil
	}
	var xx, yy, xy float64
	for i := range x.Xs {
		xx += x.Xs[i] * x.Xs[i]
		yy += y.Xs[i] * y.Xs[i]
		xy += x.Xs[i] * y.Xs[i]
	}
	den := xx + yy - xy
	if den == 0 {
		return nan, nil
	}
	return xy / den, nil
}

// ChatterjeeXi returns Chatterjee's rank correlation xi(x -> y), a
// measure of how well y can be expressed as a function of x. It
// approaches 1 for a noiseless functional dependence (but does not
// attain it on finite samples), is near 0 for independence, and is
// deliberately asymmetric in its arguments; see SymmetricChatterjeeXi.
//
// Ties in x are broken by input order (a deterministic stand-in for
// the randomized breaking in the original definition); ties in y are
// handled by the tie-aware denominator, consistent with the module's
// average-rank convention.
func ChatterjeeXi(x, y sample.Sample) (float64, error) {
	if err := sample.CheckPaired(x, y); err != nil {
		return nan, err
	}
	if !x.Defined(2) || !y.Defined(2) {
		return nan, nil
	}
	if constant(x) || constant(y) {
		return nan, nil
	}
	n := x.Len()

	// Reorder y by increasing x, stably.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return x.Xs[idx[a]] < x.Xs[idx[b]] })

	ySorted := y.Sorted()
	r := make([]float64, n) // r[i] = #{j : y_j <= y_(i-th by x)}
	l := make([]float64, n) // l[i] = #{j : y_j >= ...}
	for i, ord := range idx {
		v := y.Xs[ord]
		upper := sort.Search(n, func(k int) bool { return ySorted[k] > v })
		lower := sort.SearchFloat64s(ySorted, v)
		r[i] = float64(upper)
		l[i] = float64(n - lower)
	}

	var num, den float64
	for i := 0; i+1 < n; i++ {
		num += math.Abs(r[i+1] - r[i])
	}
	for i := range l {
		den += l[i] * (float64(n) - l[i])
	}
	if den == 0 {
		return nan, nil
	}
	return 1 - float64(n)*num/(2*den), nil
}

// SymmetricChatterjeeXi returns max(xi(x->y), xi(y->x)), which is
// large when either variable is a function of the other.
func SymmetricChatterjeeXi(x, y sample.Sample) (float64, error) {
	xy, err := ChatterjeeXi(x, y)
	if err != nil {
		return nan, err
	}
	yx, err := ChatterjeeXi(y, x)
	if err != nil {
		return nan, err
	}
	return math.Max(xy, yx), nil
}

// WinsorizedCorrelation returns the Pearson correlation of the two
// samples after winsorizing each marginal at the trim fraction (values
// beyond the trim-th order statistic from either end are clamped to
// it). trim must be in [0, 0.5). The result is clamped to [-1, 1] and
// saturates exactly for identical increasing samples.
func WinsorizedCorrelation(x, y sample.Sample, trim float64) (float64, error) {
	if err := sample.CheckTrim(trim); err != nil {
		return nan, err
	}
	if err := sample.CheckPaired(x, y); err != nil {
		return nan, err
	}
	if !x.Defined(2) || !y.Defined(2) {
		return nan, nil
	}
	if constant(x) || constant(y) {
		return nan, nil
	}
	xs := winsorize(x, trim)
	ys := winsorize(y, trim)
	return pearson(xs, ys), nil
}

// winsorize clamps each value into the [k-th, (n-1-k)-th] order
// statistics, preserving element order and therefore pairing.
func winsorize(s sample.Sample, trim float64) []float64 {
	sorted := s.Sorted()
	n := len(sorted)
	k := int(trim * float64(n))
	lo, hi := sorted[k], sorted[n-1-k]
	out := make([]float64, n)
	for i, v := range s.Xs {
		switch {
		case v < lo:
			v = lo
		case v > hi:
			v = hi
		}
		out[i] = v
	}
	return out
}

// pearson computes the correlation in the sum-of-products form
// sxy/sqrt(sxx*syy); for identical inputs the denominator reduces to
// sxx exactly, so perfect correlation is exactly 1.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	mx, my := floats.Sum(xs)/n, floats.Sum(ys)/n
	var sxx, syy, sxy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	den := math.Sqrt(sxx * syy)
	if den == 0 {
		return nan
	}
	r := sxy / den
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
