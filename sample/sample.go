// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sample provides the validated sample representation shared
// by every estimator in this module.
//
// A Sample is a finite ordered vector of float64 values. Construction
// copies and validates the input; after that a Sample is treated as
// immutable and every estimator is a pure function of it. NaN elements
// mark missing values and, by default, propagate to every result
// (NaN in, NaN out). DropNaN is the explicit opt-in for skipping them.
package sample

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Real is the set of numeric element types the adapter accepts.
type Real interface {
	constraints.Integer | constraints.Float
}

// Sample is a finite ordered collection of real numbers.
//
// Xs is exported for read access, following the convention of
// statistics vectors elsewhere; callers must not modify it. Use New or
// FromSlice to construct a Sample, both of which copy their input.
type Sample struct {
	Xs []float64

	hasNaN bool
}

// New returns a Sample holding a copy of xs.
//
// NaN elements are accepted and mark missing values. An infinity is
// neither a value nor a missing-value marker; the first one
// encountered is reported as an *InvalidInputError. Empty input is
// accepted here; whether an empty sample is usable is decided by each
// estimator's minimum size.
func New(xs []float64) (Sample, error) {
	s := Sample{Xs: make([]float64, len(xs))}
	for i, x := range xs {
		if math.IsInf(x, 0) {
			return Sample{}, &InvalidInputError{Index: i, Msg: fmt.Sprintf("infinite value %v", x)}
		}
		if math.IsNaN(x) {
			s.hasNaN = true
		}
		s.Xs[i] = x
	}
	return s, nil
}

// FromSlice converts a slice of any integer or float type into a
// Sample. It is the adapter for heterogeneous numeric input.
func FromSlice[T Real](xs []T) (Sample, error) {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = float64(x)
	}
	return New(ys)
}

// Len returns the number of elements, including NaNs.
func (s Sample) Len() int { return len(s.Xs) }

// HasNaN reports whether the sample contains missing values.
func (s Sample) HasNaN() bool { return s.hasNaN }

// DropNaN returns a copy of s without NaN elements. This is the
// explicit opt-in for NaN-skipping estimation: an estimator applied to
// s.DropNaN() computes over the observed values only. If s has no
// NaNs, s itself is returned.
func (s Sample) DropNaN() Sample {
	if !s.hasNaN {
		return s
	}
	xs := make([]float64, 0, len(s.Xs))
	for _, x := range s.Xs {
		if !math.IsNaN(x) {
			xs = append(xs, x)
		}
	}
	return Sample{Xs: xs}
}

// DropNaNPaired removes every position where either x or y is NaN,
// preserving the pairing of the remaining elements. x and y must have
// equal length.
func DropNaNPaired(x, y Sample) (Sample, Sample) {
	if !x.hasNaN && !y.hasNaN {
		return x, y
	}
	xs := make([]float64, 0, len(x.Xs))
	ys := make([]float64, 0, len(y.Xs))
	for i := range x.Xs {
		if math.IsNaN(x.Xs[i]) || math.IsNaN(y.Xs[i]) {
			continue
		}
		xs = append(xs, x.Xs[i])
		ys = append(ys, y.Xs[i])
	}
	return Sample{Xs: xs}, Sample{Xs: ys}
}

// Defined reports whether an estimator with minimum sample size min is
// defined for s. It is false when the sample is too small or when a
// NaN is present; estimators return NaN in both cases rather than
// failing, so a single undefined value cannot abort a batch.
func (s Sample) Defined(min int) bool {
	return len(s.Xs) >= min && !s.hasNaN
}

// CheckPaired validates that x and y form a paired sample. A length
// mismatch is a usage error, never a silent truncation.
func CheckPaired(x, y Sample) error {
	if x.Len() != y.Len() {
		return &InvalidInputError{
			Index: -1,
			Msg:   fmt.Sprintf("mismatched sample lengths: %d != %d", x.Len(), y.Len()),
		}
	}
	return nil
}

// Mean returns the arithmetic mean of the sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range s.Xs {
		sum += x
	}
	return sum / float64(len(s.Xs))
}

// StdDev returns the population standard deviation (divisor n) of the
// sample. The sum of squares is accumulated around the mean rather
// than expanded, so large-magnitude low-variance samples do not
// catastrophically cancel.
func (s Sample) StdDev() float64 {
	n := len(s.Xs)
	if n == 0 {
		return math.NaN()
	}
	m := s.Mean()
	var ss float64
	for _, x := range s.Xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n))
}

// Sorted returns the sample values in increasing order. The returned
// slice is a fresh copy.
func (s Sample) Sorted() []float64 {
	xs := append([]float64(nil), s.Xs...)
	sort.Float64s(xs)
	return xs
}

// Quantile returns the q-th quantile of the sample, with q clamped to
// [0, 1], using linear interpolation between order statistics.
//
// The sample is expected to be NaN-free; apply the edge-case policy
// (Defined or DropNaN) first.
func (s Sample) Quantile(q float64) float64 {
	return quantileSorted(s.Sorted(), q)
}

// Quantiles returns the quantile at each of qs, sorting only once.
func (s Sample) Quantiles(qs ...float64) []float64 {
	xs := s.Sorted()
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = quantileSorted(xs, q)
	}
	return out
}

// Median returns the middle value of xs by linear interpolation. It is
// a convenience for estimators that need an order statistic of a
// derived vector without building a Sample.
func Median(xs []float64) float64 {
	return QuantileOf(xs, 0.5)
}

// QuantileOf returns the q-th quantile of xs, like Sample.Quantile but
// for a raw vector.
func QuantileOf(xs []float64, q float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return quantileSorted(sorted, q)
}

func quantileSorted(xs []float64, q float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return xs[0]
	}
	if q >= 1 {
		return xs[n-1]
	}
	h := q * float64(n-1)
	i := int(h)
	g := h - float64(i)
	if g == 0 || i+1 >= n {
		return xs[i]
	}
	return xs[i] + g*(xs[i+1]-xs[i])
}

// Ranks returns the 1-based rank of every element of xs. Tied values
// all receive the mean of the ranks they occupy. This average-rank
// rule is the single tie rule used by every rank-based estimator in
// this module.
func Ranks(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })
	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		// Positions i..j hold one tie group; they share the mean
		// of ranks i+1..j+1.
		r := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[idx[k]] = r
		}
		i = j + 1
	}
	return ranks
}
