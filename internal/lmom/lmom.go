// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lmom computes direct sample estimates of the first four
// L-moments, shared by the dispersion, skewness, and kurtosis
// catalogues.
package lmom

// Moments returns the first four sample L-moments of sorted, which
// must hold at least four values in increasing order.
//
// It uses the direct order-statistics estimator: with x_(0) <= ... <=
// x_(n-1),
//
//	b_r = (1/n) sum_i x_(i) * C(i,r) / C(n-1,r)
//
// and the usual linear combinations l1 = b0, l2 = 2 b1 - b0,
// l3 = 6 b2 - 6 b1 + b0, l4 = 20 b3 - 30 b2 + 12 b1 - b0.
func Moments(sorted []float64) (l1, l2, l3, l4 float64) {
	n := float64(len(sorted))
	d1, d2, d3 := n-1, (n-1)*(n-2), (n-1)*(n-2)*(n-3)
	var b0, b1, b2, b3 float64
	for i, x := range sorted {
		fi := float64(i)
		b0 += x
		b1 += x * fi / d1
		b2 += x * fi * (fi - 1) / d2
		b3 += x * fi * (fi - 1) * (fi - 2) / d3
	}
	b0 /= n
	b1 /= n
	b2 /= n
	b3 /= n
	l1 = b0
	l2 = 2*b1 - b0
	l3 = 6*b2 - 6*b1 + b0
	l4 = 20*b3 - 30*b2 + 12*b1 - b0
	return
}
