// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	s, err := New(xs)
	require.NoError(t, err)
	xs[0] = 99
	assert.Equal(t, []float64{3, 1, 2}, s.Xs)
}

func TestNewRejectsInf(t *testing.T) {
	for _, inf := range []float64{math.Inf(1), math.Inf(-1)} {
		_, err := New([]float64{1, inf, 3})
		var iie *InvalidInputError
		require.ErrorAs(t, err, &iie)
		assert.Equal(t, 1, iie.Index)
	}
}

func TestNewAcceptsEmptyAndNaN(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.HasNaN())

	s, err = New([]float64{1, math.NaN(), 3})
	require.NoError(t, err)
	assert.True(t, s.HasNaN())
	assert.Equal(t, 3, s.Len())
}

func TestFromSlice(t *testing.T) {
	s, err := FromSlice([]int{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, s.Xs)

	s, err = FromSlice([]float32{1.5, 2.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, s.Xs)
}

func TestDropNaN(t *testing.T) {
	s, _ := New([]float64{1, math.NaN(), 3})
	d := s.DropNaN()
	assert.Equal(t, []float64{1, 3}, d.Xs)
	assert.False(t, d.HasNaN())
	// The original is untouched.
	assert.Equal(t, 3, s.Len())
}

func TestDropNaNPaired(t *testing.T) {
	x, _ := New([]float64{1, math.NaN(), 3, 4})
	y, _ := New([]float64{5, 6, math.NaN(), 8})
	dx, dy := DropNaNPaired(x, y)
	assert.Equal(t, []float64{1, 4}, dx.Xs)
	assert.Equal(t, []float64{5, 8}, dy.Xs)
}

func TestDefined(t *testing.T) {
	s, _ := New([]float64{1, 2, 3})
	assert.True(t, s.Defined(3))
	assert.False(t, s.Defined(4))

	s, _ = New([]float64{1, math.NaN(), 3})
	assert.False(t, s.Defined(1))
	assert.True(t, s.DropNaN().Defined(2))
}

func TestCheckPaired(t *testing.T) {
	x, _ := New([]float64{1, 2, 3})
	y, _ := New([]float64{1, 2})
	err := CheckPaired(x, y)
	var iie *InvalidInputError
	require.ErrorAs(t, err, &iie)
	assert.Contains(t, err.Error(), "3 != 2")

	require.NoError(t, CheckPaired(x, x))
}

func TestQuantile(t *testing.T) {
	s, _ := New([]float64{4, 1, 3, 2})
	assert.Equal(t, 1.0, s.Quantile(0))
	assert.Equal(t, 1.75, s.Quantile(0.25))
	assert.Equal(t, 2.5, s.Quantile(0.5))
	assert.Equal(t, 3.25, s.Quantile(0.75))
	assert.Equal(t, 4.0, s.Quantile(1))
	// Out-of-range clamps.
	assert.Equal(t, 1.0, s.Quantile(-1))
	assert.Equal(t, 4.0, s.Quantile(2))

	empty, _ := New(nil)
	assert.True(t, math.IsNaN(empty.Quantile(0.5)))
}

func TestQuantilesMatchesQuantile(t *testing.T) {
	s, _ := New([]float64{7, 2, 9, 4, 5})
	qs := s.Quantiles(0.1, 0.5, 0.9)
	for i, q := range []float64{0.1, 0.5, 0.9} {
		assert.Equal(t, s.Quantile(q), qs[i])
	}
}

func TestMeanStdDev(t *testing.T) {
	s, _ := New([]float64{1, 2, 3, 4})
	assert.Equal(t, 2.5, s.Mean())
	assert.InDelta(t, math.Sqrt(1.25), s.StdDev(), 1e-15)

	c, _ := New([]float64{5, 5, 5})
	assert.Equal(t, 0.0, c.StdDev())
}

func TestRanks(t *testing.T) {
	assert.Equal(t, []float64{1, 2.5, 2.5, 4}, Ranks([]float64{10, 20, 20, 30}))
	assert.Equal(t, []float64{3, 1, 2}, Ranks([]float64{30, 10, 20}))
	// All tied.
	assert.Equal(t, []float64{2, 2, 2}, Ranks([]float64{7, 7, 7}))
}

func TestMedianAndQuantileOf(t *testing.T) {
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.Equal(t, 1.75, QuantileOf([]float64{4, 1, 3, 2}, 0.25))
}
