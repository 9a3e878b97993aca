// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kurtosis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-obscurestats/sample"
)

func mk(t *testing.T, xs ...float64) sample.Sample {
	t.Helper()
	s, err := sample.New(xs)
	require.NoError(t, err)
	return s
}

var all = map[string]func(sample.Sample) float64{
	"moors":         MoorsKurt,
	"crow-siddiqui": CrowSiddiquiKurt,
	"hogg":          HoggKurt,
	"schmid-trede":  SchmidTredePeakedness,
	"l-kurt":        LKurt,
}

// An evenly spaced sample is the discrete uniform, whose reference
// values are easy to derive by hand.
func TestEvenlySpaced(t *testing.T) {
	s := mk(t, 0, 1, 2, 3, 4, 5, 6, 7, 8)
	assert.Equal(t, 1.0, MoorsKurt(s))
	assert.InDelta(t, 1.9, CrowSiddiquiKurt(s), 1e-12)
	assert.Equal(t, 1.5, SchmidTredePeakedness(s))
	assert.Equal(t, 2.0, HoggKurt(s))
	assert.InDelta(t, 0, LKurt(s), 1e-12)
}

// Heavier tails push every measure above its uniform value.
func TestTailWeightOrdering(t *testing.T) {
	uniform := mk(t, 0, 1, 2, 3, 4, 5, 6, 7, 8)
	heavy := mk(t, -20, -1, -0.5, -0.2, 0, 0.2, 0.5, 1, 20)
	for name, fn := range all {
		assert.Greater(t, fn(heavy), fn(uniform), name)
	}
}

func TestConstantSampleUndefined(t *testing.T) {
	c := mk(t, 3, 3, 3, 3, 3)
	for name, fn := range all {
		assert.True(t, math.IsNaN(fn(c)), name)
	}
}

func TestMinimumSize(t *testing.T) {
	s := mk(t, 1, 2, 3)
	for name, fn := range all {
		assert.True(t, math.IsNaN(fn(s)), name)
	}
}

func TestPermutationInvariance(t *testing.T) {
	a := mk(t, 5, 1, 4, 2, 8, 3, 9, 0)
	b := mk(t, 0, 1, 2, 3, 4, 5, 8, 9)
	for name, fn := range all {
		assert.Equal(t, fn(b), fn(a), name)
	}
}

func TestNaNPolicy(t *testing.T) {
	withNaN := mk(t, 1, 2, math.NaN(), 4, 5, 9)
	clean := mk(t, 1, 2, 4, 5, 9)
	for name, fn := range all {
		assert.True(t, math.IsNaN(fn(withNaN)), "%s should propagate NaN", name)
		assert.Equal(t, fn(clean), fn(withNaN.DropNaN()), "%s with DropNaN", name)
	}
}
