// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skewness

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

var plain = map[string]func(sample.Sample) float64{
	"pearson-mode":     PearsonModeSkew,
	"pearson-halfmode": PearsonHalfModeSkew,
	"bickel-mode":      BickelModeSkew,
	"pearson-median":   PearsonMedianSkew,
	"medeen":           MedeenSkew,
	"bowley":           BowleySkew,
	"groeneveld":       GroeneveldSkew,
	"kelly":            KellySkew,
	"hossain-adnan":    HossainAdnanSkew,
	"forhad-shorna":    ForhadShornaRankSkew,
	"l-skew":           LSkew,
}

// Perfectly symmetric samples, chosen per estimator so that its
// location components resolve exactly.
func TestSymmetricSampleIsZero(t *testing.T) {
	assert.Zero(t, PearsonModeSkew(mk(t, 1, 2, 2, 3)))
	assert.Zero(t, PearsonHalfModeSkew(mk(t, 1, 2, 3)))
	assert.Zero(t, BickelModeSkew(mk(t, 1, 2, 3)))
	assert.Zero(t, PearsonMedianSkew(mk(t, 1, 2, 3)))
	assert.Zero(t, MedeenSkew(mk(t, 1, 2, 3)))
	assert.Zero(t, HossainAdnanSkew(mk(t, 1, 2, 3)))
	assert.Zero(t, ForhadShornaRankSkew(mk(t, 1, 2, 3)))
	assert.Zero(t, BowleySkew(mk(t, 1, 2, 3, 4, 5)))
	assert.Zero(t, GroeneveldSkew(mk(t, 1, 2, 3, 4, 5)))

	// Quantile interpolation and L-moment weights carry a few ulps.
	assert.InDelta(t, 0, KellySkew(mk(t, 1, 2, 3, 4, 5)), 1e-12)
	assert.InDelta(t, 0, LSkew(mk(t, 1, 2, 3, 4)), 1e-12)
	v, err := AUCSkewGamma(mk(t, 1, 2, 3, 4, 5), 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-10)
	v, err = WAUCSkewGamma(mk(t, 1, 2, 3, 4, 5), 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-10)
}

// Negating the sample must flip the sign of every asymmetry measure.
func TestReflection(t *testing.T) {
	// Tie-laden so the mode is well resolved on both sides, with
	// distinct quartiles so every measure is defined.
	xs := []float64{1, 2, 2, 3, 5, 8, 9, 10}
	neg := make([]float64, len(xs))
	for i, v := range xs {
		neg[i] = -v
	}
	s, n := mk(t, xs...), mk(t, neg...)

	for name, fn := range plain {
		assert.InDelta(t, fn(s), -fn(n), 1e-12, name)
	}
	v1, err := AUCSkewGamma(s, 0.01)
	require.NoError(t, err)
	v2, err := AUCSkewGamma(n, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, v1, -v2, 1e-9)

	// The weighted variant must flip termwise, not by cancellation
	// across the trapezoid sum.
	v1, err = WAUCSkewGamma(s, 0.01)
	require.NoError(t, err)
	v2, err = WAUCSkewGamma(n, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, v1, -v2, 1e-9)
}

func TestRightSkewIsPositive(t *testing.T) {
	s := mk(t, 1, 1, 1, 2, 10)
	assert.Greater(t, BowleySkew(s), 0.0)
	assert.Greater(t, MedeenSkew(s), 0.0)
	assert.Greater(t, PearsonMedianSkew(s), 0.0)
	assert.Greater(t, HossainAdnanSkew(s), 0.0)
	assert.Greater(t, LSkew(s), 0.0)
}

func TestForhadShornaTies(t *testing.T) {
	// Midrange 3 joins [1 2 2 5]; average ranks give the tied pair
	// 2.5 each, so the signed distances are 3, 1.5, 1.5, -1.
	assert.Equal(t, 5.0/7, ForhadShornaRankSkew(mk(t, 1, 2, 2, 5)))
}

func TestConstantSampleUndefined(t *testing.T) {
	c := mk(t, 2, 2, 2, 2)
	for name, fn := range plain {
		if name == "bickel-mode" {
			// No normalization by spread; a constant sample
			// simply has no asymmetry.
			assert.Zero(t, fn(c), name)
			continue
		}
		assert.True(t, math.IsNaN(fn(c)), name)
	}
	v, err := AUCSkewGamma(c, 0.01)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestAUCParamValidation(t *testing.T) {
	s := mk(t, 1, 2, 3, 4, 5)
	for _, dp := range []float64{0, -0.01, 0.3, math.NaN()} {
		_, err := AUCSkewGamma(s, dp)
		var ipe *sample.InvalidParameterError
		require.ErrorAs(t, err, &ipe, "dp=%v", dp)
		_, err = WAUCSkewGamma(s, dp)
		require.ErrorAs(t, err, &ipe, "dp=%v", dp)
	}
}

func TestNaNPolicy(t *testing.T) {
	withNaN := mk(t, 1, 2, math.NaN(), 2, 7)
	clean := mk(t, 1, 2, 2, 7)
	for name, fn := range plain {
		assert.True(t, math.IsNaN(fn(withNaN)), "%s should propagate NaN", name)
		got := fn(withNaN.DropNaN())
		want := fn(clean)
		if math.IsNaN(want) {
			assert.True(t, math.IsNaN(got), name)
			continue
		}
		assert.Equal(t, want, got, "%s with DropNaN", name)
	}
}

func TestMinimumSize(t *testing.T) {
	single := mk(t, 7)
	for name, fn := range plain {
		assert.True(t, math.IsNaN(fn(single)), name)
	}
	v, err := AUCSkewGamma(mk(t, 1, 2, 3), 0.01)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}
