// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog exposes every estimator in this module through a
// single immutable registry, so tooling can enumerate and run the full
// battery without hardcoding names.
//
// The registry is built once at package initialization and never
// mutated. Parameterized estimators are registered with their
// documented default options; call the underlying packages directly
// for other settings.
package catalog

import (
	"math"
	"slices"

	"github.com/aclements/go-obscurestats/association"
	"github.com/aclements/go-obscurestats/central"
	"github.com/aclements/go-obscurestats/dispersion"
	"github.com/aclements/go-obscurestats/kurtosis"
	"github.com/aclements/go-obscurestats/sample"
	"github.com/aclements/go-obscurestats/skewness"
)

// Arity is the number of samples an estimator consumes.
type Arity int

const (
	Univariate Arity = iota
	Bivariate
)

func (a Arity) String() string {
	switch a {
	case Univariate:
		return "univariate"
	case Bivariate:
		return "bivariate"
	}
	return "unknown"
}

// UnivariateFunc is an estimator of one sample. Undefined results are
// NaN, never errors.
type UnivariateFunc func(sample.Sample) float64

// BivariateFunc is an estimator of a paired sample. The error reports
// structural misuse (mismatched lengths); undefined results are NaN.
type BivariateFunc func(x, y sample.Sample) (float64, error)

// Entry describes one registered estimator.
type Entry struct {
	Name    string
	Arity   Arity
	MinSize int    // sample sizes below this produce NaN
	Domain  string // documented result range and input expectations

	uni UnivariateFunc
	bi  BivariateFunc
}

// Options adjusts how an Entry is evaluated.
type Options struct {
	// DropNaN removes missing values before estimation (pairwise
	// for bivariate estimators) instead of propagating them to the
	// result.
	DropNaN bool
}

// EvalUnivariate runs a univariate entry on s. Calling it on a
// bivariate entry is a programming error and panics.
func (e Entry) EvalUnivariate(s sample.Sample, opt Options) float64 {
	if e.Arity != Univariate {
		panic("EvalUnivariate called on bivariate estimator " + e.Name)
	}
	if opt.DropNaN {
		s = s.DropNaN()
	}
	return e.uni(s)
}

// EvalBivariate runs a bivariate entry on the paired sample (x, y).
// Calling it on a univariate entry is a programming error and panics.
func (e Entry) EvalBivariate(x, y sample.Sample, opt Options) (float64, error) {
	if e.Arity != Bivariate {
		panic("EvalBivariate called on univariate estimator " + e.Name)
	}
	if opt.DropNaN {
		if err := sample.CheckPaired(x, y); err != nil {
			return math.NaN(), err
		}
		x, y = sample.DropNaNPaired(x, y)
	}
	return e.bi(x, y)
}

var entries = makeEntries()
var byName = indexEntries(entries)

// All returns every registered estimator. The returned slice is a
// copy; the registry itself cannot be mutated.
func All() []Entry {
	return slices.Clone(entries)
}

// Lookup returns the estimator registered under name.
func Lookup(name string) (Entry, bool) {
	i, ok := byName[name]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// Names returns the sorted names of all registered estimators.
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	slices.Sort(names)
	return names
}

func indexEntries(es []Entry) map[string]int {
	m := make(map[string]int, len(es))
	for i, e := range es {
		if _, ok := m[e.Name]; ok {
			panic("duplicate estimator name " + e.Name)
		}
		m[e.Name] = i
	}
	return m
}

func makeEntries() []Entry {
	var es []Entry
	uni := func(name string, min int, domain string, fn UnivariateFunc) {
		es = append(es, Entry{Name: name, Arity: Univariate, MinSize: min, Domain: domain, uni: fn})
	}
	bi := func(name string, min int, domain string, fn BivariateFunc) {
		es = append(es, Entry{Name: name, Arity: Bivariate, MinSize: min, Domain: domain, bi: fn})
	}

	// Central tendency.
	uni("midrange", 1, "any real sample", central.Midrange)
	uni("midhinge", 1, "any real sample", central.Midhinge)
	uni("trimean", 1, "any real sample", central.Trimean)
	uni("midmean", 1, "any real sample", central.Midmean)
	uni("contraharmonic_mean", 1, "samples with nonzero sum", central.ContraharmonicMean)
	uni("hodges_lehmann_sen_location", 1, "any real sample", central.HodgesLehmannSen)
	uni("gastwirth_location", 1, "any real sample", central.GastwirthLocation)
	uni("half_sample_mode", 1, "any real sample", central.HalfSampleMode)
	uni("standard_trimmed_harrell_davis_quantile", 1, "any real sample; q=0.5", func(s sample.Sample) float64 {
		v, _ := central.TrimmedHarrellDavisQuantile(s, 0.5)
		return v
	})
	uni("trimmed_mean", 1, "any real sample; trim=0.2", func(s sample.Sample) float64 {
		v, _ := central.TrimmedMean(s, 0.2)
		return v
	})
	uni("winsorized_mean", 1, "any real sample; trim=0.2", func(s sample.Sample) float64 {
		v, _ := central.WinsorizedMean(s, 0.2)
		return v
	})

	// Dispersion. All results are >= 0.
	uni("median_abs_deviation", 2, "result >= 0", dispersion.MedianAbsDeviation)
	uni("quantile_abs_deviation", 2, "result >= 0; q~=0.6827", func(s sample.Sample) float64 {
		v, _ := dispersion.QuantileAbsDeviation(s, dispersion.DefaultQuantile)
		return v
	})
	uni("shamos_estimator", 2, "result >= 0", dispersion.ShamosEstimator)
	uni("gini_mean_difference", 2, "result >= 0", dispersion.GiniMeanDifference)
	uni("quartile_coef_dispersion", 2, "positive-valued samples; result >= 0", dispersion.QuartileCoefDispersion)
	uni("coefficient_of_range", 2, "positive-valued samples; result >= 0", dispersion.CoefficientOfRange)
	uni("studentized_range", 2, "non-constant samples; result >= 0", dispersion.StudentizedRange)
	uni("coefficient_of_variation", 2, "nonzero-mean samples; result >= 0", dispersion.CoefficientOfVariation)
	uni("robust_coefficient_of_variation", 2, "nonzero-median samples; result >= 0", dispersion.RobustCoefficientOfVariation)
	uni("coefficient_of_lvariation", 4, "nonzero-mean samples; result >= 0", dispersion.CoefficientOfLVariation)

	// Skewness. Zero for symmetric samples; sign flips under
	// negation.
	uni("pearson_mode_skew", 2, "non-constant samples", skewness.PearsonModeSkew)
	uni("pearson_halfmode_skew", 2, "non-constant samples", skewness.PearsonHalfModeSkew)
	uni("bickel_mode_skew", 2, "result in [-1, 1]", skewness.BickelModeSkew)
	uni("pearson_median_skew", 2, "non-constant samples", skewness.PearsonMedianSkew)
	uni("medeen_skew", 2, "non-constant samples", skewness.MedeenSkew)
	uni("bowley_skew", 2, "result in [-1, 1]", skewness.BowleySkew)
	uni("groeneveld_skew", 2, "non-constant samples", skewness.GroeneveldSkew)
	uni("kelly_skew", 2, "result in [-1, 1]", skewness.KellySkew)
	uni("hossain_adnan_skew", 2, "result in [-1, 1]", skewness.HossainAdnanSkew)
	uni("forhad_shorna_rank_skew", 2, "result in [-1, 1]", skewness.ForhadShornaRankSkew)
	uni("auc_skew_gamma", 4, "non-constant samples; dp=0.01", func(s sample.Sample) float64 {
		v, _ := skewness.AUCSkewGamma(s, 0.01)
		return v
	})
	uni("wauc_skew_gamma", 4, "non-constant samples; dp=0.01", func(s sample.Sample) float64 {
		v, _ := skewness.WAUCSkewGamma(s, 0.01)
		return v
	})
	uni("l_skew", 4, "non-constant samples", skewness.LSkew)

	// Kurtosis, raw convention; Gaussian reference value noted.
	uni("moors_kurt", 4, "non-constant samples; Gaussian ~1.23", kurtosis.MoorsKurt)
	uni("crow_siddiqui_kurt", 4, "non-constant samples; Gaussian ~2.91", kurtosis.CrowSiddiquiKurt)
	uni("hogg_kurt", 4, "non-constant samples; Gaussian ~2.59", kurtosis.HoggKurt)
	uni("schmid_trede_peakedness", 4, "non-constant samples; Gaussian ~1.71", kurtosis.SchmidTredePeakedness)
	uni("l_kurt", 4, "non-constant samples; Gaussian ~0.1226", kurtosis.LKurt)

	// Bivariate association.
	bi("blomqvist_beta", 2, "result in [-1, 1]", association.BlomqvistBeta)
	bi("concordance_correlation", 2, "result in [-1, 1]", association.ConcordanceCorrelation)
	bi("tanimoto_similarity", 1, "result <= 1 for nonnegative vectors", association.TanimotoSimilarity)
	bi("chatterjee_xi", 2, "result < 1; asymmetric in its arguments", association.ChatterjeeXi)
	bi("symmetric_chatterjee_xi", 2, "result < 1", association.SymmetricChatterjeeXi)
	bi("winsorized_correlation", 2, "result in [-1, 1]; trim=0.1", func(x, y sample.Sample) (float64, error) {
		return association.WinsorizedCorrelation(x, y, 0.1)
	})

	return es
}
