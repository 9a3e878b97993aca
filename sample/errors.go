// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sample

import "fmt"

// InvalidInputError reports structurally unusable input: a non-finite
// element, or paired samples of different lengths. It is always
// returned eagerly, before any numeric work begins. Mathematically
// undefined results on valid input are reported as NaN, never as an
// error.
type InvalidInputError struct {
	Index int // index of the offending element, or -1 when not positional
	Msg   string
}

func (e *InvalidInputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid input at index %d: %s", e.Index, e.Msg)
	}
	return "invalid input: " + e.Msg
}

// InvalidParameterError reports an estimator option outside its
// documented domain.
type InvalidParameterError struct {
	Name   string
	Value  float64
	Domain string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("parameter %s=%v outside valid domain %s", e.Name, e.Value, e.Domain)
}

// CheckTrim validates a trim fraction, shared by the trimmed and
// winsorized estimators. The comparison is written so that NaN is
// rejected too.
func CheckTrim(trim float64) error {
	if !(trim >= 0 && trim < 0.5) {
		return &InvalidParameterError{Name: "trim", Value: trim, Domain: "[0, 0.5)"}
	}
	return nil
}

// CheckProb validates a probability-like parameter on the open
// interval (0, 1).
func CheckProb(name string, v float64) error {
	if !(v > 0 && v < 1) {
		return &InvalidParameterError{Name: name, Value: v, Domain: "(0, 1)"}
	}
	return nil
}
