// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Linear maps the domain [Domain[0], Domain[1]] linearly onto the
// range [Range[0], Range[1]].
//
// A Linear is a value: callers replace it when the data or coordinate
// bounds change, and the derived mapping functions are rebuilt on
// demand rather than cached across such changes.
type Linear struct {
	// Domain is the input value range. The bounds may appear in
	// either order. A degenerate domain (equal bounds) maps every
	// input to Range[0].
	Domain [2]float64

	// Range is the output coordinate range. The sign of
	// Range[1]-Range[0] determines whether the mapping is
	// increasing or decreasing.
	Range [2]float64

	// If Clamp is true, the forward mapping clamps its result to
	// the output range. Clamp does not affect Invert.
	Clamp bool

	// If LegacyInterpolation is true, the mapping reproduces the
	// original chart widget's interpolation, which drops the
	// low-range offset and computes Range[1]*t. Set it only when
	// output must match that widget bit for bit.
	LegacyInterpolation bool
}

// Linear is a Quantitative scale.
var _ Quantitative = Linear{}

// NewLinear returns a linear scale from domain onto rng.
func NewLinear(domain, rng [2]float64) Linear {
	return Linear{Domain: domain, Range: rng}
}

// uninterpolate returns the normalized position of x between d0 and
// d1. A degenerate interval (d0 == d1) collapses every input to 0
// rather than dividing by zero.
func uninterpolate(d0, d1 float64) func(float64) float64 {
	k := 0.0
	if d0 != d1 {
		k = 1 / (d1 - d0)
	}
	return func(x float64) float64 {
		return (x - d0) * k
	}
}

// interpolate maps a normalized position t to r0 + (r1-r0)*t.
func interpolate(r0, r1 float64) func(float64) float64 {
	return func(t float64) float64 {
		return r0 + (r1-r0)*t
	}
}

// legacyInterpolate computes (r0 + (r1-r0))*t, which is r1*t: the r0
// offset is lost. This matches the original widget, which always
// placed the domain's low bound at coordinate 0 regardless of r0.
func legacyInterpolate(r0, r1 float64) func(float64) float64 {
	return func(t float64) float64 {
		return (r0 + (r1 - r0)) * t
	}
}

func (s Linear) interpolator(r0, r1 float64) func(float64) float64 {
	if s.LegacyInterpolation {
		return legacyInterpolate(r0, r1)
	}
	return interpolate(r0, r1)
}

// Scale returns the forward mapping from a domain value to its range
// coordinate. Values outside the domain extrapolate unless Clamp is
// set. Non-finite inputs propagate through the arithmetic.
func (s Linear) Scale() func(x float64) float64 {
	u := uninterpolate(s.Domain[0], s.Domain[1])
	i := s.interpolator(s.Range[0], s.Range[1])
	if !s.Clamp {
		return func(x float64) float64 {
			return i(u(x))
		}
	}
	lo, hi := minmax(s.Range[:])
	return func(x float64) float64 {
		return clamp(i(u(x)), lo, hi)
	}
}

// Invert returns the inverse mapping from a range coordinate back to
// a domain value. It is the same construction as Scale with domain
// and range swapped.
func (s Linear) Invert() func(y float64) float64 {
	u := uninterpolate(s.Range[0], s.Range[1])
	i := s.interpolator(s.Domain[0], s.Domain[1])
	return func(y float64) float64 {
		return i(u(y))
	}
}

// Nice returns a copy of s whose domain is expanded outward to
// multiples of the tick step Ticks(n) would choose, so the first and
// last ticks land exactly on the domain bounds. A degenerate domain
// is returned unchanged.
func (s Linear) Nice(n int) (Linear, error) {
	spec, err := s.Ticks(n)
	if err != nil {
		return s, err
	}
	lo, hi := minmax(s.Domain[:])
	if lo == hi {
		return s, nil
	}
	nlo := math.Floor(lo/spec.Step) * spec.Step
	nhi := math.Ceil(hi/spec.Step) * spec.Step
	if s.Domain[0] <= s.Domain[1] {
		s.Domain = [2]float64{nlo, nhi}
	} else {
		s.Domain = [2]float64{nhi, nlo}
	}
	return s, nil
}
