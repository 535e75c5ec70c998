// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"math"
)

// ErrLogDomain is returned by Log.Ticks when the domain includes
// values log is undefined for.
var ErrLogDomain = errors.New("scale: log scale requires a positive domain")

// Log maps a positive domain onto the range [Range[0], Range[1]]
// with logarithmic spacing.
type Log struct {
	// Domain is the input value range. Both bounds must be
	// positive.
	Domain [2]float64

	// Range is the output coordinate range.
	Range [2]float64

	// Base has no effect on the mapping itself. It is only used
	// for computing tick marks, which land on powers of Base.
	// Base must be greater than 1.
	Base float64
}

// Log is a Quantitative scale.
var _ Quantitative = Log{}

// NewLog returns a logarithmic scale from domain onto rng with tick
// marks at powers of base.
func NewLog(domain, rng [2]float64, base float64) Log {
	return Log{Domain: domain, Range: rng, Base: base}
}

func (s Log) ebase() float64 {
	if s.Base <= 1 {
		panic("scale: Log base must be > 1")
	}
	return s.Base
}

// Scale returns the forward mapping from a domain value to its range
// coordinate. As with Linear, a degenerate domain collapses every
// input to Range[0].
func (s Log) Scale() func(x float64) float64 {
	logMin := math.Log(s.Domain[0])
	denom := math.Log(s.Domain[1]) - logMin
	k := 0.0
	if denom != 0 {
		k = 1 / denom
	}
	i := interpolate(s.Range[0], s.Range[1])
	return func(x float64) float64 {
		return i((math.Log(x) - logMin) * k)
	}
}

// Invert returns the inverse mapping from a range coordinate back to
// a domain value.
func (s Log) Invert() func(y float64) float64 {
	u := uninterpolate(s.Range[0], s.Range[1])
	logMin := math.Log(s.Domain[0])
	logSpan := math.Log(s.Domain[1]) - logMin
	return func(y float64) float64 {
		return math.Exp(logMin + logSpan*u(y))
	}
}

// Ticks returns major tick values at powers of an effective base and
// minor ticks between them, both in ascending order within the
// domain. n is the maximum number of major ticks and must be at
// least 2.
func (s Log) Ticks(n int) (major, minor []float64, err error) {
	if n < 2 {
		return nil, nil, ErrTickCount
	}
	base := s.ebase()
	lo, hi := minmax(s.Domain[:])
	if lo <= 0 {
		return nil, nil, ErrLogDomain
	}

	// Increase the effective base until there are <= n major ticks.
	ebase := base
	for ; ; ebase *= base {
		nticks := 1 + (math.Log(hi)-math.Log(lo))/math.Log(ebase)
		if nticks <= float64(n) {
			break
		}
	}

	// Start at the major tick below lo.
	x := math.Pow(ebase, math.Floor(math.Log(lo)/math.Log(ebase)))
	for x <= hi {
		for step := 0.0; step < ebase; step += ebase / base {
			x2 := x + step*x
			if x2 < lo {
				continue
			} else if x2 > hi {
				break
			}

			if step == 0 {
				major = append(major, x2)
			} else {
				minor = append(minor, x2)
			}
		}

		x *= ebase
	}

	return major, minor, nil
}
