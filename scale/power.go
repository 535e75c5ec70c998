// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Power maps like Linear but raises the normalized domain position
// to Exp, compressing one end of the range. Tick computation is
// inherited from the embedded Linear.
type Power struct {
	Linear
	Exp float64
}

// Power is a Quantitative scale.
var _ Quantitative = Power{}

// NewPower returns a power scale from domain onto rng with exponent
// exp.
func NewPower(domain, rng [2]float64, exp float64) Power {
	return Power{Linear: NewLinear(domain, rng), Exp: exp}
}

func (s Power) Scale() func(x float64) float64 {
	u := uninterpolate(s.Domain[0], s.Domain[1])
	i := interpolate(s.Range[0], s.Range[1])
	return func(x float64) float64 {
		return i(math.Pow(u(x), s.Exp))
	}
}

func (s Power) Invert() func(y float64) float64 {
	u := uninterpolate(s.Range[0], s.Range[1])
	i := interpolate(s.Domain[0], s.Domain[1])
	return func(y float64) float64 {
		return i(math.Pow(u(y), 1/s.Exp))
	}
}
