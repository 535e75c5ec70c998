// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/vec"
)

// ErrTickCount is returned by Ticks when the requested tick count is
// invalid.
var ErrTickCount = errors.New("scale: invalid tick count")

// A TickSpec describes an arithmetic progression of axis tick values
// Start, Start+Step, Start+2*Step, ... covering a scale's domain.
// Stop is biased half a step past the last exact tick so that a
// caller iterating with v <= Stop includes it despite accumulated
// rounding error.
type TickSpec struct {
	Start, Stop, Step float64
}

// Ticks returns a spec for approximately n ticks covering the
// domain, with the step snapped to 1, 2, 5, or 10 times a power of
// ten. A degenerate domain yields the single tick at its value.
// Ticks returns ErrTickCount if n <= 0.
func (s Linear) Ticks(n int) (TickSpec, error) {
	if n <= 0 {
		return TickSpec{}, ErrTickCount
	}
	lo, hi := minmax(s.Domain[:])
	span := hi - lo
	if span == 0 {
		return TickSpec{Start: lo, Stop: lo, Step: 1}, nil
	}

	// Start from the order of magnitude of the raw step, then
	// refine by how far that leaves us from the requested count.
	step := math.Pow(10, math.Floor(math.Log10(span/float64(n))))
	switch e := float64(n) / span * step; {
	case e <= 0.15:
		step *= 10
	case e <= 0.35:
		step *= 5
	case e <= 0.75:
		step *= 2
	}

	return TickSpec{
		Start: math.Ceil(lo/step) * step,
		Stop:  math.Floor(hi/step)*step + step*0.5,
		Step:  step,
	}, nil
}

// Values materializes the progression Start, Start+Step, ... through
// Stop in ascending order. Values computes each tick by index rather
// than by accumulating Step, so long axes do not drift.
func (t TickSpec) Values() []float64 {
	if t.Step <= 0 {
		return nil
	}
	n := int(math.Floor((t.Stop-t.Start)/t.Step)) + 1
	if n <= 0 {
		return nil
	}
	return vec.Linspace(t.Start, t.Start+float64(n-1)*t.Step, n)
}
