// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data domains onto output coordinate ranges and
// computes "nice" axis tick marks for them.
package scale

// A scale satisfies Quantitative if it is an invertible mapping from
// a data domain onto an output coordinate range.
//
// Scale and Invert return the mapping as a function rather than
// mapping a single value so that a caller redrawing many points
// derives the mapping once and applies it per point.
type Quantitative interface {
	// Scale returns the forward mapping from a domain value to
	// its range coordinate.
	Scale() func(x float64) float64

	// Invert returns the inverse of Scale, mapping a range
	// coordinate back to a domain value.
	Invert() func(y float64) float64
}
