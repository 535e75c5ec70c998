// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart computes the geometry of line charts: scaled point
// positions, axis ticks, and pointer hit-testing. It owns no pixels
// and performs no drawing; a rendering layer supplies the plot
// dimensions and draws the result.
package chart

import (
	"math"

	"github.com/aclements/go-moremath/vec"

	"github.com/aclements/go-linechart/scale"
)

// A Series is one line of a chart. Values are plotted at equally
// spaced columns 0, 1, ... len(Values)-1.
type Series struct {
	Label  string
	Values []float64
}

// A LineChart plots one or more series over a shared pair of axes.
// The horizontal axis is the column index; the vertical axis spans
// the extent of the values across all series.
type LineChart struct {
	Series []Series

	// ShortLabels abbreviates large tick labels with metric
	// suffixes ("12.5 k" instead of "12500").
	ShortLabels bool
}

// A Point is a position in the chart's output coordinate space.
type Point struct {
	X, Y float64
}

// Columns returns the number of columns, which is the length of the
// longest series.
func (c *LineChart) Columns() int {
	n := 0
	for _, s := range c.Series {
		if len(s.Values) > n {
			n = len(s.Values)
		}
	}
	return n
}

// Extent returns the minimum and maximum value across all series.
// ok is false if the chart has no values.
func (c *LineChart) Extent() (lo, hi float64, ok bool) {
	for _, s := range c.Series {
		if len(s.Values) == 0 {
			continue
		}
		slo, shi := minmax(s.Values)
		if !ok {
			lo, hi, ok = slo, shi, true
			continue
		}
		lo, hi = math.Min(lo, slo), math.Max(hi, shi)
	}
	return
}

// XScale returns the scale mapping column indices onto [0, width].
// Charts with a single column collapse to coordinate 0.
func (c *LineChart) XScale(width float64) scale.Linear {
	last := float64(c.Columns() - 1)
	if last < 0 {
		last = 0
	}
	return scale.NewLinear([2]float64{0, last}, [2]float64{0, width})
}

// YScale returns the scale mapping the value extent onto [height, 0].
// The range is descending because chart coordinates grow downward
// from a top-left origin.
func (c *LineChart) YScale(height float64) scale.Linear {
	lo, hi, ok := c.Extent()
	if !ok {
		lo, hi = 0, 1
	}
	return scale.NewLinear([2]float64{lo, hi}, [2]float64{height, 0})
}

// Points returns each series as a polyline in the chart's coordinate
// space. It derives one mapping per axis and applies it across every
// column.
func (c *LineChart) Points(width, height float64) [][]Point {
	fx := c.XScale(width).Scale()
	fy := c.YScale(height).Scale()
	out := make([][]Point, len(c.Series))
	for i, s := range c.Series {
		n := len(s.Values)
		xs := vec.Map(fx, vec.Linspace(0, float64(n-1), n))
		ys := vec.Map(fy, s.Values)
		pts := make([]Point, n)
		for j := range pts {
			pts[j] = Point{xs[j], ys[j]}
		}
		out[i] = pts
	}
	return out
}

// IndexAt resolves a pointer x coordinate to the nearest column
// index, clamped to the chart's columns. ok is false if the chart is
// empty. This is the hit-testing half of the scale: invert the pixel
// position, round to a column, clamp.
func (c *LineChart) IndexAt(x, width float64) (col int, ok bool) {
	n := c.Columns()
	if n == 0 {
		return 0, false
	}
	col = int(math.Round(c.XScale(width).Invert()(x)))
	if col < 0 {
		col = 0
	} else if col >= n {
		col = n - 1
	}
	return col, true
}

func minmax(xs []float64) (min float64, max float64) {
	min, max = xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}
