// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/aclements/go-linechart/scale"
)

// A Tick is one labeled grid line on an axis.
type Tick struct {
	// Value is the data value the tick marks.
	Value float64

	// Coord is the tick's position in the chart's coordinate
	// space.
	Coord float64

	// Label is the formatted value.
	Label string
}

// YTicks returns approximately n labeled ticks for the value axis of
// a chart of the given height, in ascending value order.
func (c *LineChart) YTicks(n int, height float64) ([]Tick, error) {
	return c.axisTicks(n, c.YScale(height))
}

// XTicks returns approximately n labeled ticks for the column axis
// of a chart of the given width.
func (c *LineChart) XTicks(n int, width float64) ([]Tick, error) {
	return c.axisTicks(n, c.XScale(width))
}

func (c *LineChart) axisTicks(n int, s scale.Linear) ([]Tick, error) {
	spec, err := s.Ticks(n)
	if err != nil {
		return nil, err
	}
	f := s.Scale()
	vals := spec.Values()
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{Value: v, Coord: f(v), Label: c.formatValue(v)}
	}
	return ticks, nil
}

// formatValue renders a tick value, trimming trailing zeros. With
// ShortLabels set, magnitudes of 1000 and up get metric suffixes.
func (c *LineChart) formatValue(v float64) string {
	if c.ShortLabels && math.Abs(v) >= 1000 {
		return humanize.SI(v, "")
	}
	return humanize.Ftoa(v)
}
