// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tickdump prints the axis ticks and point geometry a line
// chart would use for a series of values, given as arguments or on
// stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/aclements/go-linechart/chart"
)

func main() {
	var (
		flagTicks  = flag.Int("n", 5, "request approximately `count` axis ticks")
		flagWidth  = flag.Float64("w", 300, "chart `width`")
		flagHeight = flag.Float64("h", 200, "chart `height`")
		flagShort  = flag.Bool("short", false, "abbreviate large tick labels")
	)
	flag.Parse()

	vals, err := readValues(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	if len(vals) == 0 {
		log.Fatal("no values")
	}

	c := &chart.LineChart{
		Series:      []chart.Series{{Label: "series", Values: vals}},
		ShortLabels: *flagShort,
	}

	lo, hi, _ := c.Extent()
	fmt.Printf("%d columns, extent [%g, %g]\n", c.Columns(), lo, hi)

	ticks, err := c.YTicks(*flagTicks, *flagHeight)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("ticks:\n")
	for _, tick := range ticks {
		fmt.Printf("  %8s  y=%g\n", tick.Label, tick.Coord)
	}

	fmt.Printf("points:\n")
	for _, pt := range c.Points(*flagWidth, *flagHeight)[0] {
		fmt.Printf("  (%g, %g)\n", pt.X, pt.Y)
	}
}

func readValues(args []string) ([]float64, error) {
	parse := func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("bad value %q: %v", s, err)
		}
		return v, nil
	}

	if len(args) > 0 {
		vals := make([]float64, len(args))
		for i, a := range args {
			v, err := parse(a)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return vals, nil
	}

	var vals []float64
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		v, err := parse(scanner.Text())
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, scanner.Err()
}
