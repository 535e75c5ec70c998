// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"
)

// aeq reports whether x and y are equal within a 1e-6 relative
// tolerance, with an absolute floor for comparisons against zero.
func aeq(x, y float64) bool {
	if x == y {
		return true
	}
	d := math.Abs(x - y)
	return d <= 1e-9 || d <= 1e-6*math.Max(math.Abs(x), math.Abs(y))
}

func wantFunc(t *testing.T, name string, f func(float64) float64, want map[float64]float64) {
	t.Helper()
	for in, out := range want {
		if got := f(in); !aeq(got, out) {
			t.Errorf("%s(%v) = %v, want %v", name, in, got, out)
		}
	}
}

func TestLinearScale(t *testing.T) {
	// 12 columns across a 300 pixel plot area.
	s := NewLinear([2]float64{0, 11}, [2]float64{0, 300})
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		0:    0,
		1:    300.0 / 11,
		5.5:  150,
		11:   300,
		-5.5: -150,
	})

	// A range that doesn't start at zero keeps its offset.
	s = NewLinear([2]float64{-10, 10}, [2]float64{100, 200})
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		-10: 100,
		0:   150,
		10:  200,
		20:  250,
	})

	// Reversed domain flips the mapping.
	s = NewLinear([2]float64{11, 0}, [2]float64{0, 300})
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		11:  0,
		5.5: 150,
		0:   300,
	})
}

func TestLinearEndpoints(t *testing.T) {
	s := NewLinear([2]float64{0, 11}, [2]float64{25, 300})
	f := s.Scale()
	if got := f(0); got != 25 {
		t.Errorf("Scale(0) = %v, want exactly 25", got)
	}
	if got := f(11); !aeq(got, 300) {
		t.Errorf("Scale(11) = %v, want 300", got)
	}
}

func TestLinearInvert(t *testing.T) {
	s := NewLinear([2]float64{0, 11}, [2]float64{0, 300})
	wantFunc(t, "Invert", s.Invert(), map[float64]float64{
		0:   0,
		150: 5.5,
		300: 11,
	})
}

func TestLinearRoundTrip(t *testing.T) {
	scales := []Linear{
		NewLinear([2]float64{0, 11}, [2]float64{0, 300}),
		NewLinear([2]float64{100, 407}, [2]float64{200, 0}),
		NewLinear([2]float64{-3, 7}, [2]float64{-50, 125}),
		NewLinear([2]float64{9.9989, 10}, [2]float64{0, 1}),
	}
	for _, s := range scales {
		f, g := s.Scale(), s.Invert()
		lo, hi := minmax(s.Domain[:])
		for i := 0; i <= 16; i++ {
			x := lo + (hi-lo)*float64(i)/16
			if got := g(f(x)); !aeq(got, x) {
				t.Errorf("%v: Invert(Scale(%v)) = %v", s, x, got)
			}
		}
	}
}

func TestLinearMonotonic(t *testing.T) {
	s := NewLinear([2]float64{100, 407}, [2]float64{0, 300})
	f := s.Scale()
	prev := f(100)
	for i := 1; i <= 100; i++ {
		x := 100 + 307*float64(i)/100
		y := f(x)
		if y < prev {
			t.Fatalf("Scale is decreasing at %v: %v < %v", x, y, prev)
		}
		prev = y
	}
}

func TestLinearDegenerate(t *testing.T) {
	// A zero-width domain maps every input to the low end of the
	// range.
	s := NewLinear([2]float64{5, 5}, [2]float64{0, 100})
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		-10: 0,
		5:   0,
		42:  0,
	})

	s = NewLinear([2]float64{5, 5}, [2]float64{20, 80})
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		5:  20,
		99: 20,
	})
}

func TestLinearLegacyInterpolation(t *testing.T) {
	// The legacy form computes Range[1]*t, so the low endpoint
	// lands at 0 instead of Range[0]. This deliberately deviates
	// from the corrected endpoint mapping.
	s := NewLinear([2]float64{0, 11}, [2]float64{100, 400})
	s.LegacyInterpolation = true
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		0:   0,
		5.5: 200,
		11:  400,
	})
	wantFunc(t, "Invert", s.Invert(), map[float64]float64{
		400: 11,
	})

	// With a zero-offset range the legacy and corrected forms
	// agree.
	s = NewLinear([2]float64{0, 11}, [2]float64{0, 300})
	s.LegacyInterpolation = true
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		0:   0,
		5.5: 150,
		11:  300,
	})
}

func TestLinearClamp(t *testing.T) {
	s := NewLinear([2]float64{0, 10}, [2]float64{0, 100})
	s.Clamp = true
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		-5: 0,
		5:  50,
		15: 100,
	})

	// Clamping respects a descending range.
	s = NewLinear([2]float64{0, 10}, [2]float64{100, 0})
	s.Clamp = true
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		-5: 100,
		5:  50,
		15: 0,
	})
}

func TestLinearNice(t *testing.T) {
	s := NewLinear([2]float64{100, 407}, [2]float64{0, 300})
	n, err := s.Nice(5)
	if err != nil {
		t.Fatal(err)
	}
	if n.Domain != [2]float64{100, 450} {
		t.Errorf("Nice(5).Domain = %v, want [100 450]", n.Domain)
	}

	// Already-nice bounds are unchanged.
	s = NewLinear([2]float64{0, 100}, [2]float64{0, 1})
	n, err = s.Nice(5)
	if err != nil {
		t.Fatal(err)
	}
	if n.Domain != [2]float64{0, 100} {
		t.Errorf("Nice(5).Domain = %v, want [0 100]", n.Domain)
	}

	// Reversed domains stay reversed.
	s = NewLinear([2]float64{407, 100}, [2]float64{0, 300})
	n, err = s.Nice(5)
	if err != nil {
		t.Fatal(err)
	}
	if n.Domain != [2]float64{450, 100} {
		t.Errorf("Nice(5).Domain = %v, want [450 100]", n.Domain)
	}

	if _, err := s.Nice(0); err != ErrTickCount {
		t.Errorf("Nice(0) error = %v, want ErrTickCount", err)
	}
}
