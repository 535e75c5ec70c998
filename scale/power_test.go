// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "testing"

func TestPowerScale(t *testing.T) {
	// Square-root scale: compresses the high end.
	s := NewPower([2]float64{0, 1}, [2]float64{0, 100}, 0.5)
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		0:    0,
		0.25: 50,
		1:    100,
	})
	wantFunc(t, "Invert", s.Invert(), map[float64]float64{
		0:   0,
		50:  0.25,
		100: 1,
	})

	s = NewPower([2]float64{0, 10}, [2]float64{0, 100}, 2)
	wantFunc(t, "Scale", s.Scale(), map[float64]float64{
		0:  0,
		5:  25,
		10: 100,
	})
}

func TestPowerTicks(t *testing.T) {
	// Tick generation comes from the underlying linear domain.
	s := NewPower([2]float64{0, 100}, [2]float64{0, 1}, 0.5)
	spec, err := s.Ticks(5)
	if err != nil {
		t.Fatal(err)
	}
	if want := (TickSpec{0, 110, 20}); spec != want {
		t.Errorf("Ticks(5) = %v, want %v", spec, want)
	}
}
