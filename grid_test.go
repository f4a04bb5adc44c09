/*
Copyright © 2023 the OCRA authors.
This file is part of OCRA.

OCRA is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

OCRA is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with OCRA.  If not, see <http://www.gnu.org/licenses/>.
*/

package ocra

import (
	"math"
	"testing"
)

func TestAxes(t *testing.T) {
	for _, test := range []struct {
		name     string
		f        func(int) Axis
		min, max float64
	}{
		{"temperature", TemperatureAxis, 273.16, 372.16},
		{"PCO2", PCO2Axis, 1e-8, math.Pow(10, -0.5)},
		{"pressure", PressureAxis, 1, 5000},
	} {
		t.Run(test.name, func(t *testing.T) {
			for _, n := range []int{2, 10, 100} {
				a := test.f(n)
				if len(a) != n {
					t.Fatalf("length %d != %d", len(a), n)
				}
				if a[0] != test.min || a[n-1] != test.max {
					t.Errorf("n=%d: bounds [%g, %g], want [%g, %g]", n, a[0], a[n-1], test.min, test.max)
				}
				for i := 1; i < n; i++ {
					if a[i] <= a[i-1] {
						t.Errorf("n=%d: not increasing at %d: %g <= %g", n, i, a[i], a[i-1])
					}
				}
			}
			if a := test.f(1); len(a) != 1 || a[0] != test.min {
				t.Errorf("n=1: have %v, want [%g]", a, test.min)
			}
			if a := test.f(0); len(a) != 0 {
				t.Errorf("n=0: have %v", a)
			}
		})
	}
}

func TestLogAxis(t *testing.T) {
	a := LogAxis(1e-4, 1, 5)
	want := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1}
	for i, v := range want {
		if different(a[i], v, 1e-12) {
			t.Errorf("%d: have %g, want %g", i, a[i], v)
		}
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic for a zero bound")
			}
		}()
		LogAxis(0, 1, 5)
	}()

	p := PCO2Axis(5)
	if len(p) != 5 || different(p[0], PCO2Min, 1e-12) || different(p[4], PCO2Max, 1e-12) {
		t.Fatalf("PCO2 axis %v", p)
	}
	step := math.Log10(p[1]) - math.Log10(p[0])
	for i := 1; i < len(p)-1; i++ {
		if d := math.Log10(p[i+1]) - math.Log10(p[i]); math.Abs(d-step) > 1e-9 {
			t.Errorf("PCO2 axis step %d: have %g, want %g", i, d, step)
		}
	}
}

func TestLinearAxis(t *testing.T) {
	a := LinearAxis(0, 1, 5)
	want := Axis{0, 0.25, 0.5, 0.75, 1}
	for i, v := range want {
		if math.Abs(a[i]-v) > 1e-15 {
			t.Errorf("%d: have %g, want %g", i, a[i], v)
		}
	}
}
