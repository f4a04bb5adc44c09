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
	"errors"
	"testing"

	"github.com/spatialmodel/ocra/science/hydrostatic"
)

func identity(p float64) float64 { return p }

func TestExtractCCD(t *testing.T) {
	pressures := []float64{1, 10, 100, 1000}
	for _, test := range []struct {
		name      string
		amounts   []float64
		lowCutoff float64
		want      float64
	}{
		{name: "crossing", amounts: []float64{1, 0.5, 0.0009, 0.0001}, lowCutoff: 0.01, want: 100},
		{name: "first crossing", amounts: []float64{1, 0.0001, 0.5, 0.0001}, lowCutoff: 0.01, want: 10},
		{name: "no surface carbonate", amounts: []float64{0.001, 0, 0, 0}, lowCutoff: 0.01, want: CCDFloor},
		{name: "never dissolves", amounts: []float64{1, 1, 1, 0.5}, lowCutoff: 0.01, want: CCDCeiling},
		{name: "exactly at fraction", amounts: []float64{1, 0.001, 0.001, 0}, lowCutoff: 0.01, want: 1000},
		{name: "empty", want: CCDFloor},
	} {
		t.Run(test.name, func(t *testing.T) {
			p := pressures
			if test.amounts == nil {
				p = nil
			}
			have := ExtractCCD(p, test.amounts, test.lowCutoff, identity)
			if have != test.want {
				t.Errorf("have %g, want %g", have, test.want)
			}
		})
	}
}

func TestExtractCCD_depth(t *testing.T) {
	have := ExtractCCD([]float64{1, 100}, []float64{1, 0}, DefaultLowCutoff, hydrostatic.Ocean.Depth)
	want := hydrostatic.Ocean.Depth(100)
	if have != want {
		t.Errorf("have %g, want %g", have, want)
	}
}

func TestExtractCCD_lengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	ExtractCCD([]float64{1, 2}, []float64{1}, 0, identity)
}

func TestCCDSweep(t *testing.T) {
	// Carbonate dissolves below 100 bar, except at the lowest PCO2 where
	// none forms.
	e := &fakeEngine{
		carbonate: func(c Composition) float64 {
			if c.PCO2 == PCO2Min {
				return 0
			}
			if c.TotalPressure > 100 {
				return 0
			}
			return 1
		},
	}
	cfg := DefaultCCDConfig()
	cfg.System = Mg
	cfg.NTemp, cfg.NPCO2, cfg.NPressure = 3, 4, 5
	cfg.Depth = identity
	r, err := CCDSweep(e, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(e.prepared) != 1 || e.prepared[0] != Mg {
		t.Errorf("prepared %v", e.prepared)
	}
	if len(e.solved) != 3*4*5 {
		t.Errorf("solved %d points, want %d", len(e.solved), 3*4*5)
	}
	// Solving order is temperature, then PCO2, then pressure.
	for n, c := range e.solved {
		k, i, j := n/20, (n/5)%4, n%5
		if c.Temp != r.Temps[k] || c.PCO2 != r.PCO2s[i] || c.TotalPressure != r.Pressures[j] {
			t.Fatalf("point %d: %+v", n, c)
		}
	}
	rows, cols := r.CCD.Dims()
	if rows != 3 || cols != 4 {
		t.Fatalf("CCD dims %d×%d", rows, cols)
	}
	// The first pressure above 100 bar in the 5-point grid.
	var want float64
	for _, p := range r.Pressures {
		if p > 100 {
			want = p
			break
		}
	}
	for k := 0; k < rows; k++ {
		if v := r.CCD.At(k, 0); v != CCDFloor {
			t.Errorf("T %d, lowest PCO2: CCD %g, want %g", k, v, CCDFloor)
		}
		for i := 1; i < cols; i++ {
			if v := r.CCD.At(k, i); v != want {
				t.Errorf("T %d, PCO2 %d: CCD %g, want %g", k, i, v, want)
			}
		}
	}
	if d := r.Carbonate.Dims(); len(d) != 3 || d[0] != 3 || d[1] != 4 || d[2] != 5 {
		t.Errorf("carbonate grid dims %v", d)
	}
}

func TestCCDSweep_ceiling(t *testing.T) {
	e := &fakeEngine{carbonate: func(Composition) float64 { return 1 }}
	cfg := DefaultCCDConfig()
	cfg.NTemp, cfg.NPCO2, cfg.NPressure = 2, 2, 2
	r, err := CCDSweep(e, cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range r.CCD.RawMatrix().Data {
		if v != CCDCeiling {
			t.Errorf("CCD %g, want %g", v, CCDCeiling)
		}
	}
}

func TestCCDSweep_compositionPerCell(t *testing.T) {
	e := &fakeEngine{}
	cfg := DefaultCCDConfig()
	cfg.NTemp, cfg.NPCO2, cfg.NPressure = 2, 2, 3
	if _, err := CCDSweep(e, cfg); err != nil {
		t.Fatal(err)
	}
	// The supply only depends on temperature and PCO2.
	for n := 0; n < len(e.solved); n += 3 {
		for j := 1; j < 3; j++ {
			if e.solved[n+j].DIVSupply != e.solved[n].DIVSupply || e.solved[n+j].SiO2Supply != e.solved[n].SiO2Supply {
				t.Errorf("supply changes with pressure: %+v, %+v", e.solved[n], e.solved[n+j])
			}
		}
	}
}

func TestCCDSweep_errors(t *testing.T) {
	cfg := DefaultCCDConfig()
	cfg.NPressure = 0
	e := &fakeEngine{}
	if _, err := CCDSweep(e, cfg); err != ErrBadCount {
		t.Errorf("have %v, want %v", err, ErrBadCount)
	}
	cfg = DefaultCCDConfig()
	cfg.System = 0
	if _, err := CCDSweep(e, cfg); err != ErrUnknownSystem {
		t.Errorf("have %v, want %v", err, ErrUnknownSystem)
	}
	if len(e.prepared) != 0 {
		t.Errorf("engine prepared after usage error")
	}

	cfg = DefaultCCDConfig()
	cfg.NTemp, cfg.NPCO2, cfg.NPressure = 2, 2, 2
	e = &fakeEngine{fail: func(c Composition) bool { return c.TotalPressure == PressureMax }}
	_, err := CCDSweep(e, cfg)
	serr, ok := err.(*SolveError)
	if !ok {
		t.Fatalf("have %v, want *SolveError", err)
	}
	if !errors.Is(err, errFake) {
		t.Errorf("underlying error %v", serr.Err)
	}
	if len(serr.Point) != 3 || serr.Point[2].Axis != "P" || serr.Point[2].Index != 1 {
		t.Errorf("point %v", serr.Point)
	}
	if len(e.solved) != 2 {
		t.Errorf("sweep continued after failure: %d points solved", len(e.solved))
	}
}
