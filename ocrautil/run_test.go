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

package ocrautil

import (
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/ocra"
	"github.com/spatialmodel/ocra/science/chem/simplecarb"
)

// recorder is a report.Sink that keeps the results it receives.
type recorder struct {
	ph         []*ocra.PHResult
	analytical []*ocra.AnalyticalResult
	ccd        []*ocra.CCDResult
	phases     []*ocra.PhaseResult
}

func (r *recorder) PH(res *ocra.PHResult) error {
	r.ph = append(r.ph, res)
	return nil
}

func (r *recorder) PHAnalytical(res *ocra.AnalyticalResult) error {
	r.analytical = append(r.analytical, res)
	return nil
}

func (r *recorder) CCD(res *ocra.CCDResult) error {
	r.ccd = append(r.ccd, res)
	return nil
}

func (r *recorder) Phases(res *ocra.PhaseResult) error {
	r.phases = append(r.phases, res)
	return nil
}

func quiet() logrus.FieldLogger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

func TestPH(t *testing.T) {
	cfg := ocra.DefaultPHConfig()
	cfg.N = 5
	cfg.Log = quiet()

	t.Run("sweep", func(t *testing.T) {
		r := new(recorder)
		if err := PH(simplecarb.Engine{}, cfg, false, 1, r); err != nil {
			t.Fatal(err)
		}
		if len(r.ph) != 1 || len(r.analytical) != 0 {
			t.Fatalf("%d pH results, %d analytical results", len(r.ph), len(r.analytical))
		}
		if dims := r.ph[0].Grid.Dims(); dims[0] != len(ocra.Regimes) || dims[1] != 5 {
			t.Errorf("dims = %v", dims)
		}
	})
	t.Run("analytical", func(t *testing.T) {
		r := new(recorder)
		if err := PH(simplecarb.Engine{}, cfg, true, 1, r); err != nil {
			t.Fatal(err)
		}
		if len(r.ph) != 0 || len(r.analytical) != 1 {
			t.Fatalf("%d pH results, %d analytical results", len(r.ph), len(r.analytical))
		}
	})
	t.Run("analytical P", func(t *testing.T) {
		r := new(recorder)
		c := cfg
		c.Comparison = ocra.ByPressure
		if err := PH(simplecarb.Engine{}, c, true, 1, r); err != ErrAnalyticalComparison {
			t.Errorf("have %v, want %v", err, ErrAnalyticalComparison)
		}
		if len(r.ph)+len(r.analytical) != 0 {
			t.Error("no results should be reported")
		}
	})
	t.Run("analytical Mg", func(t *testing.T) {
		r := new(recorder)
		c := cfg
		c.System = ocra.Mg
		if err := PH(simplecarb.Engine{}, c, true, 1, r); err != ocra.ErrSystemNotSupported {
			t.Errorf("have %v, want %v", err, ocra.ErrSystemNotSupported)
		}
	})
}

func TestCCD(t *testing.T) {
	cfg := ocra.DefaultCCDConfig()
	cfg.NTemp, cfg.NPCO2, cfg.NPressure = 2, 3, 4
	cfg.Log = quiet()
	r := new(recorder)
	if err := CCD(simplecarb.Engine{}, cfg, r); err != nil {
		t.Fatal(err)
	}
	if len(r.ccd) != 1 {
		t.Fatalf("%d CCD results", len(r.ccd))
	}
	if rows, cols := r.ccd[0].CCD.Dims(); rows != 2 || cols != 3 {
		t.Errorf("CCD dims = %d×%d", rows, cols)
	}

	cfg.NPressure = 0
	r = new(recorder)
	if err := CCD(simplecarb.Engine{}, cfg, r); err != ocra.ErrBadCount {
		t.Errorf("have %v, want %v", err, ocra.ErrBadCount)
	}
	if len(r.ccd) != 0 {
		t.Error("no results should be reported")
	}
}

func TestPhases(t *testing.T) {
	cfg := ocra.DefaultPhaseConfig()
	cfg.System = ocra.Fe
	cfg.N = 6
	cfg.Log = quiet()
	r := new(recorder)
	if err := Phases(simplecarb.Engine{}, cfg, r); err != nil {
		t.Fatal(err)
	}
	if len(r.phases) != 1 || len(r.phases[0].Axis) != 6 {
		t.Fatalf("unexpected results %+v", r.phases)
	}
}

func TestPaper(t *testing.T) {
	for _, test := range []struct {
		name                        string
		systems                     []ocra.System
		ph, analytical, ccd, phases int
	}{
		{name: "all", systems: []ocra.System{ocra.Ca, ocra.Mg, ocra.Fe}, ph: 5, analytical: 1, ccd: 6, phases: 6},
		{name: "Ca", systems: []ocra.System{ocra.Ca}, ph: 3, analytical: 1, ccd: 2, phases: 2},
		{name: "Mg", systems: []ocra.System{ocra.Mg}, ph: 1, analytical: 0, ccd: 2, phases: 2},
	} {
		t.Run(test.name, func(t *testing.T) {
			r := new(recorder)
			cfg := PaperConfig{Systems: test.systems, Scale: 0.03, Log: quiet()}
			if err := Paper(simplecarb.Engine{}, cfg, r); err != nil {
				t.Fatal(err)
			}
			if len(r.ph) != test.ph || len(r.analytical) != test.analytical ||
				len(r.ccd) != test.ccd || len(r.phases) != test.phases {
				t.Errorf("results: %d pH, %d analytical, %d CCD, %d phases",
					len(r.ph), len(r.analytical), len(r.ccd), len(r.phases))
			}
			for i, c := range r.ccd {
				if want := paperSilica[i%len(paperSilica)]; c.NSiO2 != want {
					t.Errorf("CCD %d: nSiO2 = %g, want %g", i, c.NSiO2, want)
				}
				if rows, cols := c.CCD.Dims(); rows != 3 || cols != 3 {
					t.Errorf("CCD %d: dims = %d×%d", i, rows, cols)
				}
			}
			for _, p := range r.phases {
				if p.Temp != 310 {
					t.Errorf("phases temperature = %g", p.Temp)
				}
				if len(p.Axis) != 3 {
					t.Errorf("phases: %d points, want 3", len(p.Axis))
				}
			}
		})
	}
}

func TestPaper_invalid(t *testing.T) {
	r := new(recorder)
	if err := Paper(simplecarb.Engine{}, PaperConfig{Systems: []ocra.System{ocra.Ca}}, r); err != ocra.ErrBadCount {
		t.Errorf("have %v, want %v", err, ocra.ErrBadCount)
	}
	cfg := PaperConfig{Systems: []ocra.System{ocra.System(9)}, Scale: 1}
	if err := Paper(simplecarb.Engine{}, cfg, r); err != ocra.ErrUnknownSystem {
		t.Errorf("have %v, want %v", err, ocra.ErrUnknownSystem)
	}
}

func TestPaperConfig_scaled(t *testing.T) {
	cfg := PaperConfig{Scale: 0.5}
	for _, test := range []struct{ n, want int }{{100, 50}, {20, 10}, {1, 1}} {
		if have := cfg.scaled(test.n); have != test.want {
			t.Errorf("scaled(%d) = %d, want %d", test.n, have, test.want)
		}
	}
	cfg.Scale = 1e-3
	if have := cfg.scaled(20); have != 1 {
		t.Errorf("scaled(20) = %d, want 1", have)
	}
}
