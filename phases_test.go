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

import "testing"

func TestPhaseSweep(t *testing.T) {
	for _, s := range []System{Ca, Mg, Fe} {
		t.Run(s.String(), func(t *testing.T) {
			e := &fakeEngine{}
			cfg := DefaultPhaseConfig()
			cfg.System = s
			cfg.N = 5
			r, err := PhaseSweep(e, cfg)
			if err != nil {
				t.Fatal(err)
			}
			cols := r.Columns()
			if cols[0] != s.CationLabel() || cols[1] != s.Carbonate() || cols[2] != SilicatesLabel {
				t.Errorf("columns %v", cols)
			}
			for j, c := range e.solved {
				if c.Temp != 310 || c.TotalPressure != 1 || c.PCO2 != r.Axis[j] {
					t.Errorf("point %d: %+v", j, c)
				}
				if r.Cation[j] != c.DIVSupply/4 {
					t.Errorf("cation %d: %g", j, r.Cation[j])
				}
				if r.Carbonate[j] != c.DIVSupply/2 {
					t.Errorf("carbonate %d: %g", j, r.Carbonate[j])
				}
				if want := s.SilicateCations() * c.DIVSupply / 8; r.Silicates[j] != want {
					t.Errorf("silicates %d: %g, want %g", j, r.Silicates[j], want)
				}
			}
			if len(e.solved) != 5 {
				t.Errorf("solved %d points", len(e.solved))
			}
		})
	}
}

func TestPhaseSweep_errors(t *testing.T) {
	cfg := DefaultPhaseConfig()
	cfg.N = -1
	if _, err := PhaseSweep(&fakeEngine{}, cfg); err != ErrBadCount {
		t.Errorf("have %v, want %v", err, ErrBadCount)
	}
	cfg = DefaultPhaseConfig()
	cfg.N = 3
	_, err := PhaseSweep(&fakeEngine{fail: func(Composition) bool { return true }}, cfg)
	if serr, ok := err.(*SolveError); !ok || serr.Point[0].Axis != "PCO2" || serr.Point[0].Index != 0 {
		t.Errorf("have %v", err)
	}
}
