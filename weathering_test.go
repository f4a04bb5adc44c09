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

func TestScale(t *testing.T) {
	w := func(pco2, temp, beta float64) float64 { return 1000 * pco2 * temp * beta }
	for _, test := range []struct {
		name                          string
		pco2, temp, beta, nDIV, nSiO2 float64
		div, sio2                     float64
	}{
		{name: "no weathering", pco2: 1e-3, temp: 288, beta: -1, nDIV: 5, nSiO2: 5, div: 0, sio2: 0},
		{name: "constant", pco2: 1e-3, temp: 288, beta: 0, nDIV: 5, nSiO2: 5, div: 1e-2, sio2: 0},
		{name: "power law", pco2: 1e-3, temp: 300, beta: 0.5, nDIV: 2, nSiO2: 3, div: 2 * 0.15, sio2: 3 * 2 * 0.15},
		{name: "no silica", pco2: 1e-3, temp: 300, beta: 0.5, nDIV: 1, nSiO2: 0, div: 0.15, sio2: 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			div, sio2 := Scale(test.pco2, test.temp, test.beta, test.nDIV, test.nSiO2, w)
			if math.Abs(div-test.div) > 1e-12 || math.Abs(sio2-test.sio2) > 1e-12 {
				t.Errorf("have (%g, %g), want (%g, %g)", div, sio2, test.div, test.sio2)
			}
		})
	}
}

func TestScale_default(t *testing.T) {
	// The default weathering relation supplies 10 mol/m³ at the
	// reference conditions.
	div, sio2 := Scale(280e-6, 288, 0.3, 1, 1, DefaultWeathering)
	if different(div, 10/NumDensity, 1e-12) || different(sio2, div, 1e-12) {
		t.Errorf("have (%g, %g)", div, sio2)
	}
	// Weathering increases with PCO2 and temperature.
	hiC, _ := Scale(1e-2, 288, 0.3, 1, 1, DefaultWeathering)
	hiT, _ := Scale(280e-6, 310, 0.3, 1, 1, DefaultWeathering)
	if hiC <= div || hiT <= div {
		t.Errorf("weathering does not increase: %g, %g, %g", div, hiC, hiT)
	}
}

func TestRegimes(t *testing.T) {
	want := []float64{NoWeathering, ConstantSupply, 0.3}
	if len(Regimes) != len(want) {
		t.Fatalf("have %v, want %v", Regimes, want)
	}
	for i, r := range Regimes {
		if r != want[i] {
			t.Errorf("regime %d: have %g, want %g", i, r, want[i])
		}
	}
}
