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

// Package weathering contains a power-law parameterization of the
// dependence of continental weathering fluxes on atmospheric CO2
// and surface temperature.
package weathering

import "math"

// R is the ideal gas constant [J/mol/K].
const R = 8.314

// Params holds the parameters of the weathering relation.
type Params struct {
	// W0 is the weathering flux at the reference conditions, expressed
	// as a solute concentration in the ocean [mol/m³].
	W0 float64

	PCO2Ref float64 // reference CO2 partial pressure [bar]
	TempRef float64 // reference temperature [K]

	// Ea is the apparent activation energy of silicate
	// weathering [J/mol].
	Ea float64
}

// Default holds the default parameters: a present-day flux that
// supplies 10 mol/m³ of cations at 280 μbar and 288 K, with a 41 kJ/mol
// activation energy.
var Default = Params{
	W0:      10,
	PCO2Ref: 280e-6,
	TempRef: 288,
	Ea:      41e3,
}

// Scaling returns the weathering flux [mol/m³] at CO2 partial pressure
// pco2 [bar] and temperature temp [K], where beta is the power-law
// exponent on the CO2 dependence:
//
//	W = W0 (pco2/PCO2Ref)^β exp(-Ea/R (1/temp - 1/TempRef))
func (p Params) Scaling(pco2, temp, beta float64) float64 {
	return p.W0 * math.Pow(pco2/p.PCO2Ref, beta) *
		math.Exp(-p.Ea/R*(1/temp-1/p.TempRef))
}
