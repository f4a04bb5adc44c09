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

import "github.com/spatialmodel/ocra/science/weathering"

// NumDensity converts a weathering flux expressed as a solute
// concentration [mol/m³] into the supply units used by the
// equilibrium engines [mol/kg water].
const NumDensity = 1000.

// Special values of the weathering exponent β.
const (
	// NoWeathering turns off the supply of cations and silica.
	NoWeathering = -1.

	// ConstantSupply supplies ConstantDIVSupply of cations and no
	// silica, independent of PCO2 and temperature.
	ConstantSupply = 0.
)

// ConstantDIVSupply is the cation supply used when β == ConstantSupply
// [mol/kg water].
const ConstantDIVSupply = 1e-2

// Regimes are the weathering exponents swept in pH calculations:
// no weathering, constant supply, and power-law weathering.
var Regimes = []float64{NoWeathering, ConstantSupply, 0.3}

// WeatheringFunc returns the weathering flux [mol/m³] at CO2 partial
// pressure pco2 [bar] and temperature temp [K] for power-law
// exponent beta.
type WeatheringFunc func(pco2, temp, beta float64) float64

// DefaultWeathering is the WeatheringFunc used when none is specified.
var DefaultWeathering WeatheringFunc = weathering.Default.Scaling

// Scale returns the supply of divalent cations and silica [mol/kg water]
// at pco2 [bar] and temp [K]. beta == -1 means no weathering and
// beta == 0 means a constant supply of cations; any other value of beta
// is passed to w as the power-law exponent. nDIV and nSiO2 multiply the
// cation supply and the silica-to-cation supply ratio, respectively,
// and only apply to the power-law case.
func Scale(pco2, temp, beta, nDIV, nSiO2 float64, w WeatheringFunc) (div, sio2 float64) {
	if beta == NoWeathering {
		return 0, 0
	} else if beta == ConstantSupply {
		return ConstantDIVSupply, 0
	}
	div = nDIV * w(pco2, temp, beta) / NumDensity
	sio2 = nSiO2 * div
	return div, sio2
}
