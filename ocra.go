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

// Package ocra (Ocean Chemistry with Reaktoro And beyond) calculates
// ocean pH, carbonate compensation depths (CCDs), and stable mineral phases
// for a simplified seawater–mineral–atmosphere system in which the supply of
// divalent cations (Ca, Mg, or Fe) and silica is driven by continental
// weathering.
//
// The package sweeps parameter grids of atmospheric CO2 partial pressure,
// temperature, and total pressure, solving for chemical equilibrium at each
// grid point with an Engine. Engines live in their own packages; see
// github.com/spatialmodel/ocra/science/chem/simplecarb for the default one.
//
// Reference: Hakim et al. (2023) ApJL.
package ocra

// Version gives the version number.
const Version = "1.0.0"
