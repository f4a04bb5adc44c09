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

package simplecarb

import "math"

// physical constants
const (
	rGas   = 8.314    // J/mol/K
	rBar   = 83.14472 // cm³ bar/mol/K
	tRef   = 298.15   // K
	atmBar = 1.01325  // bar per atm
)

// pressureTerm holds the partial molar volume change of a reaction,
// ΔV = a0 + a1·t + a2·t² [cm³/mol] with t in °C (Millero, 1995).
type pressureTerm struct {
	a0, a1, a2 float64
}

// lnCorrection returns ln(K_P / K_1bar) at temperature temp [K] and total
// pressure p [bar], keeping only the partial molar volume term.
func (pt pressureTerm) lnCorrection(temp, p float64) float64 {
	t := temp - 273.15
	dv := pt.a0 + pt.a1*t + pt.a2*t*t
	return -dv / (rBar * temp) * (p - 1)
}

// Pressure coefficients from Millero (1995).
var (
	pK1      = pressureTerm{a0: -25.50, a1: 0.1271}
	pK2      = pressureTerm{a0: -15.82, a1: -0.0219}
	pKw      = pressureTerm{a0: -25.60, a1: 0.2324, a2: -0.0036246}
	pCalcite = pressureTerm{a0: -48.76, a1: 0.5304}

	// Partial molar volume of CO2(aq) (Weiss, 1974).
	pKH = pressureTerm{a0: 32.3}
)

// logKH returns the log10 of the Henry's law constant for CO2
// [mol kg⁻¹ bar⁻¹] (Plummer and Busenberg, 1982).
func logKH(temp, p float64) float64 {
	l := 108.3865 + 0.01985076*temp - 6919.53/temp - 40.45154*math.Log10(temp) + 669365/(temp*temp)
	return l - math.Log10(atmBar) + pKH.lnCorrection(temp, p)/math.Ln10
}

// logK1 returns the log10 of the first dissociation constant of carbonic
// acid (Plummer and Busenberg, 1982).
func logK1(temp, p float64) float64 {
	l := -356.3094 - 0.06091964*temp + 21834.37/temp + 126.8339*math.Log10(temp) - 1684915/(temp*temp)
	return l + pK1.lnCorrection(temp, p)/math.Ln10
}

// logK2 returns the log10 of the second dissociation constant of carbonic
// acid (Plummer and Busenberg, 1982).
func logK2(temp, p float64) float64 {
	l := -107.8871 - 0.03252849*temp + 5151.79/temp + 38.92561*math.Log10(temp) - 563713.9/(temp*temp)
	return l + pK2.lnCorrection(temp, p)/math.Ln10
}

// logKw returns the log10 of the ion product of water.
func logKw(temp, p float64) float64 {
	l := -4470.99/temp + 6.0875 - 0.01706*temp
	return l + pKw.lnCorrection(temp, p)/math.Ln10
}

// vantHoff returns log10 K at temp [K] given log10 K at 298.15 K and the
// standard reaction enthalpy dh [J/mol].
func vantHoff(logK25, dh, temp float64) float64 {
	return logK25 - dh/(rGas*math.Ln10)*(1/temp-1/tRef)
}

// mineral holds thermodynamic data for a mineral.
type mineral struct {
	name string

	// logK returns the log10 equilibrium constant at 1 bar.
	logK func(temp float64) float64

	// pressure is the pressure correction; nil for no correction.
	pressure *pressureTerm

	// Stoichiometry of the divalent cation and of SiO2 in the
	// dissolution reaction.
	cations, silica float64
}

// LogK returns the log10 equilibrium constant at temperature temp [K]
// and pressure p [bar].
func (m mineral) LogK(temp, p float64) float64 {
	l := m.logK(temp)
	if m.pressure != nil {
		l += m.pressure.lnCorrection(temp, p) / math.Ln10
	}
	return l
}

// Carbonates. The reactions are MCO3 = M+2 + CO3-2.
var (
	calcite = mineral{
		name: "Calcite",
		// Plummer and Busenberg (1982).
		logK: func(temp float64) float64 {
			return -171.9065 - 0.077993*temp + 2839.319/temp + 71.595*math.Log10(temp)
		},
		pressure: &pCalcite,
		cations:  1,
	}
	magnesite = mineral{
		name:     "Magnesite",
		logK:     func(temp float64) float64 { return vantHoff(-8.03, -25.8e3, temp) },
		pressure: &pCalcite,
		cations:  1,
	}
	siderite = mineral{
		name:     "Siderite",
		logK:     func(temp float64) float64 { return vantHoff(-10.89, -16.5e3, temp) },
		pressure: &pCalcite,
		cations:  1,
	}
)

// Silicates. The reactions are
// MνSiσO(ν+2σ) + 2ν H+ = ν M+2 + σ SiO2(aq) + ν H2O.
var (
	wollastonite = mineral{
		name:    "Wollastonite", // CaSiO3
		logK:    func(temp float64) float64 { return vantHoff(13.76, -76.6e3, temp) },
		cations: 1,
		silica:  1,
	}
	clinoEnstatite = mineral{
		name:    "Clino-Enstatite", // Mg2Si2O6
		logK:    func(temp float64) float64 { return vantHoff(22.68, -160.8e3, temp) },
		cations: 2,
		silica:  2,
	}
	fayalite = mineral{
		name:    "Fayalite", // Fe2SiO4
		logK:    func(temp float64) float64 { return vantHoff(19.11, -152.3e3, temp) },
		cations: 2,
		silica:  1,
	}
)

// logKAmorphousSilica returns the log10 solubility of amorphous silica,
// SiO2(am) = SiO2(aq) (Gunnarsson and Arnórsson, 2000).
func logKAmorphousSilica(temp float64) float64 {
	return -8.476 - 485.24/temp - 2.268e-6*temp*temp + 3.068*math.Log10(temp)
}
