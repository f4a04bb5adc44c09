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

import "errors"

// Composition holds the inputs to a single equilibrium calculation.
type Composition struct {
	// DIVSupply is the supply of divalent cations in the units used
	// by the Engine [mol/kg water].
	DIVSupply float64

	// SiO2Supply is the supply of silica [mol/kg water].
	SiO2Supply float64

	PCO2          float64 // surface CO2 partial pressure [bar]
	Temp          float64 // temperature [K]
	TotalPressure float64 // total pressure [bar]
}

// State is the result of an equilibrium calculation.
type State interface {
	// PH returns the pH of the solution.
	PH() float64

	// Amount returns the molar amount of the named aqueous species
	// or mineral, or an error if the species is not part of the system.
	Amount(species string) (float64, error)

	// Release frees any resources held by the State. The State
	// should not be used afterwards.
	Release()
}

// SolverContext is a prepared chemical system for a single
// divalent-cation system. It must be safe to call Solve repeatedly
// with different compositions.
type SolverContext interface {
	Solve(c Composition) (State, error)
}

// Engine is an interface for chemical-equilibrium engines.
type Engine interface {
	// Prepare sets up the chemical system, species, and solver for
	// system s. It is called once per sweep.
	Prepare(s System) (SolverContext, error)
}

// EquilibriumConstants holds base-10 logarithms of the equilibrium
// constants used in analytical pH approximations.
type EquilibriumConstants struct {
	LogKH float64 // CO2(g) = CO2(aq) [mol kg⁻¹ bar⁻¹]
	LogK1 float64 // CO2(aq) + H2O = HCO3- + H+
	LogK2 float64 // HCO3- = CO3-2 + H+
	LogKw float64 // H2O = H+ + OH-
}

// Analytic is implemented by SolverContexts that can provide the
// equilibrium constants used in analytical pH approximations.
type Analytic interface {
	Constants(temp, totalPressure float64) (EquilibriumConstants, error)
}

// ErrNoAnalytical is returned when analytical pH is requested from a
// SolverContext that does not implement Analytic.
var ErrNoAnalytical = errors.New("ocra: equilibrium engine does not provide analytical constants")

// solvePoint solves for equilibrium at composition c and extracts the
// species of system s. The State is released before returning.
func solvePoint(s System, sc SolverContext, c Composition) (map[string]float64, error) {
	st, err := sc.Solve(c)
	if err != nil {
		return nil, err
	}
	defer st.Release()
	return s.Extract(st)
}
