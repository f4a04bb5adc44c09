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
	"math"
)

// fakeEngine is an Engine whose states are simple functions of the
// composition, so that sweeps can be tested without solving for equilibrium.
type fakeEngine struct {
	prepared []System
	solved   []Composition

	// fail, if not nil, returns whether Solve should fail for c.
	fail func(c Composition) bool

	// carbonate, if not nil, returns the amount of carbonate mineral.
	carbonate func(c Composition) float64
}

var errFake = errors.New("fake solver failure")

func (e *fakeEngine) Prepare(s System) (SolverContext, error) {
	if !s.Valid() {
		return nil, ErrUnknownSystem
	}
	e.prepared = append(e.prepared, s)
	return &fakeContext{e: e, s: s}, nil
}

type fakeContext struct {
	e *fakeEngine
	s System
}

func (fc *fakeContext) Solve(c Composition) (State, error) {
	fc.e.solved = append(fc.e.solved, c)
	if fc.e.fail != nil && fc.e.fail(c) {
		return nil, errFake
	}
	carb := c.DIVSupply / 2
	if fc.e.carbonate != nil {
		carb = fc.e.carbonate(c)
	}
	return &fakeState{
		ph: -math.Log10(c.PCO2) + c.DIVSupply,
		amounts: map[string]float64{
			fc.s.Cation():    c.DIVSupply / 4,
			HCO3:             c.PCO2,
			CO3:              c.Temp,
			CO2aq:            c.TotalPressure,
			SiO2aq:           c.SiO2Supply,
			fc.s.Carbonate(): carb,
			fc.s.Silicate():  c.DIVSupply / 8,
		},
	}, nil
}

// Constants fulfils Analytic.
func (fc *fakeContext) Constants(temp, totalPressure float64) (EquilibriumConstants, error) {
	return EquilibriumConstants{LogKH: -1.5, LogK1: -6.4, LogK2: -10.3, LogKw: -14}, nil
}

type fakeState struct {
	ph       float64
	amounts  map[string]float64
	released bool
}

func (s *fakeState) PH() float64 { return s.ph }

func (s *fakeState) Amount(species string) (float64, error) {
	v, ok := s.amounts[species]
	if !ok {
		return 0, errors.New("no such species: " + species)
	}
	return v, nil
}

func (s *fakeState) Release() { s.released = true }

// noAnalytic wraps an Engine so that its contexts do not implement Analytic.
type noAnalytic struct{ Engine }

func (e noAnalytic) Prepare(s System) (SolverContext, error) {
	sc, err := e.Engine.Prepare(s)
	if err != nil {
		return nil, err
	}
	return struct{ SolverContext }{sc}, nil
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}
