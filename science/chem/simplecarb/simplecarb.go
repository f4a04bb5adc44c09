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

// Package simplecarb contains a simplified chemical-equilibrium engine
// for an ocean in contact with an atmosphere of fixed CO2 partial pressure.
// The solution is ideal (activities equal molalities), and its only solutes
// are a divalent cation, the carbonate system, hydroxide, and silica. The
// carbonate mineral, a silicate mineral, and amorphous silica precipitate
// when saturated.
//
// Equilibrium is found by bisection on log10[H+]. The charge balance
// 2[M+2] + [H+] = [HCO3-] + 2[CO3-2] + [OH-] fixes the free cation for a
// given [H+], and the cation mass balance then determines how much of the
// supplied cation is left in solution and how much precipitates.
package simplecarb

import (
	"fmt"
	"math"

	"github.com/spatialmodel/ocra"
)

// Engine fulfils the github.com/spatialmodel/ocra.Engine interface.
type Engine struct {
	// MaxIterations is the maximum number of bisection iterations.
	// If zero, 200 is used.
	MaxIterations int

	// Tolerance is the convergence tolerance in log10[H+].
	// If zero, 1e-12 is used.
	Tolerance float64
}

// Bounds of the bisection search in log10[H+].
const (
	logHMin = -16.
	logHMax = 1.
)

// jumpTolerance is the relative change in the residual across the final
// bisection interval above which the residual is treated as discontinuous.
const jumpTolerance = 1e-6

// Names of the species that are not specific to a system.
const (
	hPlus   = "H+"
	ohMinus = "OH-"
	sio2am  = "SiO2(am)"
)

var minerals = map[ocra.System]struct{ carbonate, silicate mineral }{
	ocra.Ca: {carbonate: calcite, silicate: wollastonite},
	ocra.Mg: {carbonate: magnesite, silicate: clinoEnstatite},
	ocra.Fe: {carbonate: siderite, silicate: fayalite},
}

// Prepare returns a solver for system s.
func (e Engine) Prepare(s ocra.System) (ocra.SolverContext, error) {
	m, ok := minerals[s]
	if !ok {
		return nil, ocra.ErrUnknownSystem
	}
	c := &Context{
		system:    s,
		carbonate: m.carbonate,
		silicate:  m.silicate,
		maxIter:   e.MaxIterations,
		tol:       e.Tolerance,
	}
	if c.maxIter == 0 {
		c.maxIter = 200
	}
	if c.tol == 0 {
		c.tol = 1e-12
	}
	return c, nil
}

// Context is a prepared chemical system. It fulfils the
// github.com/spatialmodel/ocra.SolverContext and ocra.Analytic
// interfaces. It is not modified by Solve.
type Context struct {
	system              ocra.System
	carbonate, silicate mineral
	maxIter             int
	tol                 float64
}

// constants holds equilibrium constants (not logarithms) at a
// given temperature and pressure.
type constants struct {
	kh, k1, k2, kw float64
	carbonate      float64
	silicate       float64
	amorphous      float64
}

func (c *Context) constants(temp, p float64) constants {
	return constants{
		kh:        math.Pow(10, logKH(temp, p)),
		k1:        math.Pow(10, logK1(temp, p)),
		k2:        math.Pow(10, logK2(temp, p)),
		kw:        math.Pow(10, logKw(temp, p)),
		carbonate: math.Pow(10, c.carbonate.LogK(temp, p)),
		silicate:  math.Pow(10, c.silicate.LogK(temp, p)),
		amorphous: math.Pow(10, logKAmorphousSilica(temp)),
	}
}

// Constants returns the equilibrium constants used in analytical
// approximations of pH at temperature temp [K] and pressure p [bar].
func (c *Context) Constants(temp, p float64) (ocra.EquilibriumConstants, error) {
	if !(temp > 0) || !(p > 0) {
		return ocra.EquilibriumConstants{}, fmt.Errorf("simplecarb: invalid conditions T=%g K, P=%g bar", temp, p)
	}
	return ocra.EquilibriumConstants{
		LogKH: logKH(temp, p),
		LogK1: logK1(temp, p),
		LogK2: logK2(temp, p),
		LogKw: logKw(temp, p),
	}, nil
}

// speciation holds the molalities of the species and the amounts
// of minerals per kg water.
type speciation struct {
	h, oh, co2, hco3, co3, m, sio2 float64
	carbonate, silicate, amorphous float64
}

// speciate calculates the speciation at log10[H+] == logH and returns
// it along with the charge-balance residual, which decreases
// monotonically with logH.
func (c *Context) speciate(k constants, comp ocra.Composition, logH float64) (speciation, float64) {
	var s speciation
	s.h = math.Pow(10, logH)
	s.co2 = k.kh * comp.PCO2
	s.hco3 = k.k1 * s.co2 / s.h
	s.co3 = k.k2 * s.hco3 / s.h
	s.oh = k.kw / s.h
	m := (s.hco3 + 2*s.co3 + s.oh - s.h) / 2

	// Silica in equilibrium with the silicate mineral at this m and [H+].
	var nSil float64
	nu, sigma := c.silicate.cations, c.silicate.silica
	if m > 0 && comp.SiO2Supply > 0 {
		sEq := math.Pow(k.silicate*math.Pow(s.h, 2*nu)/math.Pow(m, nu), 1/sigma)
		if sEq < k.amorphous && sEq < comp.SiO2Supply {
			nSil = (comp.SiO2Supply - sEq) / sigma
		}
	}
	capacity := comp.DIVSupply - nu*nSil // cation not held in silicate
	mFree := math.Min(capacity, k.carbonate/s.co3)

	s.m = math.Max(m, 0)
	s.silicate = nSil
	s.carbonate = math.Max(capacity-s.m, 0)
	s.sio2 = comp.SiO2Supply - sigma*nSil
	if s.sio2 > k.amorphous {
		s.amorphous = s.sio2 - k.amorphous
		s.sio2 = k.amorphous
	}
	return s, m - mFree
}

// coexist adjusts s for the case where the residual is discontinuous at
// the root. This happens at the onset of silicate precipitation, where the
// silicate and amorphous silica coexist at a fixed [H+] and the amount of
// silicate is set by the cation balance.
func (c *Context) coexist(k constants, comp ocra.Composition, s speciation) speciation {
	nu, sigma := c.silicate.cations, c.silicate.silica
	nMax := math.Max((comp.SiO2Supply-k.amorphous)/sigma, 0)
	n := math.Min(math.Max((comp.DIVSupply-s.m)/nu, 0), nMax)
	s.silicate = n
	s.carbonate = math.Max(comp.DIVSupply-nu*n-s.m, 0)
	s.sio2 = comp.SiO2Supply - sigma*n
	s.amorphous = 0
	if s.sio2 > k.amorphous {
		s.amorphous = s.sio2 - k.amorphous
		s.sio2 = k.amorphous
	}
	return s
}

func checkComposition(comp ocra.Composition) error {
	for _, v := range []struct {
		name     string
		val      float64
		positive bool
	}{
		{"DIVSupply", comp.DIVSupply, false},
		{"SiO2Supply", comp.SiO2Supply, false},
		{"PCO2", comp.PCO2, true},
		{"Temp", comp.Temp, true},
		{"TotalPressure", comp.TotalPressure, true},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) || v.val < 0 || (v.positive && v.val == 0) {
			return fmt.Errorf("simplecarb: invalid %s: %g", v.name, v.val)
		}
	}
	return nil
}

// Solve calculates the equilibrium state for the given composition.
func (c *Context) Solve(comp ocra.Composition) (ocra.State, error) {
	if err := checkComposition(comp); err != nil {
		return nil, err
	}
	k := c.constants(comp.Temp, comp.TotalPressure)

	lo, hi := logHMin, logHMax
	if _, r := c.speciate(k, comp, lo); !(r > 0) {
		return nil, fmt.Errorf("simplecarb: equilibrium not bracketed: residual %g at pH %g", r, -lo)
	}
	if _, r := c.speciate(k, comp, hi); !(r < 0) {
		return nil, fmt.Errorf("simplecarb: equilibrium not bracketed: residual %g at pH %g", r, -hi)
	}
	var i int
	for i = 0; i < c.maxIter && hi-lo > c.tol; i++ {
		mid := (lo + hi) / 2
		_, r := c.speciate(k, comp, mid)
		if math.IsNaN(r) {
			return nil, fmt.Errorf("simplecarb: invalid residual at pH %g", -mid)
		}
		if r > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	if hi-lo > c.tol {
		return nil, fmt.Errorf("simplecarb: did not converge after %d iterations", i)
	}
	logH := (lo + hi) / 2
	s, _ := c.speciate(k, comp, logH)
	_, rLo := c.speciate(k, comp, lo)
	_, rHi := c.speciate(k, comp, hi)
	if rLo-rHi > jumpTolerance*(comp.DIVSupply+s.m) {
		s = c.coexist(k, comp, s)
	}
	return &state{
		ph:      -logH,
		amounts: map[string]float64{
			hPlus:             s.h,
			ohMinus:           s.oh,
			ocra.CO2aq:        s.co2,
			ocra.HCO3:         s.hco3,
			ocra.CO3:          s.co3,
			ocra.SiO2aq:       s.sio2,
			sio2am:            s.amorphous,
			c.system.Cation(): s.m,
			c.carbonate.name:  s.carbonate,
			c.silicate.name:   s.silicate,
		},
	}, nil
}

// state fulfils the github.com/spatialmodel/ocra.State interface.
type state struct {
	ph      float64
	amounts map[string]float64
}

func (s *state) PH() float64 { return s.ph }

// Amount returns the molality of an aqueous species or the amount
// of a mineral per kg water [mol].
func (s *state) Amount(species string) (float64, error) {
	if s.amounts == nil {
		return math.NaN(), fmt.Errorf("simplecarb: state has been released")
	}
	v, ok := s.amounts[species]
	if !ok {
		return math.NaN(), fmt.Errorf("simplecarb: invalid species name %s", species)
	}
	return v, nil
}

func (s *state) Release() { s.amounts = nil }
