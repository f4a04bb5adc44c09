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
	"fmt"
	"math"
)

// System identifies one of the divalent-cation carbonate systems.
// The zero value is not a valid system.
type System int

// The supported divalent-cation systems.
const (
	Ca System = iota + 1
	Mg
	Fe
)

// ErrUnknownSystem is returned when a divalent-cation system other than
// Ca, Mg, or Fe is requested.
var ErrUnknownSystem = errors.New(`ocra: unknown divalent-cation system; valid options are "Ca", "Mg", and "Fe"`)

// Names of species that are reported for every system, in addition to
// the system-specific cation and minerals.
const (
	PH     = "pH"
	HCO3   = "HCO3-"
	CO3    = "CO3-2"
	CO2aq  = "CO2(aq)"
	SiO2aq = "SiO2(aq)"
)

// systemInfo holds the species names and constants that distinguish
// one divalent-cation system from another.
type systemInfo struct {
	name      string
	cation    string // free cation species name
	label     string // free cation label for tables and figures
	carbonate string // carbonate mineral
	silicate  string // silicate mineral

	// silicateCations is the number of divalent cations per formula unit
	// of the silicate mineral.
	silicateCations float64
}

var systems = map[System]systemInfo{
	Ca: {name: "Ca", cation: "Ca+2", label: "Ca++", carbonate: "Calcite", silicate: "Wollastonite", silicateCations: 1},
	Mg: {name: "Mg", cation: "Mg+2", label: "Mg++", carbonate: "Magnesite", silicate: "Clino-Enstatite", silicateCations: 2},
	Fe: {name: "Fe", cation: "Fe+2", label: "Fe++", carbonate: "Siderite", silicate: "Fayalite", silicateCations: 2},
}

// ParseSystem returns the System corresponding to name, which should
// be "Ca", "Mg", or "Fe".
func ParseSystem(name string) (System, error) {
	for s, info := range systems {
		if info.name == name {
			return s, nil
		}
	}
	return 0, ErrUnknownSystem
}

func (s System) info() systemInfo {
	info, ok := systems[s]
	if !ok {
		panic(fmt.Errorf("ocra: invalid system %d", int(s)))
	}
	return info
}

// Valid returns whether s is one of the supported systems.
func (s System) Valid() bool {
	_, ok := systems[s]
	return ok
}

func (s System) String() string {
	if !s.Valid() {
		return fmt.Sprintf("System(%d)", int(s))
	}
	return s.info().name
}

// Cation returns the name of the free divalent cation species, e.g. "Ca+2".
func (s System) Cation() string { return s.info().cation }

// CationLabel returns the label used for the free cation in tables and figures.
func (s System) CationLabel() string { return s.info().label }

// Carbonate returns the name of the carbonate mineral, e.g. "Calcite".
func (s System) Carbonate() string { return s.info().carbonate }

// Silicate returns the name of the silicate mineral, e.g. "Wollastonite".
func (s System) Silicate() string { return s.info().silicate }

// SilicateCations returns the number of divalent cations per formula unit
// of the silicate mineral: 1 for Wollastonite and 2 for Clino-Enstatite
// and Fayalite.
func (s System) SilicateCations() float64 { return s.info().silicateCations }

// Species returns the names of the species extracted from each
// equilibrium state of system s. "pH" is always first.
func (s System) Species() []string {
	info := s.info()
	return []string{PH, info.cation, HCO3, CO3, CO2aq, SiO2aq, info.carbonate, info.silicate}
}

// Extract pulls the amounts of all of the species in s.Species() out
// of st.
func (s System) Extract(st State) (map[string]float64, error) {
	species := s.Species()
	o := make(map[string]float64, len(species))
	o[PH] = st.PH()
	if math.IsNaN(o[PH]) {
		return nil, fmt.Errorf("ocra: %s equilibrium state has undefined pH", s)
	}
	for _, sp := range species[1:] {
		v, err := st.Amount(sp)
		if err != nil {
			return nil, fmt.Errorf("ocra: extracting %s: %v", sp, err)
		}
		o[sp] = v
	}
	return o, nil
}
