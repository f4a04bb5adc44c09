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

import "github.com/sirupsen/logrus"

// SilicatesLabel is the label of the silicate column in phase results.
const SilicatesLabel = "Silicates"

// PhaseConfig holds the configuration for stable-phase sweeps.
type PhaseConfig struct {
	System System

	Temp          float64 // K
	TotalPressure float64 // bar

	Beta  float64 // weathering exponent
	NDIV  float64 // weathering multiplier
	NSiO2 float64 // silica-to-cation supply ratio

	N int // number of PCO2 values

	Weathering WeatheringFunc
	Log        logrus.FieldLogger
}

// DefaultPhaseConfig returns the default stable-phase configuration:
// the Ca system at 310 K and 1 bar with power-law weathering.
func DefaultPhaseConfig() PhaseConfig {
	return PhaseConfig{
		System:        Ca,
		Temp:          310,
		TotalPressure: 1,
		Beta:          0.3,
		NDIV:          1,
		NSiO2:         1,
		N:             20,
	}
}

func (cfg *PhaseConfig) check() error {
	if !cfg.System.Valid() {
		return ErrUnknownSystem
	}
	if cfg.N < 1 {
		return ErrBadCount
	}
	return nil
}

// PhaseResult holds the amounts of the stable phases as a function of PCO2.
type PhaseResult struct {
	System            System
	Beta, NDIV, NSiO2 float64

	Temp          float64 // K
	TotalPressure float64 // bar

	Axis Axis // PCO2 [bar]

	Cation    []float64 // free divalent cation [mol]
	Carbonate []float64 // carbonate mineral [mol]

	// Silicates is the amount of divalent cations held in the silicate
	// mineral [mol], i.e. the silicate amount multiplied by
	// System.SilicateCations().
	Silicates []float64

	// Grid holds all of the species in System.Species(), with dimension
	// [len(Axis)].
	Grid *ResultGrid
}

// Columns returns the labels of the Cation, Carbonate, and Silicates
// fields, e.g. "Ca++", "Calcite", "Silicates".
func (r *PhaseResult) Columns() []string {
	return []string{r.System.CationLabel(), r.System.Carbonate(), SilicatesLabel}
}

// PhaseSweep calculates the amounts of the stable phases as a function
// of PCO2 at fixed temperature and total pressure.
func PhaseSweep(e Engine, cfg PhaseConfig) (*PhaseResult, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	w := weatheringFunc(cfg.Weathering)
	log := logger(cfg.Log).WithField("system", cfg.System.String())

	axis := PCO2Axis(cfg.N)
	grid := NewResultGrid(len(axis))

	sc, err := e.Prepare(cfg.System)
	if err != nil {
		return nil, err
	}
	log.WithField("points", len(axis)).Info("starting stable-phase sweep")
	for j, pco2 := range axis {
		div, sio2 := Scale(pco2, cfg.Temp, cfg.Beta, cfg.NDIV, cfg.NSiO2, w)
		c := Composition{DIVSupply: div, SiO2Supply: sio2, PCO2: pco2, Temp: cfg.Temp, TotalPressure: cfg.TotalPressure}
		vals, err := solvePoint(cfg.System, sc, c)
		if err != nil {
			return nil, &SolveError{
				System:      cfg.System,
				Point:       []Coordinate{{Axis: "PCO2", Index: j, Value: pco2}},
				Composition: c,
				Err:         err,
			}
		}
		grid.setAll(vals, j)
	}
	log.Info("finished stable-phase sweep")

	r := &PhaseResult{
		System:        cfg.System,
		Beta:          cfg.Beta,
		NDIV:          cfg.NDIV,
		NSiO2:         cfg.NSiO2,
		Temp:          cfg.Temp,
		TotalPressure: cfg.TotalPressure,
		Axis:          axis,
		Cation:        make([]float64, len(axis)),
		Carbonate:     make([]float64, len(axis)),
		Silicates:     make([]float64, len(axis)),
		Grid:          grid,
	}
	copy(r.Cation, grid.Line(cfg.System.Cation()))
	copy(r.Carbonate, grid.Line(cfg.System.Carbonate()))
	for j, v := range grid.Line(cfg.System.Silicate()) {
		r.Silicates[j] = cfg.System.SilicateCations() * v
	}
	return r, nil
}
