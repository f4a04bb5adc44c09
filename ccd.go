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
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/ocra/science/hydrostatic"
	"gonum.org/v1/gonum/mat"
)

// CCD search constants.
const (
	// CCDFloor [km] is returned when negligible carbonate forms even at
	// the surface.
	CCDFloor = 1e-3

	// CCDCeiling [km] is returned when carbonate persists over the whole
	// pressure grid.
	CCDCeiling = 100.

	// CCDFraction is the fraction of the surface carbonate amount below
	// which carbonate is considered to have dissolved.
	CCDFraction = 0.001

	// DefaultLowCutoff [mol] is the surface carbonate amount below which
	// no carbonate is considered to form.
	DefaultLowCutoff = 1e-8

	// slowCCDPoints is the number of pressure levels above which CCD
	// sweeps are flagged as slow.
	slowCCDPoints = 10
)

// ExtractCCD returns the carbonate compensation depth [km] given the
// amount of carbonate mineral at each of a series of increasing
// pressures [bar]. If the amount at the lowest pressure is below
// lowCutoff, CCDFloor is returned. Otherwise, the depth of the first
// pressure where the amount drops below CCDFraction of the surface amount
// is returned, or CCDCeiling if that never happens. depth converts
// pressure [bar] to depth [km].
func ExtractCCD(pressures, amounts []float64, lowCutoff float64, depth func(pressure float64) float64) float64 {
	if len(pressures) != len(amounts) {
		panic("ocra: pressure and carbonate profiles have different lengths")
	}
	if len(amounts) == 0 {
		return CCDFloor
	}
	surface := amounts[0]
	if surface < lowCutoff {
		return CCDFloor
	}
	j, ok := firstBelow(amounts, CCDFraction*surface)
	if !ok {
		return CCDCeiling
	}
	return depth(pressures[j])
}

// firstBelow returns the first index where v < threshold.
func firstBelow(v []float64, threshold float64) (int, bool) {
	for i, vv := range v {
		if vv < threshold {
			return i, true
		}
	}
	return -1, false
}

// CCDConfig holds the configuration for CCD sweeps.
type CCDConfig struct {
	System System

	Beta  float64 // weathering exponent
	NDIV  float64 // weathering multiplier
	NSiO2 float64 // silica-to-cation supply ratio

	NTemp     int // number of temperatures
	NPCO2     int // number of CO2 partial pressures
	NPressure int // number of total pressures in each profile

	// LowCutoff is the surface carbonate amount [mol] below which no
	// carbonate is considered to form. If zero, DefaultLowCutoff is used.
	LowCutoff float64

	// Depth converts total pressure [bar] to depth [km]. If nil,
	// hydrostatic.Ocean.Depth is used.
	Depth func(pressure float64) float64

	// Weathering is the weathering relation. If nil, DefaultWeathering
	// is used.
	Weathering WeatheringFunc

	Log logrus.FieldLogger
}

// DefaultCCDConfig returns the default CCD sweep configuration:
// power-law weathering with β = 0.3 on a 10×10×10 grid.
func DefaultCCDConfig() CCDConfig {
	return CCDConfig{
		System:    Ca,
		Beta:      0.3,
		NDIV:      1,
		NSiO2:     1,
		NTemp:     10,
		NPCO2:     10,
		NPressure: 10,
		LowCutoff: DefaultLowCutoff,
	}
}

func (cfg *CCDConfig) check() error {
	if !cfg.System.Valid() {
		return ErrUnknownSystem
	}
	if cfg.NTemp < 1 || cfg.NPCO2 < 1 || cfg.NPressure < 1 {
		return ErrBadCount
	}
	return nil
}

// CCDResult holds the results of a CCD sweep.
type CCDResult struct {
	System            System
	Beta, NDIV, NSiO2 float64

	Temps     Axis // K
	PCO2s     Axis // bar
	Pressures Axis // bar

	// CCD holds the compensation depth [km], with rows corresponding
	// to Temps and columns to PCO2s.
	CCD *mat.Dense

	// Carbonate holds the amount of carbonate mineral [mol] with
	// dimensions [len(Temps), len(PCO2s), len(Pressures)].
	Carbonate *ResultGrid
}

// CCDSweep calculates the carbonate compensation depth as a function of
// temperature and PCO2. At each (temperature, PCO2) pair, the supply of
// cations and silica is calculated once and equilibrium is solved over the
// whole pressure grid. The resulting carbonate profile is then reduced to a
// compensation depth with ExtractCCD.
func CCDSweep(e Engine, cfg CCDConfig) (*CCDResult, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	w := weatheringFunc(cfg.Weathering)
	depth := cfg.Depth
	if depth == nil {
		depth = hydrostatic.Ocean.Depth
	}
	lowCutoff := cfg.LowCutoff
	if lowCutoff == 0 {
		lowCutoff = DefaultLowCutoff
	}
	log := logger(cfg.Log).WithField("system", cfg.System.String())
	if cfg.NPressure > slowCCDPoints {
		log.WithFields(logrus.Fields{
			"temperatures": cfg.NTemp,
			"pco2s":        cfg.NPCO2,
			"pressures":    cfg.NPressure,
		}).Warn("Please be patient. A high-resolution CCD grid is being calculated.")
	}

	r := &CCDResult{
		System:    cfg.System,
		Beta:      cfg.Beta,
		NDIV:      cfg.NDIV,
		NSiO2:     cfg.NSiO2,
		Temps:     TemperatureAxis(cfg.NTemp),
		PCO2s:     PCO2Axis(cfg.NPCO2),
		Pressures: PressureAxis(cfg.NPressure),
		CCD:       mat.NewDense(cfg.NTemp, cfg.NPCO2, nil),
		Carbonate: NewResultGrid(cfg.NTemp, cfg.NPCO2, cfg.NPressure),
	}
	carbonate := cfg.System.Carbonate()

	sc, err := e.Prepare(cfg.System)
	if err != nil {
		return nil, err
	}
	log.WithField("points", cfg.NTemp*cfg.NPCO2*cfg.NPressure).Info("starting CCD sweep")
	for k, temp := range r.Temps {
		for i, pco2 := range r.PCO2s {
			div, sio2 := Scale(pco2, temp, cfg.Beta, cfg.NDIV, cfg.NSiO2, w)
			for j, totP := range r.Pressures {
				c := Composition{DIVSupply: div, SiO2Supply: sio2, PCO2: pco2, Temp: temp, TotalPressure: totP}
				vals, err := solvePoint(cfg.System, sc, c)
				if err != nil {
					return nil, &SolveError{
						System: cfg.System,
						Point: []Coordinate{
							{Axis: "T", Index: k, Value: temp},
							{Axis: "PCO2", Index: i, Value: pco2},
							{Axis: "P", Index: j, Value: totP},
						},
						Composition: c,
						Err:         err,
					}
				}
				r.Carbonate.Set(carbonate, vals[carbonate], k, i, j)
			}
			ccd := ExtractCCD(r.Pressures, r.Carbonate.Line(carbonate, k, i), lowCutoff, depth)
			r.CCD.Set(k, i, ccd)
		}
		log.WithField("T", temp).Debug("finished temperature")
	}
	log.Info("finished CCD sweep")
	return r, nil
}
