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
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Comparison specifies the independent variable of a pH sweep.
type Comparison int

// Independent variables for pH sweeps.
const (
	ByPCO2 Comparison = iota
	ByPressure
	ByTemperature
)

var comparisonNames = map[Comparison]string{
	ByPCO2:        "PCO2",
	ByPressure:    "P",
	ByTemperature: "T",
}

// ParseComparison returns the Comparison corresponding to name, which
// should be "PCO2", "P", or "T".
func ParseComparison(name string) (Comparison, error) {
	for c, n := range comparisonNames {
		if n == name {
			return c, nil
		}
	}
	return 0, ErrUnknownComparison
}

func (c Comparison) String() string {
	if n, ok := comparisonNames[c]; ok {
		return n
	}
	return "unknown"
}

// PHConfig holds the configuration for pH sweeps.
type PHConfig struct {
	System System

	TotalPressure float64 // total pressure [bar]; fixed unless Comparison == ByPressure
	Temp          float64 // temperature [K]; fixed unless Comparison == ByTemperature

	// PCO2 is the CO2 partial pressure [bar] used when Comparison is
	// ByPressure or ByTemperature.
	PCO2 float64

	NDIV  float64 // weathering multiplier
	NSiO2 float64 // silica-to-cation supply ratio

	// N is the number of points along the comparison axis.
	N int

	Comparison Comparison

	// Weathering is the weathering relation. If nil, DefaultWeathering
	// is used.
	Weathering WeatheringFunc

	// Log receives progress messages. If nil, the logrus standard
	// logger is used.
	Log logrus.FieldLogger
}

// DefaultPHConfig returns the default pH sweep configuration: the Ca
// system at 1 bar and 288 K with 100 grid points.
func DefaultPHConfig() PHConfig {
	return PHConfig{
		System:        Ca,
		TotalPressure: 1,
		Temp:          288,
		PCO2:          0.3e-3,
		NDIV:          1,
		NSiO2:         1,
		N:             100,
		Comparison:    ByPCO2,
	}
}

func (cfg *PHConfig) check() error {
	if !cfg.System.Valid() {
		return ErrUnknownSystem
	}
	if _, ok := comparisonNames[cfg.Comparison]; !ok {
		return ErrUnknownComparison
	}
	if cfg.N < 1 {
		return ErrBadCount
	}
	return nil
}

// axis returns the grid along the comparison axis.
func (cfg *PHConfig) axis() Axis {
	switch cfg.Comparison {
	case ByPressure:
		return PressureAxis(cfg.N)
	case ByTemperature:
		return TemperatureAxis(cfg.N)
	default:
		return PCO2Axis(cfg.N)
	}
}

// point returns the PCO2, temperature, and total pressure at position
// x along the comparison axis.
func (cfg *PHConfig) point(x float64) (pco2, temp, totP float64) {
	switch cfg.Comparison {
	case ByPressure:
		return cfg.PCO2, cfg.Temp, x
	case ByTemperature:
		return cfg.PCO2, x, cfg.TotalPressure
	default:
		return x, cfg.Temp, cfg.TotalPressure
	}
}

// PHResult holds the results of a pH sweep.
type PHResult struct {
	System     System
	Comparison Comparison

	// Regimes are the weathering exponents along the first grid dimension.
	Regimes []float64

	// Axis holds the values along the second grid dimension.
	Axis Axis

	// Grid holds the species in System.Species() with dimensions
	// [len(Regimes), len(Axis)].
	Grid *ResultGrid
}

// PHSweep calculates ocean pH along the axis specified by
// cfg.Comparison for each of the weathering Regimes.
func PHSweep(e Engine, cfg PHConfig) (*PHResult, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	w := weatheringFunc(cfg.Weathering)
	log := logger(cfg.Log).WithFields(logrus.Fields{
		"system":     cfg.System.String(),
		"comparison": cfg.Comparison.String(),
	})

	axis := cfg.axis()
	regimes := append([]float64{}, Regimes...)
	grid := NewResultGrid(len(regimes), len(axis))

	sc, err := e.Prepare(cfg.System)
	if err != nil {
		return nil, err
	}
	log.WithField("points", len(regimes)*len(axis)).Info("starting pH sweep")
	for i, beta := range regimes {
		for j, x := range axis {
			pco2, temp, totP := cfg.point(x)
			div, sio2 := Scale(pco2, temp, beta, cfg.NDIV, cfg.NSiO2, w)
			c := Composition{DIVSupply: div, SiO2Supply: sio2, PCO2: pco2, Temp: temp, TotalPressure: totP}
			vals, err := solvePoint(cfg.System, sc, c)
			if err != nil {
				return nil, &SolveError{
					System: cfg.System,
					Point: []Coordinate{
						{Axis: "beta", Index: i, Value: beta},
						{Axis: cfg.Comparison.String(), Index: j, Value: x},
					},
					Composition: c,
					Err:         err,
				}
			}
			grid.setAll(vals, i, j)
		}
	}
	log.Info("finished pH sweep")
	return &PHResult{
		System:     cfg.System,
		Comparison: cfg.Comparison,
		Regimes:    regimes,
		Axis:       axis,
		Grid:       grid,
	}, nil
}

// AnalyticalResult holds numerical and approximate analytical solutions
// for ocean pH as a function of PCO2.
type AnalyticalResult struct {
	System System

	// Supplies are the constant cation supplies [mol/kg water] along the
	// first grid dimension.
	Supplies []float64

	// Axis holds the PCO2 values [bar] along the second grid dimension.
	Axis Axis

	// Numerical holds the numerical solution, with dimensions
	// [len(Supplies), len(Axis)].
	Numerical *ResultGrid

	// Analytical holds the pH calculated from the total cation supply and
	// SemiAnalytical holds the pH calculated from the free cation
	// concentration of the numerical solution.
	Analytical, SemiAnalytical *ResultGrid
}

// PHAnalytical compares numerical solutions of ocean pH as a function
// of PCO2 with analytical approximations, for a constant cation supply
// of 0 and 1e-2 mol/kg. nDIVFixed multiplies the cation supply in the
// analytical approximation. Only the Ca system is supported, and the
// SolverContext prepared by e must implement Analytic.
func PHAnalytical(e Engine, cfg PHConfig, nDIVFixed float64) (*AnalyticalResult, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	if cfg.System != Ca {
		return nil, ErrSystemNotSupported
	}
	log := logger(cfg.Log).WithField("system", cfg.System.String())

	axis := PCO2Axis(cfg.N)
	supplies := make([]float64, 2)
	floats.Span(supplies, 0, ConstantDIVSupply)

	sc, err := e.Prepare(cfg.System)
	if err != nil {
		return nil, err
	}
	an, ok := sc.(Analytic)
	if !ok {
		return nil, ErrNoAnalytical
	}
	k, err := an.Constants(cfg.Temp, cfg.TotalPressure)
	if err != nil {
		return nil, err
	}

	r := &AnalyticalResult{
		System:         cfg.System,
		Supplies:       supplies,
		Axis:           axis,
		Numerical:      NewResultGrid(len(supplies), len(axis)),
		Analytical:     NewResultGrid(len(supplies), len(axis)),
		SemiAnalytical: NewResultGrid(len(supplies), len(axis)),
	}
	log.WithField("points", len(supplies)*len(axis)).Info("starting analytical pH comparison")
	for i, div := range supplies {
		for j, pco2 := range axis {
			c := Composition{DIVSupply: div, PCO2: pco2, Temp: cfg.Temp, TotalPressure: cfg.TotalPressure}
			vals, err := solvePoint(cfg.System, sc, c)
			if err != nil {
				return nil, &SolveError{
					System: cfg.System,
					Point: []Coordinate{
						{Axis: "DIV", Index: i, Value: div},
						{Axis: "PCO2", Index: j, Value: pco2},
					},
					Composition: c,
					Err:         err,
				}
			}
			r.Numerical.setAll(vals, i, j)
			r.Analytical.Set(PH, analyticalPH(k, pco2, nDIVFixed*div), i, j)
			r.SemiAnalytical.Set(PH, analyticalPH(k, pco2, nDIVFixed*vals[cfg.System.Cation()]), i, j)
		}
	}
	log.Info("finished analytical pH comparison")
	return r, nil
}

// analyticalPH returns the pH of a solution in equilibrium with CO2 at
// partial pressure pco2 [bar] containing div [mol/kg] of divalent cations,
// neglecting carbonate ions and hydroxide in the charge balance
// 2[M+2] + [H+] = [HCO3-], which gives
// [H+]² + 2[M+2][H+] - K1 KH PCO2 = 0.
func analyticalPH(k EquilibriumConstants, pco2, div float64) float64 {
	k1kh := math.Pow(10, k.LogK1+k.LogKH) * pco2
	// Rationalized root of the quadratic; avoids cancellation when div is large.
	h := k1kh / (math.Sqrt(div*div+k1kh) + div)
	return -math.Log10(h)
}

func weatheringFunc(w WeatheringFunc) WeatheringFunc {
	if w == nil {
		return DefaultWeathering
	}
	return w
}

func logger(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}
