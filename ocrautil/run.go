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

package ocrautil

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/ocra"
	"github.com/spatialmodel/ocra/report"
)

// ErrAnalyticalComparison is returned when the analytical pH comparison
// is requested along an axis other than PCO2.
var ErrAnalyticalComparison = errors.New(`ocra: the analytical comparison is only available for comparison = "PCO2"`)

// PH calculates ocean pH and reports the result to sink. If analytical
// is true, the numerical solution is compared with analytical
// approximations in which the cation supply is multiplied by nDIVFixed.
func PH(e ocra.Engine, cfg ocra.PHConfig, analytical bool, nDIVFixed float64, sink report.Sink) error {
	if analytical {
		if cfg.Comparison != ocra.ByPCO2 {
			return ErrAnalyticalComparison
		}
		r, err := ocra.PHAnalytical(e, cfg, nDIVFixed)
		if err != nil {
			return err
		}
		return sink.PHAnalytical(r)
	}
	r, err := ocra.PHSweep(e, cfg)
	if err != nil {
		return err
	}
	return sink.PH(r)
}

// CCD calculates the carbonate compensation depth and reports the
// result to sink.
func CCD(e ocra.Engine, cfg ocra.CCDConfig, sink report.Sink) error {
	r, err := ocra.CCDSweep(e, cfg)
	if err != nil {
		return err
	}
	return sink.CCD(r)
}

// Phases calculates the stable phases and reports the result to sink.
func Phases(e ocra.Engine, cfg ocra.PhaseConfig, sink report.Sink) error {
	r, err := ocra.PhaseSweep(e, cfg)
	if err != nil {
		return err
	}
	return sink.Phases(r)
}

// PaperConfig holds the configuration for the calculations shown in the
// figures of Hakim et al. (2023).
type PaperConfig struct {
	// Systems are the carbonate systems to include. The analytical pH
	// comparison and the P and T pH sweeps are only run if Ca is included.
	Systems []ocra.System

	// Scale multiplies the grid resolutions.
	Scale float64

	Weathering ocra.WeatheringFunc
	Log        logrus.FieldLogger
}

// Grid resolutions of the paper figures.
const (
	paperPHPoints    = 100
	paperCCDPressure = 20
	paperCCDTemp     = 100
	paperCCDPCO2     = 100
	paperPhasePoints = 100
)

// paperSilica holds the silica-to-cation supply ratios of the paper
// CCD and stable-phase figures: without and with silica.
var paperSilica = []float64{0, 1}

// scaled returns n multiplied by scale, rounded, and at least 1.
func (cfg *PaperConfig) scaled(n int) int {
	s := int(math.Round(float64(n) * cfg.Scale))
	if s < 1 {
		return 1
	}
	return s
}

func (cfg *PaperConfig) hasCa() bool {
	for _, s := range cfg.Systems {
		if s == ocra.Ca {
			return true
		}
	}
	return false
}

// Paper runs the calculations for each of the paper figures in turn and
// reports the results to sink.
func Paper(e ocra.Engine, cfg PaperConfig, sink report.Sink) error {
	if cfg.Scale <= 0 || math.IsNaN(cfg.Scale) {
		return ocra.ErrBadCount
	}
	for _, s := range cfg.Systems {
		if !s.Valid() {
			return ocra.ErrUnknownSystem
		}
	}

	// pH
	for _, s := range cfg.Systems {
		phCfg := cfg.phConfig(s, ocra.ByPCO2)
		if err := PH(e, phCfg, false, 0, sink); err != nil {
			return err
		}
	}
	if cfg.hasCa() {
		if err := PH(e, cfg.phConfig(ocra.Ca, ocra.ByPCO2), true, 1, sink); err != nil {
			return err
		}
		for _, cmp := range []ocra.Comparison{ocra.ByPressure, ocra.ByTemperature} {
			if err := PH(e, cfg.phConfig(ocra.Ca, cmp), false, 0, sink); err != nil {
				return err
			}
		}
	}

	// CCD
	for _, s := range cfg.Systems {
		for _, nSiO2 := range paperSilica {
			ccdCfg := ocra.DefaultCCDConfig()
			ccdCfg.System = s
			ccdCfg.NSiO2 = nSiO2
			ccdCfg.NPressure = cfg.scaled(paperCCDPressure)
			ccdCfg.NTemp = cfg.scaled(paperCCDTemp)
			ccdCfg.NPCO2 = cfg.scaled(paperCCDPCO2)
			ccdCfg.Weathering = cfg.Weathering
			ccdCfg.Log = cfg.Log
			if err := CCD(e, ccdCfg, sink); err != nil {
				return err
			}
		}
	}

	// Stable phases
	for _, s := range cfg.Systems {
		for _, nSiO2 := range paperSilica {
			phaseCfg := ocra.DefaultPhaseConfig()
			phaseCfg.System = s
			phaseCfg.NSiO2 = nSiO2
			phaseCfg.N = cfg.scaled(paperPhasePoints)
			phaseCfg.Weathering = cfg.Weathering
			phaseCfg.Log = cfg.Log
			if err := Phases(e, phaseCfg, sink); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cfg *PaperConfig) phConfig(s ocra.System, cmp ocra.Comparison) ocra.PHConfig {
	phCfg := ocra.DefaultPHConfig()
	phCfg.System = s
	phCfg.Comparison = cmp
	phCfg.N = cfg.scaled(paperPHPoints)
	phCfg.Weathering = cfg.Weathering
	phCfg.Log = cfg.Log
	return phCfg
}
