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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/ocra"
	"github.com/spatialmodel/ocra/report"
	"github.com/spatialmodel/ocra/science/chem/simplecarb"
	"github.com/spatialmodel/ocra/science/weathering"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// Command-specific defaults for options whose zero value means
// "use the default".
const (
	defaultPHTemp    = 288.
	defaultPhaseTemp = 310.
)

// system returns the carbonate system named by the DIV option.
func system() (ocra.System, error) {
	return ocra.ParseSystem(Cfg.GetString("DIV"))
}

// orInt returns v, or def if v is zero.
func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// orFloat returns v, or def if v is zero.
func orFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// phConfig creates a pH sweep configuration from the configuration
// options. Weathering and Log are not set.
func phConfig() (ocra.PHConfig, error) {
	cfg := ocra.DefaultPHConfig()
	s, err := system()
	if err != nil {
		return cfg, err
	}
	cmp, err := ocra.ParseComparison(Cfg.GetString("comparison"))
	if err != nil {
		return cfg, err
	}
	cfg.System = s
	cfg.Comparison = cmp
	cfg.TotalPressure = Cfg.GetFloat64("totP")
	cfg.Temp = orFloat(Cfg.GetFloat64("Temp"), defaultPHTemp)
	cfg.PCO2 = Cfg.GetFloat64("PCO2")
	cfg.NDIV = Cfg.GetFloat64("nDIV")
	cfg.NSiO2 = Cfg.GetFloat64("nSiO2")
	cfg.N = orInt(Cfg.GetInt("totnum"), cfg.N)
	return cfg, nil
}

// ccdConfig creates a CCD sweep configuration from the configuration
// options. Weathering and Log are not set.
func ccdConfig() (ocra.CCDConfig, error) {
	cfg := ocra.DefaultCCDConfig()
	s, err := system()
	if err != nil {
		return cfg, err
	}
	cfg.System = s
	cfg.Beta = Cfg.GetFloat64("beta")
	cfg.NDIV = Cfg.GetFloat64("nDIV")
	cfg.NSiO2 = Cfg.GetFloat64("nSiO2")
	cfg.NTemp = Cfg.GetInt("numQ1")
	cfg.NPCO2 = Cfg.GetInt("numQ2")
	cfg.NPressure = orInt(Cfg.GetInt("totnum"), cfg.NPressure)
	return cfg, nil
}

// phaseConfig creates a stable-phase sweep configuration from the
// configuration options. Weathering and Log are not set.
func phaseConfig() (ocra.PhaseConfig, error) {
	cfg := ocra.DefaultPhaseConfig()
	s, err := system()
	if err != nil {
		return cfg, err
	}
	cfg.System = s
	cfg.Temp = orFloat(Cfg.GetFloat64("Temp"), defaultPhaseTemp)
	cfg.TotalPressure = Cfg.GetFloat64("totP")
	cfg.Beta = Cfg.GetFloat64("beta")
	cfg.NDIV = Cfg.GetFloat64("nDIV")
	cfg.NSiO2 = Cfg.GetFloat64("nSiO2")
	cfg.N = orInt(Cfg.GetInt("totnum"), cfg.N)
	return cfg, nil
}

// paperConfig creates the paper-figure configuration from the
// configuration options. Weathering and Log are not set.
func paperConfig() (PaperConfig, error) {
	names, err := cast.ToStringSliceE(Cfg.Get("systems"))
	if err != nil {
		return PaperConfig{}, fmt.Errorf("ocra: invalid systems: %v", err)
	}
	cfg := PaperConfig{Scale: Cfg.GetFloat64("scale")}
	for _, n := range names {
		s, err := ocra.ParseSystem(n)
		if err != nil {
			return cfg, err
		}
		cfg.Systems = append(cfg.Systems, s)
	}
	return cfg, nil
}

// weatheringParams returns the weathering relation parameters.
func weatheringParams() weathering.Params {
	return weathering.Params{
		W0:      Cfg.GetFloat64("Weathering.W0"),
		PCO2Ref: Cfg.GetFloat64("Weathering.PCO2Ref"),
		TempRef: Cfg.GetFloat64("Weathering.TempRef"),
		Ea:      Cfg.GetFloat64("Weathering.Ea"),
	}
}

// engine returns the equilibrium engine.
func engine() simplecarb.Engine {
	return simplecarb.Engine{
		MaxIterations: Cfg.GetInt("Engine.MaxIterations"),
		Tolerance:     Cfg.GetFloat64("Engine.Tolerance"),
	}
}

func formats() report.Formats {
	return report.Formats{
		Table:  Cfg.GetBool("table"),
		Plot:   Cfg.GetBool("plot"),
		NetCDF: Cfg.GetBool("netcdf"),
	}
}

// checkLogFile sets the log file location to ocra.log in outputDir
// if it is not otherwise specified.
func checkLogFile(logFile, outputDir string) string {
	if logFile == "" {
		logFile = filepath.Join(outputDir, "ocra.log")
	}
	return logFile
}

// newLogger returns a logger that writes messages at or above the named
// level to w.
func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("ocra: invalid LogLevel: %v", err)
	}
	return &logrus.Logger{
		Out:       w,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     l,
	}, nil
}

// dryRun prints the given configurations along with the weathering and
// engine parameters and returns true if the dryrun option is set.
func dryRun(cmd *cobra.Command, cfgs ...interface{}) bool {
	if !Cfg.GetBool("dryrun") {
		return false
	}
	for _, c := range append(cfgs, weatheringParams(), engine()) {
		cmd.Println(pretty.Sprint(c))
	}
	return true
}

// isUsageError returns whether err results from an invalid
// configuration rather than a failed calculation.
func isUsageError(err error) bool {
	switch err {
	case ocra.ErrUnknownSystem, ocra.ErrUnknownComparison, ocra.ErrBadCount,
		ocra.ErrSystemNotSupported, ocra.ErrNoAnalytical, ErrAnalyticalComparison:
		return true
	}
	return false
}

// runCommand sets up logging and output for cmd and then calls run.
// Usage errors returned by run are logged rather than returned, and no
// manifest is written for them.
func runCommand(cmd *cobra.Command, run func(e ocra.Engine, sink report.Sink, log logrus.FieldLogger) error) error {
	outputDir := os.ExpandEnv(Cfg.GetString("OutputDir"))
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("ocra: problem creating output directory: %v", err)
	}
	logfile, err := os.Create(checkLogFile(os.ExpandEnv(Cfg.GetString("LogFile")), outputDir))
	if err != nil {
		return fmt.Errorf("ocra: problem creating log file: %v", err)
	}
	defer logfile.Close()
	log, err := newLogger(io.MultiWriter(cmd.OutOrStdout(), logfile), Cfg.GetString("LogLevel"))
	if err != nil {
		return err
	}
	sink, err := report.NewFiles(outputDir, formats(), log)
	if err != nil {
		return err
	}
	err = run(engine(), sink, log)
	if isUsageError(err) {
		log.WithField("command", cmd.Name()).Error(err)
		return nil
	} else if err != nil {
		return err
	}
	return sink.WriteManifest()
}
