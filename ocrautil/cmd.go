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

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/ocra"
	"github.com/spatialmodel/ocra/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to OCRA.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "DIV",
			usage: `
              DIV specifies the divalent cation that sets the carbonate system.
              Valid options are "Ca", "Mg", and "Fe".`,
			defaultVal: "Ca",
			flagsets:   []*pflag.FlagSet{phCmd.Flags(), ccdCmd.Flags(), phasesCmd.Flags()},
		},
		{
			name: "totP",
			usage: `
              totP specifies the total pressure in bar. It is held fixed unless
              --comparison=P.`,
			defaultVal: 1.,
			flagsets:   []*pflag.FlagSet{phCmd.Flags(), phasesCmd.Flags()},
		},
		{
			name: "Temp",
			usage: `
              Temp specifies the temperature in K. It is held fixed unless
              --comparison=T. If 0, the default is 288 K for the ph command
              and 310 K for the phases command.`,
			defaultVal: 0.,
			flagsets:   []*pflag.FlagSet{phCmd.Flags(), phasesCmd.Flags()},
		},
		{
			name: "PCO2",
			usage: `
              PCO2 specifies the atmospheric CO2 partial pressure in bar used
              when --comparison is P or T.`,
			defaultVal: 0.3e-3,
			flagsets:   []*pflag.FlagSet{phCmd.Flags()},
		},
		{
			name: "nDIV",
			usage: `
              nDIV multiplies the weathering supply of divalent cations.`,
			defaultVal: 1.,
			flagsets:   []*pflag.FlagSet{phCmd.Flags(), ccdCmd.Flags(), phasesCmd.Flags()},
		},
		{
			name: "nSiO2",
			usage: `
              nSiO2 is the ratio of the silica supply to the cation supply.
              Set it to 0 to exclude silica.`,
			defaultVal: 1.,
			flagsets:   []*pflag.FlagSet{phCmd.Flags(), ccdCmd.Flags(), phasesCmd.Flags()},
		},
		{
			name: "beta",
			usage: `
              beta is the exponent of the power-law dependence of weathering on
              PCO2. -1 turns off weathering and 0 gives a constant cation supply.`,
			defaultVal: 0.3,
			flagsets:   []*pflag.FlagSet{ccdCmd.Flags(), phasesCmd.Flags()},
		},
		{
			name: "totnum",
			usage: `
              totnum is the number of grid points along the swept axis of the ph
              and phases commands and along the pressure axis of the ccd command.
              If 0, the default is 100 for ph, 20 for phases, and 10 for ccd.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{phCmd.Flags(), ccdCmd.Flags(), phasesCmd.Flags()},
		},
		{
			name: "numQ1",
			usage: `
              numQ1 is the number of temperatures in the CCD grid.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{ccdCmd.Flags()},
		},
		{
			name: "numQ2",
			usage: `
              numQ2 is the number of CO2 partial pressures in the CCD grid.`,
			defaultVal: 10,
			flagsets:   []*pflag.FlagSet{ccdCmd.Flags()},
		},
		{
			name: "comparison",
			usage: `
              comparison specifies the independent variable of the pH sweep.
              Valid options are "PCO2", "P", and "T".`,
			defaultVal: "PCO2",
			flagsets:   []*pflag.FlagSet{phCmd.Flags()},
		},
		{
			name: "analytical",
			usage: `
              analytical specifies whether to compare numerical solutions for
              pH with analytical approximations instead of sweeping the
              weathering regimes. It is only available for DIV=Ca and
              comparison=PCO2.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{phCmd.Flags()},
		},
		{
			name: "nDIVFixed",
			usage: `
              nDIVFixed multiplies the cation supply in the analytical
              approximations.`,
			defaultVal: 1.,
			flagsets:   []*pflag.FlagSet{phCmd.Flags()},
		},
		{
			name: "systems",
			usage: `
              systems specifies the carbonate systems included in the paper
              figures.`,
			defaultVal: []string{"Ca", "Mg", "Fe"},
			flagsets:   []*pflag.FlagSet{paperCmd.Flags()},
		},
		{
			name: "scale",
			usage: `
              scale multiplies the grid resolutions of the paper figures.
              Values below 1 give quicker, coarser results.`,
			defaultVal: 1.,
			flagsets:   []*pflag.FlagSet{paperCmd.Flags()},
		},
		{
			name: "table",
			usage: `
              table specifies whether to write results to xlsx spreadsheets.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "plot",
			usage: `
              plot specifies whether to write figures of the results.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "netcdf",
			usage: `
              netcdf specifies whether to write results to netCDF files.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "dryrun",
			usage: `
              dryrun prints the configuration of the requested calculation
              without running it.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "OutputDir",
			usage: `
              OutputDir is the directory where results are written. It can
              contain environment variables.`,
			shorthand:  "o",
			defaultVal: "ocra_output",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogFile",
			usage: `
              LogFile is the path to the desired logfile location. It can
              include environment variables. If LogFile is left blank, the
              logfile will be saved as ocra.log in OutputDir.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages that are written.
              Valid options are "debug", "info", "warning", and "error".`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Weathering.W0",
			usage: `
              Weathering.W0 is the weathering flux at the reference conditions,
              expressed as a solute concentration in the ocean [mol/m³].`,
			defaultVal: 10.,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Weathering.PCO2Ref",
			usage: `
              Weathering.PCO2Ref is the reference CO2 partial pressure [bar].`,
			defaultVal: 280e-6,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Weathering.TempRef",
			usage: `
              Weathering.TempRef is the reference temperature [K].`,
			defaultVal: 288.,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Weathering.Ea",
			usage: `
              Weathering.Ea is the apparent activation energy of silicate
              weathering [J/mol].`,
			defaultVal: 41e3,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Engine.MaxIterations",
			usage: `
              Engine.MaxIterations is the maximum number of iterations of the
              equilibrium solver.`,
			defaultVal: 200,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Engine.Tolerance",
			usage: `
              Engine.Tolerance is the convergence tolerance of the equilibrium
              solver in log10[H+].`,
			defaultVal: 1e-12,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("OCRA")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(phCmd)
	Root.AddCommand(ccdCmd)
	Root.AddCommand(phasesCmd)
	Root.AddCommand(paperCmd)
}

// setConfig reads in the configuration file if one has been specified.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("ocra: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "ocra",
	Short: "Ocean chemistry with weathering-driven cation supply.",
	Long: `OCRA calculates ocean pH, carbonate compensation depths (CCDs), and stable
mineral phases for oceans in contact with a CO2 atmosphere, where the supply of
divalent cations (Ca, Mg, or Fe) and silica is set by continental weathering.
Use the subcommands specified below to access the model functionality.
Reference: Hakim et al. (2023) ApJL.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'OCRA_var' where 'var' is the
name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of OCRA.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("OCRA v%s\n", ocra.Version)
	},
	DisableAutoGenTag: true,
}

var phCmd = &cobra.Command{
	Use:   "ph",
	Short: "Calculate ocean pH",
	Long: `ph calculates ocean pH as a function of PCO2, total pressure (P), or
temperature (T) for three weathering regimes: no weathering, a constant cation
supply, and power-law weathering with beta=0.3. With --analytical, the
numerical solution is instead compared with analytical approximations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(e ocra.Engine, sink report.Sink, log logrus.FieldLogger) error {
			cfg, err := phConfig()
			if err != nil {
				return err
			}
			analytical := Cfg.GetBool("analytical")
			if dryRun(cmd, cfg, struct{ Analytical bool }{analytical}) {
				return nil
			}
			cfg.Weathering = weatheringParams().Scaling
			cfg.Log = log
			return PH(e, cfg, analytical, Cfg.GetFloat64("nDIVFixed"), sink)
		})
	},
	DisableAutoGenTag: true,
}

var ccdCmd = &cobra.Command{
	Use:   "ccd",
	Short: "Calculate the carbonate compensation depth",
	Long: `ccd calculates the carbonate compensation depth as a function of PCO2 and
temperature. The carbonate profile is calculated over totnum total pressures
at each of numQ1 temperatures and numQ2 CO2 partial pressures, so large
grids can take a long time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(e ocra.Engine, sink report.Sink, log logrus.FieldLogger) error {
			cfg, err := ccdConfig()
			if err != nil {
				return err
			}
			if dryRun(cmd, cfg) {
				return nil
			}
			cfg.Weathering = weatheringParams().Scaling
			cfg.Log = log
			return CCD(e, cfg, sink)
		})
	},
	DisableAutoGenTag: true,
}

var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Calculate the stable phases",
	Long: `phases calculates the partitioning of divalent cations among the free
cation, the carbonate mineral, and the silicate mineral as a function of PCO2.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(e ocra.Engine, sink report.Sink, log logrus.FieldLogger) error {
			cfg, err := phaseConfig()
			if err != nil {
				return err
			}
			if dryRun(cmd, cfg) {
				return nil
			}
			cfg.Weathering = weatheringParams().Scaling
			cfg.Log = log
			return Phases(e, cfg, sink)
		})
	},
	DisableAutoGenTag: true,
}

var paperCmd = &cobra.Command{
	Use:   "paper",
	Short: "Calculate the results shown in the paper figures",
	Long: `paper calculates the results shown in the figures of Hakim et al. (2023):
pH as a function of PCO2, P, and T along with the analytical comparison;
CCDs with and without silica; and stable phases with and without silica at
310 K. The --scale flag multiplies the grid resolutions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, func(e ocra.Engine, sink report.Sink, log logrus.FieldLogger) error {
			cfg, err := paperConfig()
			if err != nil {
				return err
			}
			if dryRun(cmd, cfg) {
				return nil
			}
			cfg.Weathering = weatheringParams().Scaling
			cfg.Log = log
			return Paper(e, cfg, sink)
		})
	},
	DisableAutoGenTag: true,
}
