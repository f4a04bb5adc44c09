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

// Package report writes the results of OCRA sweeps to spreadsheet tables,
// figures, and netCDF files.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/ocra"
	"github.com/spatialmodel/ocra/internal/hash"
	"gonum.org/v1/plot"
)

// Sink receives the results of completed sweeps.
type Sink interface {
	PH(r *ocra.PHResult) error
	PHAnalytical(r *ocra.AnalyticalResult) error
	CCD(r *ocra.CCDResult) error
	Phases(r *ocra.PhaseResult) error
}

// Formats selects the kinds of files that are written for each result.
type Formats struct {
	Table  bool // xlsx spreadsheet
	Plot   bool // PNG figure
	NetCDF bool // netCDF grid
}

// ManifestFile is the name of the file that lists the outputs written
// to a directory.
const ManifestFile = "manifest.toml"

// Entry describes one reported result.
type Entry struct {
	Name   string   `toml:"name"`
	Kind   string   `toml:"kind"`
	System string   `toml:"system"`
	Key    string   `toml:"key"`
	Files  []string `toml:"files"`
}

// Manifest lists the results that have been written to a directory.
type Manifest struct {
	Version string  `toml:"version"`
	Output  []Entry `toml:"output"`
}

// Files is a Sink that writes results to files in directory Dir.
type Files struct {
	Dir string
	Formats
	Log logrus.FieldLogger

	manifest Manifest
}

// NewFiles creates dir if necessary and returns a Sink that writes
// the selected formats to it.
func NewFiles(dir string, formats Formats, log logrus.FieldLogger) (*Files, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("report: creating output directory: %v", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Files{
		Dir:      dir,
		Formats:  formats,
		Log:      log,
		manifest: Manifest{Version: ocra.Version},
	}, nil
}

// run describes a result for the purpose of computing its key.
type run struct {
	Kind              string
	System            string
	Comparison        string
	Beta, NDIV, NSiO2 float64
	Dims              []int
}

// output holds the writers for each format of a single result. Nil
// writers are skipped.
type output struct {
	name   string
	run    run
	table  func() []sheet
	figure func() (*plot.Plot, error)
	netcdf func() *dataset
}

func (f *Files) write(o output) error {
	key := hash.Key(o.run)
	e := Entry{Name: o.name, Kind: o.run.Kind, System: o.run.System, Key: key}
	if f.Table && o.table != nil {
		name := o.name + ".xlsx"
		if err := writeXLSX(filepath.Join(f.Dir, name), o.table()); err != nil {
			return fmt.Errorf("report: writing table %s: %v", name, err)
		}
		e.Files = append(e.Files, name)
	}
	if f.Plot && o.figure != nil {
		name := o.name + ".png"
		p, err := o.figure()
		if err != nil {
			return fmt.Errorf("report: creating figure %s: %v", name, err)
		}
		if err := p.Save(figWidth, figHeight, filepath.Join(f.Dir, name)); err != nil {
			return fmt.Errorf("report: saving figure %s: %v", name, err)
		}
		e.Files = append(e.Files, name)
	}
	if f.NetCDF && o.netcdf != nil {
		name := o.name + ".nc"
		d := o.netcdf()
		d.key = key
		if err := d.write(filepath.Join(f.Dir, name)); err != nil {
			return fmt.Errorf("report: writing netCDF file %s: %v", name, err)
		}
		e.Files = append(e.Files, name)
	}
	f.manifest.Output = append(f.manifest.Output, e)
	f.Log.WithFields(logrus.Fields{
		"name":  o.name,
		"key":   hash.Short(o.run),
		"files": e.Files,
	}).Info("wrote results")
	return nil
}

// WriteManifest writes a list of the results reported so far to
// ManifestFile in f.Dir. Nothing is written if no results have been
// reported.
func (f *Files) WriteManifest() error {
	if len(f.manifest.Output) == 0 {
		return nil
	}
	w, err := os.Create(filepath.Join(f.Dir, ManifestFile))
	if err != nil {
		return fmt.Errorf("report: creating manifest: %v", err)
	}
	if err := toml.NewEncoder(w).Encode(f.manifest); err != nil {
		w.Close()
		return fmt.Errorf("report: writing manifest: %v", err)
	}
	return w.Close()
}

// ReadManifest reads the manifest from directory dir.
func ReadManifest(dir string) (*Manifest, error) {
	m := new(Manifest)
	if _, err := toml.DecodeFile(filepath.Join(dir, ManifestFile), m); err != nil {
		return nil, fmt.Errorf("report: reading manifest: %v", err)
	}
	return m, nil
}

// supplyName returns the part of an output name that identifies the
// supply parameters.
func supplyName(beta, nSiO2 float64) string {
	return fmt.Sprintf("beta_%g_nSiO2_%g", beta, nSiO2)
}

// PH writes the results of a pH sweep to files named
// pH_<comparison>_<system>.
func (f *Files) PH(r *ocra.PHResult) error {
	return f.write(output{
		name: fmt.Sprintf("pH_%s_%s", r.Comparison, r.System),
		run: run{
			Kind:       "pH",
			System:     r.System.String(),
			Comparison: r.Comparison.String(),
			Dims:       r.Grid.Dims(),
		},
		table:  func() []sheet { return phSheets(r) },
		figure: func() (*plot.Plot, error) { return phFigure(r) },
		netcdf: func() *dataset { return phDataset(r) },
	})
}

// PHAnalytical writes a comparison of numerical and analytical pH to
// files named pH_PCO2_analytical_<system>.
func (f *Files) PHAnalytical(r *ocra.AnalyticalResult) error {
	return f.write(output{
		name: fmt.Sprintf("pH_PCO2_analytical_%s", r.System),
		run: run{
			Kind:       "pH analytical",
			System:     r.System.String(),
			Comparison: ocra.ByPCO2.String(),
			Dims:       r.Numerical.Dims(),
		},
		table:  func() []sheet { return analyticalSheets(r) },
		figure: func() (*plot.Plot, error) { return analyticalFigure(r) },
	})
}

// CCD writes the results of a CCD sweep to files named
// CCD_<system>_beta_<beta>_nSiO2_<nSiO2>.
func (f *Files) CCD(r *ocra.CCDResult) error {
	return f.write(output{
		name: fmt.Sprintf("CCD_%s_%s", r.System, supplyName(r.Beta, r.NSiO2)),
		run: run{
			Kind:   "CCD",
			System: r.System.String(),
			Beta:   r.Beta,
			NDIV:   r.NDIV,
			NSiO2:  r.NSiO2,
			Dims:   r.Carbonate.Dims(),
		},
		table:  func() []sheet { return ccdSheets(r) },
		figure: func() (*plot.Plot, error) { return ccdFigure(r) },
		netcdf: func() *dataset { return ccdDataset(r) },
	})
}

// Phases writes the results of a stable-phase sweep to files named
// phases_<system>_beta_<beta>_nSiO2_<nSiO2>.
func (f *Files) Phases(r *ocra.PhaseResult) error {
	return f.write(output{
		name: fmt.Sprintf("phases_%s_%s", r.System, supplyName(r.Beta, r.NSiO2)),
		run: run{
			Kind:   "phases",
			System: r.System.String(),
			Beta:   r.Beta,
			NDIV:   r.NDIV,
			NSiO2:  r.NSiO2,
			Dims:   r.Grid.Dims(),
		},
		table:  func() []sheet { return phaseSheets(r) },
		figure: func() (*plot.Plot, error) { return phaseFigure(r) },
		netcdf: func() *dataset { return phaseDataset(r) },
	})
}
