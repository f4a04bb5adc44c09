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

package report

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/spatialmodel/ocra"
)

// variable is a netCDF variable of type double.
type variable struct {
	name        string
	dims        []string
	data        []float64
	description string
	units       string
}

// dataset holds the contents of a netCDF file.
type dataset struct {
	dims    []string
	lengths []int
	vars    []variable
	attrs   [][2]string // global attributes
	key     string
}

// write writes d to a new netCDF file at path.
func (d *dataset) write(path string) error {
	h := cdf.NewHeader(d.dims, d.lengths)
	for _, v := range d.vars {
		h.AddVariable(v.name, v.dims, []float64{0})
		if v.description != "" {
			h.AddAttribute(v.name, "description", v.description)
		}
		if v.units != "" {
			h.AddAttribute(v.name, "units", v.units)
		}
	}
	h.AddAttribute("", "source", "OCRA "+ocra.Version)
	if d.key != "" {
		h.AddAttribute("", "run_key", d.key)
	}
	for _, a := range d.attrs {
		h.AddAttribute("", a[0], a[1])
	}
	h.Define()
	if errs := h.Check(); len(errs) > 0 {
		return errs[0]
	}

	ff, err := os.Create(path)
	if err != nil {
		return err
	}
	f, err := cdf.Create(ff, h)
	if err != nil {
		ff.Close()
		return err
	}
	for _, v := range d.vars {
		// The end index is one past the last element so that writing the
		// final value does not report EOF.
		w := f.Writer(v.name, make([]int, len(v.dims)), d.shape(v))
		if _, err := w.Write(v.data); err != nil {
			ff.Close()
			return fmt.Errorf("writing variable %s: %v", v.name, err)
		}
	}
	if err := cdf.UpdateNumRecs(ff); err != nil {
		ff.Close()
		return err
	}
	return ff.Close()
}

// shape returns the length of each dimension of v.
func (d *dataset) shape(v variable) []int {
	o := make([]int, len(v.dims))
	for i, dim := range v.dims {
		for j, name := range d.dims {
			if name == dim {
				o[i] = d.lengths[j]
			}
		}
	}
	return o
}

// gridVariables returns a variable for each species of system s in g.
func gridVariables(s ocra.System, g *ocra.ResultGrid, dims []string) []variable {
	var o []variable
	for _, sp := range s.Species() {
		v := variable{name: sp, dims: dims, data: gridData(g, sp), units: "mol"}
		if sp == ocra.PH {
			v.units = ""
			v.description = "pH"
		} else {
			v.description = sp + " amount per kg water"
		}
		o = append(o, v)
	}
	return o
}

// gridData returns the values of species name in g in row-major order.
func gridData(g *ocra.ResultGrid, name string) []float64 {
	dims := g.Dims()
	if len(dims) == 1 {
		return append([]float64{}, g.Line(name)...)
	}
	var o []float64
	var rec func(idx []int)
	rec = func(idx []int) {
		if len(idx) == len(dims)-1 {
			o = append(o, g.Line(name, idx...)...)
			return
		}
		for i := 0; i < dims[len(idx)]; i++ {
			rec(append(idx, i))
		}
	}
	rec(nil)
	return o
}

func phDataset(r *ocra.PHResult) *dataset {
	axis := r.Comparison.String()
	d := &dataset{
		dims:    []string{"beta", axis},
		lengths: []int{len(r.Regimes), len(r.Axis)},
		vars: []variable{
			{name: "beta", dims: []string{"beta"}, data: r.Regimes, description: "weathering exponent"},
			{name: axis, dims: []string{axis}, data: r.Axis, description: axisLabel(r.Comparison)},
		},
		attrs: [][2]string{{"system", r.System.String()}, {"comparison", axis}},
	}
	d.vars = append(d.vars, gridVariables(r.System, r.Grid, d.dims)...)
	return d
}

func ccdDataset(r *ocra.CCDResult) *dataset {
	carbonate := r.System.Carbonate()
	return &dataset{
		dims:    []string{"T", "PCO2", "P"},
		lengths: []int{len(r.Temps), len(r.PCO2s), len(r.Pressures)},
		vars: []variable{
			{name: "T", dims: []string{"T"}, data: r.Temps, units: "K"},
			{name: "PCO2", dims: []string{"PCO2"}, data: r.PCO2s, units: "bar"},
			{name: "P", dims: []string{"P"}, data: r.Pressures, units: "bar"},
			{name: "CCD", dims: []string{"T", "PCO2"}, data: r.CCD.RawMatrix().Data,
				description: "carbonate compensation depth", units: "km"},
			{name: carbonate, dims: []string{"T", "PCO2", "P"}, data: gridData(r.Carbonate, carbonate),
				description: carbonate + " amount per kg water", units: "mol"},
		},
		attrs: [][2]string{
			{"system", r.System.String()},
			{"beta", fmt.Sprint(r.Beta)},
			{"nDIV", fmt.Sprint(r.NDIV)},
			{"nSiO2", fmt.Sprint(r.NSiO2)},
		},
	}
}

func phaseDataset(r *ocra.PhaseResult) *dataset {
	d := &dataset{
		dims:    []string{"PCO2"},
		lengths: []int{len(r.Axis)},
		vars: []variable{
			{name: "PCO2", dims: []string{"PCO2"}, data: r.Axis, units: "bar"},
			{name: ocra.SilicatesLabel, dims: []string{"PCO2"}, data: r.Silicates,
				description: "divalent cations held in " + r.System.Silicate(), units: "mol"},
		},
		attrs: [][2]string{
			{"system", r.System.String()},
			{"T", fmt.Sprint(r.Temp)},
			{"P", fmt.Sprint(r.TotalPressure)},
			{"beta", fmt.Sprint(r.Beta)},
			{"nDIV", fmt.Sprint(r.NDIV)},
			{"nSiO2", fmt.Sprint(r.NSiO2)},
		},
	}
	d.vars = append(d.vars, gridVariables(r.System, r.Grid, d.dims)...)
	return d
}
