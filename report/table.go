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

	"github.com/spatialmodel/ocra"
	"github.com/tealeg/xlsx"
)

// sheet is a table with a header row followed by rows of numbers.
type sheet struct {
	name   string
	header []string
	rows   [][]float64
}

// writeXLSX writes sheets to a spreadsheet at path.
func writeXLSX(path string, sheets []sheet) error {
	f := xlsx.NewFile()
	for _, s := range sheets {
		sh, err := f.AddSheet(s.name)
		if err != nil {
			return err
		}
		row := sh.AddRow()
		for _, h := range s.header {
			row.AddCell().SetString(h)
		}
		for _, r := range s.rows {
			row := sh.AddRow()
			for _, v := range r {
				row.AddCell().SetFloat(v)
			}
		}
	}
	return f.Save(path)
}

// axisLabel returns the label of the independent variable of a pH sweep.
func axisLabel(c ocra.Comparison) string {
	switch c {
	case ocra.ByPressure:
		return "P [bar]"
	case ocra.ByTemperature:
		return "T [K]"
	default:
		return "PCO2 [bar]"
	}
}

// regimeName returns a short description of weathering exponent beta.
func regimeName(beta float64) string {
	switch beta {
	case ocra.NoWeathering:
		return "no weathering"
	case ocra.ConstantSupply:
		return "constant supply"
	default:
		return fmt.Sprintf("beta=%g", beta)
	}
}

// phSheets returns one sheet per weathering regime, with the species
// of the system as columns.
func phSheets(r *ocra.PHResult) []sheet {
	species := r.System.Species()
	o := make([]sheet, len(r.Regimes))
	for i, beta := range r.Regimes {
		s := sheet{
			name:   regimeName(beta),
			header: append([]string{axisLabel(r.Comparison)}, species...),
			rows:   make([][]float64, len(r.Axis)),
		}
		for j, x := range r.Axis {
			row := []float64{x}
			for _, sp := range species {
				row = append(row, r.Grid.At(sp, i, j))
			}
			s.rows[j] = row
		}
		o[i] = s
	}
	return o
}

// analyticalSheets returns one sheet per cation supply comparing the
// numerical, analytical, and semi-analytical pH.
func analyticalSheets(r *ocra.AnalyticalResult) []sheet {
	o := make([]sheet, len(r.Supplies))
	for i, div := range r.Supplies {
		s := sheet{
			name:   fmt.Sprintf("DIV=%g", div),
			header: []string{axisLabel(ocra.ByPCO2), "pH numerical", "pH analytical", "pH semi-analytical"},
			rows:   make([][]float64, len(r.Axis)),
		}
		for j, x := range r.Axis {
			s.rows[j] = []float64{
				x,
				r.Numerical.At(ocra.PH, i, j),
				r.Analytical.At(ocra.PH, i, j),
				r.SemiAnalytical.At(ocra.PH, i, j),
			}
		}
		o[i] = s
	}
	return o
}

// ccdSheets returns the CCD [km] with temperatures as rows and PCO2s as
// columns, and the carbonate profile at each temperature.
func ccdSheets(r *ocra.CCDResult) []sheet {
	ccd := sheet{name: "CCD", header: []string{"T [K] \\ PCO2 [bar]"}}
	for _, pco2 := range r.PCO2s {
		ccd.header = append(ccd.header, fmt.Sprint(pco2))
	}
	for k, temp := range r.Temps {
		ccd.rows = append(ccd.rows, append([]float64{temp}, rowOf(r, k)...))
	}
	o := []sheet{ccd}

	carbonate := r.System.Carbonate()
	for k, temp := range r.Temps {
		s := sheet{
			name:   fmt.Sprintf("%s T=%.2f", carbonate, temp),
			header: []string{"P [bar] \\ PCO2 [bar]"},
		}
		for _, pco2 := range r.PCO2s {
			s.header = append(s.header, fmt.Sprint(pco2))
		}
		for j, p := range r.Pressures {
			row := []float64{p}
			for i := range r.PCO2s {
				row = append(row, r.Carbonate.At(carbonate, k, i, j))
			}
			s.rows = append(s.rows, row)
		}
		o = append(o, s)
	}
	return o
}

func rowOf(r *ocra.CCDResult, k int) []float64 {
	_, c := r.CCD.Dims()
	row := make([]float64, c)
	for i := range row {
		row[i] = r.CCD.At(k, i)
	}
	return row
}

// phaseSheets returns the stable phases as a function of PCO2.
func phaseSheets(r *ocra.PhaseResult) []sheet {
	s := sheet{
		name:   "phases",
		header: append([]string{axisLabel(ocra.ByPCO2)}, r.Columns()...),
		rows:   make([][]float64, len(r.Axis)),
	}
	for j, x := range r.Axis {
		s.rows[j] = []float64{x, r.Cation[j], r.Carbonate[j], r.Silicates[j]}
	}
	return []sheet{s}
}
