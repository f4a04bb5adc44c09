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
	"math"

	"github.com/spatialmodel/ocra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Figure dimensions.
const (
	figWidth  = 6 * vg.Inch
	figHeight = 4 * vg.Inch
)

// line is a named series of points.
type line struct {
	name string
	x, y []float64
}

func xys(x, y []float64) plotter.XYs {
	o := make(plotter.XYs, len(x))
	for i := range x {
		o[i].X = x[i]
		o[i].Y = y[i]
	}
	return o
}

// linePlot returns a plot of lines. If logX is true, the x axis is
// logarithmic.
func linePlot(title, xLabel, yLabel string, logX bool, lines []line) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if logX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{}
	}
	args := make([]interface{}, 0, 2*len(lines))
	for _, l := range lines {
		args = append(args, l.name, xys(l.x, l.y))
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return nil, err
	}
	p.Legend.Top = true
	return p, nil
}

// phFigure plots pH against the comparison axis for each weathering regime.
func phFigure(r *ocra.PHResult) (*plot.Plot, error) {
	lines := make([]line, len(r.Regimes))
	for i, beta := range r.Regimes {
		lines[i] = line{name: regimeName(beta), x: r.Axis, y: r.Grid.Line(ocra.PH, i)}
	}
	return linePlot(fmt.Sprintf("%s system", r.System), axisLabel(r.Comparison), "pH",
		r.Comparison != ocra.ByTemperature, lines)
}

// analyticalFigure plots numerical, analytical, and semi-analytical pH
// against PCO2 for each cation supply.
func analyticalFigure(r *ocra.AnalyticalResult) (*plot.Plot, error) {
	var lines []line
	for i, div := range r.Supplies {
		lines = append(lines,
			line{name: fmt.Sprintf("numerical, DIV=%g", div), x: r.Axis, y: r.Numerical.Line(ocra.PH, i)},
			line{name: fmt.Sprintf("analytical, DIV=%g", div), x: r.Axis, y: r.Analytical.Line(ocra.PH, i)},
			line{name: fmt.Sprintf("semi-analytical, DIV=%g", div), x: r.Axis, y: r.SemiAnalytical.Line(ocra.PH, i)},
		)
	}
	return linePlot(fmt.Sprintf("%s system", r.System), axisLabel(ocra.ByPCO2), "pH", true, lines)
}

// phaseFigure plots the amounts of the stable phases against PCO2.
func phaseFigure(r *ocra.PhaseResult) (*plot.Plot, error) {
	cols := r.Columns()
	lines := []line{
		{name: cols[0], x: r.Axis, y: r.Cation},
		{name: cols[1], x: r.Axis, y: r.Carbonate},
		{name: cols[2], x: r.Axis, y: r.Silicates},
	}
	return linePlot(fmt.Sprintf("%s system, T = %g K", r.System, r.Temp), axisLabel(ocra.ByPCO2), "amount [mol]", true, lines)
}

// ccdGrid fulfils plotter.GridXYZ for a CCD grid, with log10 PCO2 on
// the x axis and temperature on the y axis.
type ccdGrid struct{ r *ocra.CCDResult }

func (g ccdGrid) Dims() (c, r int) { return len(g.r.PCO2s), len(g.r.Temps) }
func (g ccdGrid) Z(c, r int) float64 { return g.r.CCD.At(r, c) }
func (g ccdGrid) X(c int) float64 { return math.Log10(g.r.PCO2s[c]) }
func (g ccdGrid) Y(r int) float64 { return g.r.Temps[r] }

// ccdFigure plots the CCD as a heat map of temperature and PCO2. Grids
// with only one temperature or PCO2 are plotted as lines instead.
func ccdFigure(r *ocra.CCDResult) (*plot.Plot, error) {
	title := fmt.Sprintf("%s CCD [km], β = %g, nSiO2 = %g", r.System, r.Beta, r.NSiO2)
	if len(r.Temps) < 2 || len(r.PCO2s) < 2 {
		lines := make([]line, len(r.Temps))
		for k, temp := range r.Temps {
			lines[k] = line{name: fmt.Sprintf("T = %.2f K", temp), x: r.PCO2s, y: rowOf(r, k)}
		}
		return linePlot(title, axisLabel(ocra.ByPCO2), "CCD [km]", true, lines)
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = "log10 PCO2 [bar]"
	p.Y.Label.Text = "T [K]"
	h := plotter.NewHeatMap(ccdGrid{r}, moreland.ExtendedBlackBody().Palette(255))
	if h.Min == h.Max {
		h.Max = h.Min + 1
	}
	p.Add(h)
	return p, nil
}
