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

// Package hydrostatic converts between pressure and depth in a
// water column of constant density.
package hydrostatic

import (
	"fmt"

	"github.com/ctessum/unit"
)

// Pascals per bar.
const barToPa = 1.e5

// Column describes a hydrostatic water column.
type Column struct {
	Density float64 // kg/m³
	Gravity float64 // m/s²
}

// Ocean is a column of water with the density of pure water under
// Earth's surface gravity.
var Ocean = Column{Density: 1000, Gravity: 9.81}

// DepthUnit returns the depth at which the hydrostatic pressure
// equals p.
func (c Column) DepthUnit(p *unit.Unit) (*unit.Unit, error) {
	if err := p.Check(unit.Pascal); err != nil {
		return nil, fmt.Errorf("hydrostatic: pressure: %v", err)
	}
	rho := unit.New(c.Density, unit.KilogramPerMeter3)
	g := unit.New(c.Gravity, unit.MeterPerSecond2)
	d := unit.Div(p, unit.Mul(rho, g))
	if err := d.Check(unit.Meter); err != nil {
		return nil, fmt.Errorf("hydrostatic: depth: %v", err)
	}
	return d, nil
}

// Depth returns the depth [km] at which the hydrostatic pressure is
// pressure [bar].
func (c Column) Depth(pressure float64) float64 {
	d, err := c.DepthUnit(unit.New(pressure*barToPa, unit.Pascal))
	if err != nil {
		panic(err) // The dimensions are fixed above.
	}
	return d.Value() / 1000
}

// Pressure returns the hydrostatic pressure [bar] at depth [km].
// It is the inverse of Depth.
func (c Column) Pressure(depth float64) float64 {
	return depth * 1000 * c.Density * c.Gravity / barToPa
}
