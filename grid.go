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

	"gonum.org/v1/gonum/floats"
)

// Axis is an ordered, strictly increasing set of grid values.
type Axis []float64

// Fixed grid bounds.
const (
	TempMin     = 273.16 // K
	TempMax     = 372.16 // K
	PCO2Min     = 1e-8   // bar
	PressureMin = 1.     // bar
	PressureMax = 5000.  // bar
)

// PCO2Max is the upper bound of the PCO2 grid, 10^-0.5 bar.
var PCO2Max = math.Pow(10, -0.5)

// LinearAxis returns n values evenly spaced between min and max,
// inclusive. If n == 1, the axis only contains min.
func LinearAxis(min, max float64, n int) Axis {
	if n < 1 {
		return nil
	}
	a := make(Axis, n)
	if n == 1 {
		a[0] = min
		return a
	}
	floats.Span(a, min, max)
	return a
}

// LogAxis returns n values between min and max, inclusive, evenly
// spaced in logarithmic space. min and max must be > 0.
// If n == 1, the axis only contains min.
func LogAxis(min, max float64, n int) Axis {
	if n < 1 {
		return nil
	}
	if !(min > 0) || !(max > 0) {
		panic("ocra: logarithmic axis bounds must be > 0")
	}
	a := make(Axis, n)
	if n == 1 {
		a[0] = min
		return a
	}
	floats.LogSpan(a, min, max)
	// Pin the ends so that they exactly match the bounds.
	a[0], a[n-1] = min, max
	return a
}

// TemperatureAxis returns n temperatures [K] between 273.16 and 372.16 K.
func TemperatureAxis(n int) Axis { return LinearAxis(TempMin, TempMax, n) }

// PCO2Axis returns n CO2 partial pressures [bar] between 1e-8 and
// 10^-0.5 bar, spaced logarithmically.
func PCO2Axis(n int) Axis { return LogAxis(PCO2Min, PCO2Max, n) }

// PressureAxis returns n total pressures [bar] between 1 and 5000 bar,
// spaced logarithmically.
func PressureAxis(n int) Axis { return LogAxis(PressureMin, PressureMax, n) }
