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
	"errors"
	"fmt"
	"strings"
)

// Usage errors. Sweeps return these before preparing the Engine, so no
// results are produced.
var (
	// ErrUnknownComparison is returned for a pH comparison axis other than
	// "PCO2", "P", or "T".
	ErrUnknownComparison = errors.New(`ocra: unknown comparison; valid options are "PCO2", "P", and "T"`)

	// ErrBadCount is returned when a grid is requested with fewer than one point.
	ErrBadCount = errors.New("ocra: the number of grid points must be at least 1")

	// ErrSystemNotSupported is returned when a calculation is requested
	// for a system it is not defined for.
	ErrSystemNotSupported = errors.New(`ocra: this calculation is only available for DIV = "Ca"`)
)

// Coordinate identifies a position along one axis of a sweep.
type Coordinate struct {
	Axis  string  // axis name, e.g. "PCO2" or "beta"
	Index int     // position along the axis
	Value float64 // value at that position
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%s[%d]=%g", c.Axis, c.Index, c.Value)
}

// SolveError is returned when the equilibrium engine fails at a grid
// point. The sweep that returns it is aborted.
type SolveError struct {
	System      System
	Point       []Coordinate
	Composition Composition
	Err         error
}

func (e *SolveError) Error() string {
	p := make([]string, len(e.Point))
	for i, c := range e.Point {
		p[i] = c.String()
	}
	return fmt.Sprintf("ocra: solving %s equilibrium at %s: %v", e.System, strings.Join(p, ", "), e.Err)
}

// Unwrap returns the underlying engine error.
func (e *SolveError) Unwrap() error { return e.Err }
