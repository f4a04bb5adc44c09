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
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ResultGrid holds the amounts of named species over the points of a
// sweep. Values are stored in row-major order, with the last dimension
// varying fastest.
type ResultGrid struct {
	dims []int
	data map[string][]float64
}

// NewResultGrid returns an empty grid with the given dimensions.
func NewResultGrid(dims ...int) *ResultGrid {
	d := make([]int, len(dims))
	copy(d, dims)
	return &ResultGrid{dims: d, data: make(map[string][]float64)}
}

// Dims returns the dimensions of the grid.
func (g *ResultGrid) Dims() []int {
	d := make([]int, len(g.dims))
	copy(d, g.dims)
	return d
}

// Names returns the names of the species in the grid in sorted order.
func (g *ResultGrid) Names() []string {
	o := make([]string, 0, len(g.data))
	for k := range g.data {
		o = append(o, k)
	}
	sort.Strings(o)
	return o
}

func (g *ResultGrid) len() int {
	n := 1
	for _, d := range g.dims {
		n *= d
	}
	return n
}

func (g *ResultGrid) index(idx []int) int {
	if len(idx) != len(g.dims) {
		panic(fmt.Errorf("ocra: %d indices for %d-dimensional grid", len(idx), len(g.dims)))
	}
	i := 0
	for d, ii := range idx {
		if ii < 0 || ii >= g.dims[d] {
			panic(fmt.Errorf("ocra: index %d out of range [0,%d) in dimension %d", ii, g.dims[d], d))
		}
		i = i*g.dims[d] + ii
	}
	return i
}

// Set sets the value of species name at the given point.
func (g *ResultGrid) Set(name string, v float64, idx ...int) {
	d, ok := g.data[name]
	if !ok {
		d = make([]float64, g.len())
		g.data[name] = d
	}
	d[g.index(idx)] = v
}

// setAll sets the values of all of the species in vals at the given point.
func (g *ResultGrid) setAll(vals map[string]float64, idx ...int) {
	for k, v := range vals {
		g.Set(k, v, idx...)
	}
}

// At returns the value of species name at the given point.
// It returns 0 if the species is not in the grid.
func (g *ResultGrid) At(name string, idx ...int) float64 {
	d, ok := g.data[name]
	if !ok {
		return 0
	}
	return d[g.index(idx)]
}

// Line returns the values of species name along the last dimension of the
// grid at the point specified by the leading indices. The returned slice
// shares memory with the grid.
func (g *ResultGrid) Line(name string, idx ...int) []float64 {
	n := g.dims[len(g.dims)-1]
	d, ok := g.data[name]
	if !ok {
		return make([]float64, n)
	}
	start := g.index(append(append([]int{}, idx...), 0))
	return d[start : start+n]
}

// Matrix returns the values of species name in a two-dimensional grid
// as a matrix. The matrix shares memory with the grid. It panics if the
// grid is not two-dimensional.
func (g *ResultGrid) Matrix(name string) *mat.Dense {
	if len(g.dims) != 2 {
		panic(fmt.Errorf("ocra: Matrix called on %d-dimensional grid", len(g.dims)))
	}
	d, ok := g.data[name]
	if !ok {
		return mat.NewDense(g.dims[0], g.dims[1], nil)
	}
	return mat.NewDense(g.dims[0], g.dims[1], d)
}
