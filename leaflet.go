/*
 * leaflet.go, part of goleaflet.
 *
 * Copyright 2023 The goleaflet developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package leaflet

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Atom contains the data read for one atom, except for the coordinates,
//which live in the System coordinate matrix. Atoms are not modified
//after loading.
type Atom struct {
	ID      int //sequential atom number, 1-based, as GROMACS counts them
	Name    string
	MolName string //residue (species) name
	MolID   int    //residue number
	Charge  float64
	Symbol  string
}

//Box contains the three edge lengths of an orthorhombic simulation box,
//in nm. A zero length along an axis means no periodicity along that axis.
type Box [3]float64

//Dim returns the box length along the given axis.
func (B Box) Dim(a Axis) float64 {
	return B[a]
}

//Axis identifies one of the three cartesian axes.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

//ParseAxis returns the Axis named by s ("x", "y" or "z", case
//insensitive) and an error if s names no axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return Z, fmt.Errorf("leaflet: %q is not an axis name", s)
}

//System contains all the atoms of one snapshot, their coordinates and
//the simulation box. The atom data and the coordinates are kept apart,
//the coordinates in an N x 3 matrix where the ith row corresponds to the
//ith atom.
type System struct {
	atoms  []*Atom
	coords *mat.Dense
	box    Box
}

//NewSystem assembles a System from atoms, an N x 3 coordinate matrix and
//a box. It returns an error if either slice is nil or their sizes do not
//match.
func NewSystem(atoms []*Atom, coords *mat.Dense, box Box) (*System, error) {
	if atoms == nil || coords == nil {
		return nil, fmt.Errorf("leaflet: supplied nil atoms or coordinates")
	}
	r, c := coords.Dims()
	if c != 3 {
		return nil, fmt.Errorf("leaflet: coordinate matrix must have 3 columns, has %d", c)
	}
	if r != len(atoms) {
		return nil, fmt.Errorf("leaflet: mismatched atoms (%d) and coordinates (%d)", len(atoms), r)
	}
	return &System{atoms: atoms, coords: coords, box: box}, nil
}

//Len returns the number of atoms in the system.
func (S *System) Len() int {
	return len(S.atoms)
}

//Atom returns the ith (0-based) atom of the system. Panics if out of
//range.
func (S *System) Atom(i int) *Atom {
	if i < 0 || i >= len(S.atoms) {
		panic("System: requested Atom out of bounds")
	}
	return S.atoms[i]
}

//Coord puts the cartesian coordinates of the ith atom in dst, which is
//allocated if nil, and returns it. Panics if out of range.
func (S *System) Coord(i int, dst []float64) []float64 {
	return mat.Row(dst, i, S.coords)
}

//Coords returns the coordinate matrix of the system. The matrix is
//shared, not copied.
func (S *System) Coords() *mat.Dense {
	return S.coords
}

//Box returns the simulation box of the system.
func (S *System) Box() Box {
	return S.box
}

//All returns a selection containing every atom of the system, in order.
func (S *System) All() *Selection {
	indexes := make([]int, S.Len())
	for i := range indexes {
		indexes[i] = i
	}
	return &Selection{sys: S, indexes: indexes}
}
