/*
 * geometric.go, part of goleaflet.
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
	"math"
)

//CenterOfGeometry returns the unweighted geometric center of the atoms
//in sel, respecting the periodicity of the box: atoms of one simulation
//are periodic images, so a plain arithmetic mean is wrong whenever the
//selection straddles a box boundary. Each periodic axis is treated as a
//circle and the center obtained from the circular mean of the mapped
//angles, which makes the result invariant to which periodic image of the
//system was stored. Along axes without periodicity (box length zero) a
//plain mean is used. It returns ErrEmptySelection if sel has no atoms.
func CenterOfGeometry(sel *Selection, box Box) ([]float64, error) {
	n := sel.Len()
	if n == 0 {
		return nil, ErrEmptySelection
	}
	center := make([]float64, 3)
	coord := make([]float64, 3)
	for a := X; a <= Z; a++ {
		l := box.Dim(a)
		if l <= 0 {
			sum := 0.0
			for i := 0; i < n; i++ {
				coord = sel.Coord(i, coord)
				sum += coord[a]
			}
			center[a] = sum / float64(n)
			continue
		}
		var sins, coss float64
		for i := 0; i < n; i++ {
			coord = sel.Coord(i, coord)
			s, c := math.Sincos(2 * math.Pi * coord[a] / l)
			sins += s
			coss += c
		}
		mean := math.Atan2(sins/float64(n), coss/float64(n))
		v := l * mean / (2 * math.Pi)
		//fold the center back into [0,l)
		v -= l * math.Floor(v/l)
		center[a] = v
	}
	return center, nil
}

//Distance1D returns the signed displacement from point b to point a
//along the given axis, using the minimal periodic image: the result is
//always in [-l/2, l/2) for a box of length l along that axis. With a
//zero box length the plain difference is returned.
func Distance1D(a, b []float64, axis Axis, box Box) float64 {
	d := a[axis] - b[axis]
	l := box.Dim(axis)
	if l <= 0 {
		return d
	}
	d -= l * math.Round(d/l)
	return d
}
