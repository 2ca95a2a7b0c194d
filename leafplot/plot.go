/*
 * plot.go, part of goleaflet.
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

//Package leafplot plots the distribution of marker-atom displacements
//from the membrane center, a quick visual check that the two leaflets
//are actually separated along the chosen axis.
package leafplot

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	leaflet "github.com/rmera/goleaflet"
)

//Displacements returns the signed periodic displacement of every atom in
//markers from the geometric center of membrane, along the given axis.
//Both selections must belong to the same system.
func Displacements(membrane, markers *leaflet.Selection, axis leaflet.Axis) ([]float64, error) {
	if membrane.System() != markers.System() {
		return nil, leaflet.ErrMismatchedSystems
	}
	box := membrane.System().Box()
	center, err := leaflet.CenterOfGeometry(membrane, box)
	if err != nil {
		return nil, err
	}
	if markers.Len() == 0 {
		return nil, leaflet.ErrEmptySelection
	}
	ret := make([]float64, markers.Len())
	coord := make([]float64, 3)
	for i := 0; i < markers.Len(); i++ {
		coord = markers.Coord(i, coord)
		ret[i] = leaflet.Distance1D(coord, center, axis, box)
	}
	return ret, nil
}

//DisplacementHist builds a histogram of marker displacements from the
//membrane center. nbins <= 0 selects a default of 20 bins.
func DisplacementHist(membrane, markers *leaflet.Selection, axis leaflet.Axis, nbins int) (*plot.Plot, error) {
	d, err := Displacements(membrane, markers, axis)
	if err != nil {
		return nil, err
	}
	if nbins <= 0 {
		nbins = 20
	}
	h, err := plotter.NewHist(plotter.Values(d), nbins)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = "Marker displacement from membrane center"
	p.X.Label.Text = fmt.Sprintf("displacement along %v (nm), mean %.3f, sd %.3f",
		axis, stat.Mean(d, nil), stat.StdDev(d, nil))
	p.Y.Label.Text = "markers"
	p.Add(h)
	return p, nil
}

//SaveDisplacementHist writes the histogram to a file; the format comes
//from the file extension (png, svg, pdf and others, as supported by
//plot.Plot.Save).
func SaveDisplacementHist(membrane, markers *leaflet.Selection, axis leaflet.Axis, nbins int, filename string) error {
	p, err := DisplacementHist(membrane, markers, axis, nbins)
	if err != nil {
		return err
	}
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename)
}
