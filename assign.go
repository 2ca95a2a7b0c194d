/*
 * assign.go, part of goleaflet.
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
)

//Leaflet labels for the two layers of the membrane.
const (
	Lower = 0
	Upper = 1
)

//Leaflets is the result of an assignment: one atom group per lipid
//species and leaflet. For K species there are 2K groups, the group for
//species index s and leaflet f at position 2*s+f, so the buckets come in
//species first-occurrence order, lower before upper. Groups can be
//empty; they are still part of the table.
type Leaflets struct {
	species []string
	groups  []*Selection
}

//Len returns the number of groups in the table (twice the number of
//species).
func (L *Leaflets) Len() int {
	return len(L.groups)
}

//Species returns a copy of the species-name list, in first-occurrence
//order.
func (L *Leaflets) Species() []string {
	ret := make([]string, len(L.species))
	copy(ret, L.species)
	return ret
}

//Group returns the ith group of the table. Panics if out of range.
func (L *Leaflets) Group(i int) *Selection {
	if i < 0 || i >= len(L.groups) {
		panic("Leaflets: requested group out of bounds")
	}
	return L.groups[i]
}

//Name returns the name of the ith group, the species name suffixed with
//"_lower" or "_upper". An index whose species is missing from the list
//means the table was built inconsistently, which is a bug, not bad
//input.
func (L *Leaflets) Name(i int) (string, error) {
	if i < 0 || i >= len(L.groups) {
		return "", fmt.Errorf("internal inconsistency: requested name of group %d in a table of %d groups. This should never happen", i, len(L.groups))
	}
	suffix := "_lower"
	if i%2 == Upper {
		suffix = "_upper"
	}
	return L.species[i/2] + suffix, nil
}

//classify assigns a marker position to a leaflet given the membrane
//center. Strictly positive displacement along the axis means Upper;
//zero or negative, including a marker exactly at the center, means
//Lower.
func classify(marker, center []float64, axis Axis, box Box) int {
	if Distance1D(marker, center, axis, box) > 0 {
		return Upper
	}
	return Lower
}

//Assign splits the membrane selection into residues, obtains the
//periodicity-corrected geometric center of the whole membrane, and puts
//every residue in the upper or lower leaflet table bucket for its
//species, depending on the position of its single marker atom relative
//to the center along the given axis. The markers selection must contain
//exactly one atom per membrane residue; zero or several markers for any
//residue abort the assignment, as does an empty membrane selection.
//Each residue is classified independently, from its own marker only, so
//the same input always produces the same table.
func Assign(membrane, markers *Selection, axis Axis) (*Leaflets, error) {
	if membrane.System() != markers.System() {
		return nil, ErrMismatchedSystems
	}
	box := membrane.System().Box()
	residues := membrane.SplitByRes()
	if len(residues) == 0 {
		return nil, ErrEmptySelection
	}
	center, err := CenterOfGeometry(membrane, box)
	if err != nil {
		return nil, fmt.Errorf("couldn't obtain the membrane center: %w", err)
	}
	species := membrane.ResNames()
	index := make(map[string]int, len(species))
	for i, v := range species {
		index[v] = i
	}
	groups := make([]*Selection, 2*len(species))
	for i := range groups {
		groups[i] = &Selection{sys: membrane.System()}
	}
	marker := make([]float64, 3)
	for _, res := range residues {
		first := res.Atom(0)
		m, err := res.Intersect(markers)
		if err != nil {
			return nil, err
		}
		if m.Len() == 0 {
			return nil, &MissingMarkerError{MolName: first.MolName, MolID: first.MolID}
		}
		if m.Len() > 1 {
			return nil, &AmbiguousMarkerError{MolName: first.MolName, MolID: first.MolID, Found: m.Len()}
		}
		marker = m.Coord(0, marker)
		leaf := classify(marker, center, axis, box)
		s, ok := index[first.MolName]
		if !ok {
			return nil, &UnknownSpeciesError{MolName: first.MolName, MolID: first.MolID}
		}
		if err := groups[2*s+leaf].AppendSel(res); err != nil {
			return nil, err
		}
	}
	return &Leaflets{species: species, groups: groups}, nil
}
