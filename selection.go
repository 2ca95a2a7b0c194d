/*
 * selection.go, part of goleaflet.
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

//Selection is an ordered list of references (0-based indexes) to the
//atoms of one System. Selections never own atom data, and they never
//deduplicate: membership is positional. An atom listed twice is counted
//twice.
type Selection struct {
	sys     *System
	indexes []int
}

//NewSelection returns a selection over sys with the given atom indexes.
//The index slice is copied. Indexes out of range cause an error.
func NewSelection(sys *System, indexes []int) (*Selection, error) {
	if sys == nil {
		return nil, ErrMismatchedSystems
	}
	ix := make([]int, len(indexes))
	for i, v := range indexes {
		if v < 0 || v >= sys.Len() {
			return nil, &indexError{v, sys.Len()}
		}
		ix[i] = v
	}
	return &Selection{sys: sys, indexes: ix}, nil
}

type indexError struct {
	index, natoms int
}

func (e *indexError) Error() string {
	return sf("leaflet: atom index %d out of range for a system of %d atoms", e.index, e.natoms)
}

//Len returns the number of atoms in the selection.
func (S *Selection) Len() int {
	return len(S.indexes)
}

//System returns the system the selection refers to.
func (S *Selection) System() *System {
	return S.sys
}

//Index returns the system index of the ith atom of the selection.
func (S *Selection) Index(i int) int {
	return S.indexes[i]
}

//Atom returns the ith atom of the selection.
func (S *Selection) Atom(i int) *Atom {
	return S.sys.Atom(S.indexes[i])
}

//Coord puts the coordinates of the ith atom of the selection in dst,
//which is allocated if nil, and returns it.
func (S *Selection) Coord(i int, dst []float64) []float64 {
	return S.sys.Coord(S.indexes[i], dst)
}

//AppendSel appends every atom of the given selections, in order, to the
//receiver. All selections must refer to the receiver's system.
func (S *Selection) AppendSel(sels ...*Selection) error {
	for _, v := range sels {
		if v.sys != S.sys {
			return ErrMismatchedSystems
		}
		S.indexes = append(S.indexes, v.indexes...)
	}
	return nil
}

//Intersect returns a new selection with the atoms of the receiver that
//are also present in other, preserving the receiver's order. Both
//selections must refer to the same system.
func (S *Selection) Intersect(other *Selection) (*Selection, error) {
	if other.sys != S.sys {
		return nil, ErrMismatchedSystems
	}
	in := make(map[int]bool, other.Len())
	for _, v := range other.indexes {
		in[v] = true
	}
	ret := &Selection{sys: S.sys}
	for _, v := range S.indexes {
		if in[v] {
			ret.indexes = append(ret.indexes, v)
		}
	}
	return ret, nil
}

//SplitByRes partitions the selection into one sub-selection per residue
//number. Every atom appears in exactly one sub-selection, atoms keep
//their relative order, and the sub-selections are ordered by the first
//appearance of each residue number. This is a stable partition, not a
//sort: residue numbers need not be contiguous or sorted. An empty
//selection yields an empty result.
func (S *Selection) SplitByRes() []*Selection {
	var residues []*Selection
	where := make(map[int]int) //residue number -> position in residues
	for _, v := range S.indexes {
		molid := S.sys.Atom(v).MolID
		p, seen := where[molid]
		if !seen {
			p = len(residues)
			where[molid] = p
			residues = append(residues, &Selection{sys: S.sys})
		}
		residues[p].indexes = append(residues[p].indexes, v)
	}
	return residues
}

//ResNames returns the distinct residue (species) names in the selection,
//in order of first occurrence. The returned strings are copies, so they
//survive the atoms they came from.
func (S *Selection) ResNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, v := range S.indexes {
		name := S.sys.Atom(v).MolName
		if !seen[name] {
			seen[name] = true
			names = append(names, string([]byte(name)))
		}
	}
	return names
}
