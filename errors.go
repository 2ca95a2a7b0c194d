/*
 * errors.go, part of goleaflet.
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
	"errors"
	"fmt"
)

//All errors here abort the whole assignment. There is no per-residue
//recovery: a partial, silently incomplete set of groups is worse than a
//hard stop.

//ErrEmptySelection is returned by operations that are undefined on an
//empty selection, such as obtaining a geometric center.
var ErrEmptySelection = errors.New("leaflet: empty selection")

//ErrMismatchedSystems is returned when selections over different systems
//are combined. Atom indexes are only comparable within one system.
var ErrMismatchedSystems = errors.New("leaflet: selections refer to different systems")

//MissingMarkerError reports a residue for which the marker selection
//contains no atom.
type MissingMarkerError struct {
	MolName string
	MolID   int
}

func (e *MissingMarkerError) Error() string {
	return fmt.Sprintf("no marker atom found for lipid %s (resid %d)", e.MolName, e.MolID)
}

//AmbiguousMarkerError reports a residue for which the marker selection
//contains more than one atom. The marker query must identify a unique
//atom per residue.
type AmbiguousMarkerError struct {
	MolName string
	MolID   int
	Found   int
}

func (e *AmbiguousMarkerError) Error() string {
	return fmt.Sprintf("%d marker atoms found for lipid %s (resid %d), expected exactly 1", e.Found, e.MolName, e.MolID)
}

//UnknownSpeciesError reports a residue whose name is absent from the
//species list built from the very same selection. It indicates a bug in
//goleaflet rather than bad input, and is reported as such.
type UnknownSpeciesError struct {
	MolName string
	MolID   int
}

func (e *UnknownSpeciesError) Error() string {
	return fmt.Sprintf("internal inconsistency: residue name %s of resid %d was not found in the list of detected residue names. This should never happen", e.MolName, e.MolID)
}
