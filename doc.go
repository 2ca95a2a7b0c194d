/*
 * doc.go, part of goleaflet.
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

//Package leaflet assigns the lipids of a membrane simulation snapshot to
//the two membrane leaflets. Lipid atoms are grouped into residues, the
//periodicity-corrected geometric center of the membrane is obtained, and
//each residue is placed in the upper or lower leaflet depending on the
//position of a single marker atom (typically a head-group atom, such as
//a phosphate) relative to that center, along the axis normal to the
//membrane plane. The results are collected into one atom group per lipid
//species and leaflet, which the ndx subpackage can write as a GROMACS
//index file.
//
//The package works on a single, static snapshot. Structures are read
//from gro files by the gro subpackage.
package leaflet
