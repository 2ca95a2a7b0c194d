/*
 * gro.go, part of goleaflet.
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

//Package gro reads single-snapshot Gromacs gro structure files. Only the
//first frame of a file is read; velocities, when present, are ignored.
package gro

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	leaflet "github.com/rmera/goleaflet"
)

//The fixed gro columns:
//resid [0:5], resname [5:10], atom name [10:15], atom number [15:20],
//then x, y and z in nm, 8 columns each. Anything after the coordinates
//(velocities) is ignored.
const minLineLen = 44

//Read reads the gro file with the given name and returns the system it
//describes. Files compressed with gzip (.gz) or zstd (.zst) are
//decompressed on the fly.
func Read(filename string) (*leaflet.System, error) {
	f, err := open(filename)
	if err != nil {
		return nil, fmt.Errorf("gro: couldn't open %s: %w", filename, err)
	}
	defer f.Close()
	sys, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("gro: couldn't read %s: %w", filename, err)
	}
	return sys, nil
}

//ReadFrom reads one gro snapshot from r.
func ReadFrom(r io.Reader) (*leaflet.System, error) {
	buf := bufio.NewReader(r)
	if _, err := buf.ReadString('\n'); err != nil { //title line, discarded
		return nil, fmt.Errorf("couldn't read the title line: %w", err)
	}
	countline, err := buf.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("couldn't read the atom count: %w", err)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(countline))
	if err != nil || natoms <= 0 {
		return nil, fmt.Errorf("bad atom count line %q", strings.TrimSpace(countline))
	}
	atoms := make([]*leaflet.Atom, 0, natoms)
	coords := make([]float64, 0, 3*natoms)
	for i := 0; i < natoms; i++ {
		line, err := buf.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("file ends at atom %d of %d: %w", i+1, natoms, err)
		}
		at, c, err := parseAtomLine(line, i)
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, at)
		coords = append(coords, c[0], c[1], c[2])
	}
	boxline, err := buf.ReadString('\n')
	if err != nil && boxline == "" {
		return nil, fmt.Errorf("couldn't read the box line: %w", err)
	}
	box, err := parseBoxLine(boxline)
	if err != nil {
		return nil, err
	}
	return leaflet.NewSystem(atoms, mat.NewDense(natoms, 3, coords), box)
}

func parseAtomLine(line string, i int) (*leaflet.Atom, [3]float64, error) {
	var c [3]float64
	line = strings.TrimRight(line, "\n")
	if len(line) < minLineLen {
		return nil, c, fmt.Errorf("atom line %d too short: %q", i+3, line)
	}
	at := new(leaflet.Atom)
	var err error
	at.MolID, err = strconv.Atoi(strings.TrimSpace(line[0:5]))
	if err != nil {
		return nil, c, fmt.Errorf("bad residue number on line %d: %w", i+3, err)
	}
	at.MolName = strings.TrimSpace(line[5:10])
	at.Name = strings.TrimSpace(line[10:15])
	//The atom-number column wraps at 99999 in large systems, so the
	//sequential position is the stable identifier, as Gromacs counts it.
	at.ID = i + 1
	for j := 0; j < 3; j++ {
		v := line[20+8*j : 28+8*j]
		c[j], err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, c, fmt.Errorf("bad coordinate %q on line %d: %w", v, i+3, err)
		}
	}
	return at, c, nil
}

//parseBoxLine reads the three leading box vector lengths. Gro files for
//triclinic boxes carry up to nine numbers; only the diagonal (the first
//three) provides the per-axis wrap distance used here.
func parseBoxLine(line string) (leaflet.Box, error) {
	var box leaflet.Box
	f := strings.Fields(line)
	if len(f) < 3 {
		return box, fmt.Errorf("bad box line %q", strings.TrimSpace(line))
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			return box, fmt.Errorf("bad box length %q: %w", f[i], err)
		}
		box[i] = v
	}
	return box, nil
}
