/*
 * ndx.go, part of goleaflet.
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

//Package ndx reads and writes Gromacs index (ndx) files: named groups of
//1-based atom numbers.
package ndx

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	leaflet "github.com/rmera/goleaflet"
)

//how many atom numbers go on one line of an ndx group
const perLine = 15

//Read reads the ndx file with the given name and resolves its groups
//into selections over sys. It returns a map of group name to selection.
//Atom numbers outside the system or malformed lines are errors.
func Read(filename string, sys *leaflet.System) (map[string]*leaflet.Selection, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("ndx: couldn't open %s: %w", filename, err)
	}
	defer f.Close()
	groups, err := ReadFrom(f, sys)
	if err != nil {
		return nil, fmt.Errorf("ndx: couldn't read %s: %w", filename, err)
	}
	return groups, nil
}

//ReadFrom reads ndx groups from r, resolving them over sys.
func ReadFrom(r io.Reader, sys *leaflet.System) (map[string]*leaflet.Selection, error) {
	groups := make(map[string]*leaflet.Selection)
	var name string
	var indexes []int
	flush := func() error {
		if name == "" {
			return nil
		}
		sel, err := leaflet.NewSelection(sys, indexes)
		if err != nil {
			return fmt.Errorf("group %s: %w", name, err)
		}
		groups[name] = sel
		indexes = nil
		return nil
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("malformed group header %q", line)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			name = strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, fmt.Errorf("empty group name in %q", line)
			}
			continue
		}
		if name == "" {
			return nil, fmt.Errorf("atom numbers before any group header: %q", line)
		}
		for _, v := range strings.Fields(line) {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("group %s: bad atom number %q", name, v)
			}
			indexes = append(indexes, n-1) //ndx numbers are 1-based
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return groups, nil
}

//WriteGroup writes one named ndx group: a [ name ] header followed by
//the 1-based atom numbers of the selection, fifteen per line. An empty
//selection produces just the header.
func WriteGroup(w io.Writer, name string, sel *leaflet.Selection) error {
	if _, err := fmt.Fprintf(w, "[ %s ]\n", name); err != nil {
		return err
	}
	n := sel.Len()
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(w, "%4d ", sel.Atom(i).ID); err != nil {
			return err
		}
		if (i+1)%perLine == 0 || i+1 == n {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

//WriteLeaflets writes every group of an assignment table to w, in table
//order. Groups with no atoms are skipped unless empty is true, in which
//case they are written as a bare header.
func WriteLeaflets(w io.Writer, l *leaflet.Leaflets, empty bool) error {
	for i := 0; i < l.Len(); i++ {
		g := l.Group(i)
		if !empty && g.Len() == 0 {
			continue
		}
		name, err := l.Name(i)
		if err != nil {
			return err
		}
		if err := WriteGroup(w, name, g); err != nil {
			return err
		}
	}
	return nil
}
