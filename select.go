/*
 * select.go, part of goleaflet.
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
	"strconv"
	"strings"
)

//Select resolves a selection expression over sys into a selection. The
//supported expressions are deliberately few:
//
//	name N1 N2 ...        atoms with any of the given atom names
//	resname R1 R2 ...     atoms of any of the given residue names
//	resid I1 I2 A-B ...   atoms of the given residue numbers, or ranges
//	GROUPNAME             the ndx group of that name, from groups
//
//groups may be nil when no index file was read. An expression that can't
//be understood yields an error; a valid expression that matches no atom
//yields an empty selection. Those two conditions are different and the
//caller usually treats them differently.
func Select(sys *System, expr string, groups map[string]*Selection) (*Selection, error) {
	f := fi(expr)
	if len(f) == 0 {
		return nil, fmt.Errorf("leaflet: empty selection expression")
	}
	switch f[0] {
	case "name":
		if len(f) < 2 {
			return nil, fmt.Errorf("leaflet: 'name' needs at least one atom name in %q", expr)
		}
		return matchAtoms(sys, f[1:], func(a *Atom) string { return a.Name }), nil
	case "resname":
		if len(f) < 2 {
			return nil, fmt.Errorf("leaflet: 'resname' needs at least one residue name in %q", expr)
		}
		return matchAtoms(sys, f[1:], func(a *Atom) string { return a.MolName }), nil
	case "resid":
		return matchResid(sys, f[1:], expr)
	}
	//a single bare word is looked up among the named ndx groups
	if len(f) == 1 {
		if g, ok := groups[f[0]]; ok {
			return g, nil
		}
	}
	return nil, fmt.Errorf("leaflet: could not understand the selection query %q", expr)
}

func matchAtoms(sys *System, names []string, key func(*Atom) string) *Selection {
	wanted := make(map[string]bool, len(names))
	for _, v := range names {
		wanted[v] = true
	}
	ret := &Selection{sys: sys}
	for i := 0; i < sys.Len(); i++ {
		if wanted[key(sys.Atom(i))] {
			ret.indexes = append(ret.indexes, i)
		}
	}
	return ret
}

func matchResid(sys *System, args []string, expr string) (*Selection, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("leaflet: 'resid' needs at least one residue number in %q", expr)
	}
	wanted := make(map[int]bool)
	for _, v := range args {
		lo, hi, err := parseResidRange(v)
		if err != nil {
			return nil, fmt.Errorf("leaflet: bad residue number %q in %q: %w", v, expr, err)
		}
		for i := lo; i <= hi; i++ {
			wanted[i] = true
		}
	}
	ret := &Selection{sys: sys}
	for i := 0; i < sys.Len(); i++ {
		if wanted[sys.Atom(i).MolID] {
			ret.indexes = append(ret.indexes, i)
		}
	}
	return ret, nil
}

//parses either a plain residue number or an inclusive A-B range.
func parseResidRange(s string) (int, int, error) {
	if lo, hi, found := strings.Cut(s, "-"); found && lo != "" {
		l, err := strconv.Atoi(lo)
		if err != nil {
			return 0, 0, err
		}
		h, err := strconv.Atoi(hi)
		if err != nil {
			return 0, 0, err
		}
		if h < l {
			return 0, 0, fmt.Errorf("range %q is reversed", s)
		}
		return l, h, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, err
	}
	return n, n, nil
}
