package leaflet

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func markers(Te *testing.T, sys *System) *Selection {
	Te.Helper()
	sel, err := Select(sys, "name PO4", nil)
	if err != nil {
		Te.Fatal(err)
	}
	return sel
}

//The reference scenario: 4 lipids of 2 species in a 10x10x10 box with
//the membrane center at z=5 and markers at z = 2, 8, 1 and 9. Each
//whole residue must land in the right bucket, in original atom order.
func TestAssign(Te *testing.T) {
	sys := testSystem(Te)
	l, err := Assign(sys.All(), markers(Te, sys), Z)
	if err != nil {
		Te.Fatal(err)
	}
	if l.Len() != 4 {
		Te.Fatalf("expected 4 groups, got %d", l.Len())
	}
	sp := l.Species()
	if sp[0] != "POPC" || sp[1] != "POPE" {
		Te.Errorf("species order %v, expected [POPC POPE]", sp)
	}
	wantNames := []string{"POPC_lower", "POPC_upper", "POPE_lower", "POPE_upper"}
	wantIxs := [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11}}
	for i := 0; i < l.Len(); i++ {
		name, err := l.Name(i)
		if err != nil {
			Te.Fatal(err)
		}
		if name != wantNames[i] {
			Te.Errorf("group %d named %s, want %s", i, name, wantNames[i])
		}
		g := l.Group(i)
		if g.Len() != len(wantIxs[i]) {
			Te.Fatalf("group %s has %d atoms, want %d", name, g.Len(), len(wantIxs[i]))
		}
		for j, want := range wantIxs[i] {
			if g.Index(j) != want {
				Te.Errorf("group %s atom %d is index %d, want %d", name, j, g.Index(j), want)
			}
		}
	}
}

//Re-running with the same inputs must give the same table: there is no
//hidden state in the classification.
func TestAssignDeterministic(Te *testing.T) {
	sys := testSystem(Te)
	l1, err := Assign(sys.All(), markers(Te, sys), Z)
	if err != nil {
		Te.Fatal(err)
	}
	l2, err := Assign(sys.All(), markers(Te, sys), Z)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < l1.Len(); i++ {
		if l1.Group(i).Len() != l2.Group(i).Len() {
			Te.Fatalf("group %d differs between runs", i)
		}
		for j := 0; j < l1.Group(i).Len(); j++ {
			if l1.Group(i).Index(j) != l2.Group(i).Index(j) {
				Te.Errorf("group %d atom %d differs between runs", i, j)
			}
		}
	}
}

//A marker exactly at the center is "lower": the test is strictly
//greater-than zero.
func TestAssignBoundary(Te *testing.T) {
	atoms := []*Atom{
		{ID: 1, Name: "PO4", MolName: "DPPC", MolID: 1},
		{ID: 2, Name: "C1", MolName: "DPPC", MolID: 1},
		{ID: 3, Name: "C2", MolName: "DPPC", MolID: 1},
	}
	//no box, so the center is the plain mean: exactly z=5, where the
	//marker sits
	coords := []float64{1, 1, 5, 1, 1, 4, 1, 1, 6}
	sys, err := NewSystem(atoms, mat.NewDense(3, 3, coords), Box{})
	if err != nil {
		Te.Fatal(err)
	}
	l, err := Assign(sys.All(), markers(Te, sys), Z)
	if err != nil {
		Te.Fatal(err)
	}
	if l.Group(Lower).Len() != 3 || l.Group(Upper).Len() != 0 {
		Te.Errorf("zero displacement must classify as lower, got lower=%d upper=%d",
			l.Group(Lower).Len(), l.Group(Upper).Len())
	}
}

func TestAssignMissingMarker(Te *testing.T) {
	sys := testSystem(Te)
	incomplete, err := NewSelection(sys, []int{0, 3, 6}) //no marker for resid 4
	if err != nil {
		Te.Fatal(err)
	}
	_, err = Assign(sys.All(), incomplete, Z)
	var missing *MissingMarkerError
	if !errors.As(err, &missing) {
		Te.Fatalf("expected a MissingMarkerError, got %v", err)
	}
	if missing.MolName != "POPE" || missing.MolID != 4 {
		Te.Errorf("error reports %s (resid %d), want POPE (resid 4)", missing.MolName, missing.MolID)
	}
}

func TestAssignAmbiguousMarker(Te *testing.T) {
	sys := testSystem(Te)
	doubled, err := NewSelection(sys, []int{0, 1, 3, 6, 9}) //resid 1 has 2 "markers"
	if err != nil {
		Te.Fatal(err)
	}
	_, err = Assign(sys.All(), doubled, Z)
	var ambiguous *AmbiguousMarkerError
	if !errors.As(err, &ambiguous) {
		Te.Fatalf("expected an AmbiguousMarkerError, got %v", err)
	}
	if ambiguous.MolName != "POPC" || ambiguous.MolID != 1 || ambiguous.Found != 2 {
		Te.Errorf("error reports %d markers for %s (resid %d), want 2 for POPC (resid 1)",
			ambiguous.Found, ambiguous.MolName, ambiguous.MolID)
	}
}

func TestAssignEmptyMembrane(Te *testing.T) {
	sys := testSystem(Te)
	empty := &Selection{sys: sys}
	if _, err := Assign(empty, markers(Te, sys), Z); !errors.Is(err, ErrEmptySelection) {
		Te.Errorf("expected ErrEmptySelection, got %v", err)
	}
}

func TestAssignMismatchedSystems(Te *testing.T) {
	sys := testSystem(Te)
	other := testSystem(Te)
	if _, err := Assign(sys.All(), markers(Te, other), Z); !errors.Is(err, ErrMismatchedSystems) {
		Te.Errorf("expected ErrMismatchedSystems, got %v", err)
	}
}

//Empty buckets stay in the table: selecting only the two lower lipids
//must still yield a 4-entry table with two empty groups.
func TestAssignEmptyBuckets(Te *testing.T) {
	sys := testSystem(Te)
	lower, err := Select(sys, "resid 1 3", nil)
	if err != nil {
		Te.Fatal(err)
	}
	l, err := Assign(lower, markers(Te, sys), Z)
	if err != nil {
		Te.Fatal(err)
	}
	if l.Len() != 4 {
		Te.Fatalf("expected the full 4-entry table, got %d", l.Len())
	}
	if l.Group(0).Len() != 3 || l.Group(2).Len() != 3 {
		Te.Errorf("lower groups should hold the residues: %d and %d atoms", l.Group(0).Len(), l.Group(2).Len())
	}
	if l.Group(1).Len() != 0 || l.Group(3).Len() != 0 {
		Te.Errorf("upper groups should be empty: %d and %d atoms", l.Group(1).Len(), l.Group(3).Len())
	}
}
