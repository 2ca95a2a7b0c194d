package leaflet

import (
	"testing"
)

func TestSelectName(Te *testing.T) {
	sys := testSystem(Te)
	sel, err := Select(sys, "name PO4", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if sel.Len() != 4 {
		Te.Fatalf("expected 4 PO4 atoms, got %d", sel.Len())
	}
	for i := 0; i < sel.Len(); i++ {
		if sel.Atom(i).Name != "PO4" {
			Te.Errorf("selected atom %s, wanted only PO4", sel.Atom(i).Name)
		}
	}
	sel, err = Select(sys, "name C1 C2", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if sel.Len() != 8 {
		Te.Errorf("expected 8 tail atoms, got %d", sel.Len())
	}
}

func TestSelectResname(Te *testing.T) {
	sys := testSystem(Te)
	sel, err := Select(sys, "resname POPE", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if sel.Len() != 6 || sel.Atom(0).MolID != 3 {
		Te.Errorf("expected the 6 POPE atoms starting at resid 3, got %d atoms", sel.Len())
	}
}

func TestSelectResid(Te *testing.T) {
	sys := testSystem(Te)
	sel, err := Select(sys, "resid 1 3-4", nil)
	if err != nil {
		Te.Fatal(err)
	}
	if sel.Len() != 9 {
		Te.Errorf("expected 9 atoms for resids 1, 3 and 4, got %d", sel.Len())
	}
	if _, err := Select(sys, "resid 4-3", nil); err == nil {
		Te.Error("expected an error for a reversed range")
	}
	if _, err := Select(sys, "resid one", nil); err == nil {
		Te.Error("expected an error for a non-numeric resid")
	}
}

func TestSelectGroup(Te *testing.T) {
	sys := testSystem(Te)
	heads, err := NewSelection(sys, []int{0, 3, 6, 9})
	if err != nil {
		Te.Fatal(err)
	}
	groups := map[string]*Selection{"Heads": heads}
	sel, err := Select(sys, "Heads", groups)
	if err != nil {
		Te.Fatal(err)
	}
	if sel.Len() != 4 {
		Te.Errorf("expected the 4-atom Heads group, got %d atoms", sel.Len())
	}
	//an unknown bare word is a parse failure, with or without groups
	if _, err := Select(sys, "Membrane", groups); err == nil {
		Te.Error("expected an error for an unknown group name")
	}
	if _, err := Select(sys, "Membrane", nil); err == nil {
		Te.Error("expected an error with no groups at all")
	}
}

//A query that parses but matches nothing is not an error: the caller
//decides what an empty selection means.
func TestSelectEmptyResult(Te *testing.T) {
	sys := testSystem(Te)
	sel, err := Select(sys, "name P8", nil)
	if err != nil {
		Te.Fatalf("an unmatched name is not a parse failure: %v", err)
	}
	if sel.Len() != 0 {
		Te.Errorf("expected an empty selection, got %d atoms", sel.Len())
	}
}

func TestSelectParseFailures(Te *testing.T) {
	sys := testSystem(Te)
	for _, expr := range []string{"", "   ", "name", "resname", "resid", "not PO4"} {
		if _, err := Select(sys, expr, nil); err == nil {
			Te.Errorf("expected a parse failure for %q", expr)
		}
	}
}
