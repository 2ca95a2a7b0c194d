package leafplot

import (
	"math"
	"testing"

	leaflet "github.com/rmera/goleaflet"
	"github.com/rmera/goleaflet/gro"
)

func TestDisplacements(Te *testing.T) {
	sys, err := gro.Read("../test/membrane.gro")
	if err != nil {
		Te.Fatal(err)
	}
	membrane, err := leaflet.Select(sys, "resname POPC POPE", nil)
	if err != nil {
		Te.Fatal(err)
	}
	markers, err := leaflet.Select(sys, "name PO4", nil)
	if err != nil {
		Te.Fatal(err)
	}
	d, err := Displacements(membrane, markers, leaflet.Z)
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{-3, 3, -4, 4}
	if len(d) != len(want) {
		Te.Fatalf("expected %d displacements, got %d", len(want), len(d))
	}
	for i, v := range want {
		if math.Abs(d[i]-v) > 1e-8 {
			Te.Errorf("displacement %d is %v, want %v", i, d[i], v)
		}
	}
	p, err := DisplacementHist(membrane, markers, leaflet.Z, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if p == nil {
		Te.Error("expected a plot")
	}
}
