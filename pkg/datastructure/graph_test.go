package datastructure

import (
	"errors"
	"math"
	"testing"
)

func TestAddHighwayCostFormula(t *testing.T) {
	testCases := []struct {
		name     string
		distance float64
		traffic  float64
		toll     float64
		want     float64
	}{
		{name: "nlex", distance: 80, traffic: 1.3, toll: 180, want: 80*1.3 + 18},
		{name: "free flowing no toll", distance: 200, traffic: 1.0, toll: 0, want: 200},
		{name: "toll only scaling", distance: 0, traffic: 1.0, toll: 100, want: 10},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			g.AddLocation("A", "Alpha")
			g.AddLocation("B", "Bravo")
			if err := g.AddHighway("A", "B", tt.distance, tt.traffic, tt.toll, "X"); err != nil {
				t.Fatalf("AddHighway: %v", err)
			}

			edges := g.EdgesFrom("A")
			if len(edges) != 1 {
				t.Fatalf("want 1 edge from A, got %d", len(edges))
			}
			if math.Abs(edges[0].GetCost()-tt.want) > 1e-9 {
				t.Errorf("cost = %f, want %f", edges[0].GetCost(), tt.want)
			}
		})
	}
}

func TestAddHighwayBidirectional(t *testing.T) {
	g := NewGraph()
	g.AddLocation("A", "Alpha")
	g.AddLocation("B", "Bravo")
	if err := g.AddHighway("A", "B", 50, 1.2, 40, "Expressway"); err != nil {
		t.Fatalf("AddHighway: %v", err)
	}

	forward := g.EdgesFrom("A")
	backward := g.EdgesFrom("B")
	if len(forward) != 1 || len(backward) != 1 {
		t.Fatalf("want one record per direction, got %d and %d", len(forward), len(backward))
	}
	if forward[0].GetTo() != "B" || backward[0].GetTo() != "A" {
		t.Errorf("records point at %q and %q", forward[0].GetTo(), backward[0].GetTo())
	}
	if forward[0].GetCost() != backward[0].GetCost() {
		t.Errorf("directional records disagree on cost: %f vs %f",
			forward[0].GetCost(), backward[0].GetCost())
	}
	if forward[0].GetHighway() != backward[0].GetHighway() {
		t.Errorf("directional records disagree on highway name")
	}
	if g.NumHighways() != 1 {
		t.Errorf("NumHighways = %d, want 1 logical highway", g.NumHighways())
	}
}

func TestAddHighwayAutoCreatesAdjacency(t *testing.T) {
	g := NewGraph()
	if err := g.AddHighway("X", "Y", 10, 1.0, 0, ""); err != nil {
		t.Fatalf("AddHighway: %v", err)
	}

	if !g.HasLocation("X") || !g.HasLocation("Y") {
		t.Error("endpoints should get adjacency entries")
	}
	// auto-created endpoints have no display name
	if g.NumLocations() != 0 {
		t.Errorf("NumLocations = %d, want 0 named locations", g.NumLocations())
	}
	if got := g.LocationName("X"); got != "ID-X" {
		t.Errorf("LocationName = %q, want placeholder ID-X", got)
	}
}

func TestAddLocationIdempotent(t *testing.T) {
	g := NewGraph()
	g.AddLocation("MNL", "Manila")
	if err := g.AddHighway("MNL", "QC", 20, 2.5, 45, "EDSA"); err != nil {
		t.Fatalf("AddHighway: %v", err)
	}
	g.AddLocation("MNL", "Metro Manila")

	if got := g.LocationName("MNL"); got != "Metro Manila" {
		t.Errorf("LocationName = %q, want latest name", got)
	}
	if g.NumLocations() != 1 {
		t.Errorf("NumLocations = %d, want 1", g.NumLocations())
	}
	if len(g.EdgesFrom("MNL")) != 1 {
		t.Error("re-registration must keep the existing adjacency list")
	}
}

func TestAddHighwayValidation(t *testing.T) {
	testCases := []struct {
		name     string
		distance float64
		traffic  float64
		toll     float64
	}{
		{name: "negative distance", distance: -10, traffic: 1.0, toll: 0},
		{name: "negative toll", distance: 10, traffic: 1.0, toll: -5},
		{name: "zero traffic", distance: 10, traffic: 0, toll: 0},
		{name: "negative traffic", distance: 10, traffic: -1.5, toll: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGraph()
			err := g.AddHighway("A", "B", tt.distance, tt.traffic, tt.toll, "bad")
			if !errors.Is(err, ErrInvalidHighway) {
				t.Fatalf("want ErrInvalidHighway, got %v", err)
			}
			if len(g.EdgesFrom("A")) != 0 {
				t.Error("rejected highway must not leave records behind")
			}
		})
	}
}

func TestLocationIDsSorted(t *testing.T) {
	g := NewGraph()
	g.AddLocation("C", "c")
	g.AddLocation("A", "a")
	g.AddLocation("B", "b")

	ids := g.LocationIDs()
	want := []string{"A", "B", "C"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("LocationIDs = %v, want %v", ids, want)
		}
	}
}
