package usecases

import (
	"errors"
	"testing"

	"github.com/lakbayph/lakbay/pkg/engine/routing"
	"github.com/lakbayph/lakbay/pkg/scenario"
	"github.com/lakbayph/lakbay/pkg/spatialindex"
	"github.com/lakbayph/lakbay/pkg/util"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *NavigationService {
	t.Helper()
	graph, err := scenario.BuildNorthernLuzon()
	if err != nil {
		t.Fatalf("build scenario: %v", err)
	}

	log := zap.NewNop()
	rtree := spatialindex.NewRtree()
	rtree.Build(graph, log)

	engine := routing.NewUniformCostSearch(graph)
	return NewNavigationService(log, engine, rtree, 2)
}

func TestRouteSummary(t *testing.T) {
	ns := newTestService(t)

	summary, err := ns.Route("MNL", "BAG")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}

	if summary.StartName != "Metro Manila" || summary.GoalName != "Baguio City" {
		t.Errorf("names = %q -> %q", summary.StartName, summary.GoalName)
	}
	if got := len(summary.Directions); got != summary.Route.GetPath().Len()-1 {
		t.Errorf("got %d directions for %d waypoints", got, summary.Route.GetPath().Len())
	}
	if summary.Polyline == "" {
		t.Error("scenario locations have coordinates, polyline should not be empty")
	}

	wantHours := summary.Route.GetTotalDistance() / 60
	if summary.Estimate.Hours != wantHours {
		t.Errorf("estimate hours = %f, want %f", summary.Estimate.Hours, wantHours)
	}
}

func TestRouteErrorCodes(t *testing.T) {
	ns := newTestService(t)

	_, err := ns.Route("MNL", "XXX")
	var domainErr *util.Error
	if !errors.As(err, &domainErr) || !errors.Is(domainErr.Code(), util.ErrBadParamInput) {
		t.Fatalf("unknown location should map to bad-param code, got %v", err)
	}
	if !errors.Is(err, routing.ErrUnknownLocation) {
		t.Errorf("wrapped error should unwrap to ErrUnknownLocation")
	}
}

func TestRouteNotFoundCode(t *testing.T) {
	ns := newTestService(t)
	// isolated location, reachable by no highway
	ns.engine.GetGraph().AddLocation("ISO", "Isolated Island")

	_, err := ns.Route("MNL", "ISO")
	var domainErr *util.Error
	if !errors.As(err, &domainErr) || !errors.Is(domainErr.Code(), util.ErrNotFound) {
		t.Fatalf("unreachable goal should map to not-found code, got %v", err)
	}
	if !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("wrapped error should unwrap to ErrRouteNotFound")
	}
}

func TestNetworkSummary(t *testing.T) {
	ns := newTestService(t)

	summary := ns.Network()
	if summary.NumLocation != 7 || summary.NumHighways != 8 {
		t.Errorf("counts = %d/%d, want 7/8", summary.NumLocation, summary.NumHighways)
	}
	if len(summary.Locations) != 7 {
		t.Errorf("got %d locations", len(summary.Locations))
	}
	if len(summary.Adjacency["MNL"]) != 2 {
		t.Errorf("MNL should have 2 outgoing records, got %d", len(summary.Adjacency["MNL"]))
	}
}

func TestNearestLocations(t *testing.T) {
	ns := newTestService(t)

	// query next to Metro Manila
	got := ns.NearestLocations(14.60, 120.99, 30)
	if len(got) == 0 || got[0].ID != "MNL" {
		t.Fatalf("nearest = %+v, want MNL first", got)
	}

	// middle of the sea
	if got := ns.NearestLocations(10.0, 125.0, 20); len(got) != 0 {
		t.Errorf("want no locations, got %+v", got)
	}
}

func TestRouteMatrixMatchesSequential(t *testing.T) {
	ns := newTestService(t)

	pairs := []MatrixQuery{
		{From: "MNL", To: "BAG"},
		{From: "BAG", To: "SUB"},
		{From: "MNL", To: "XXX"},
		{From: "SUB", To: "PAN"},
	}

	results := ns.RouteMatrix(pairs)
	if len(results) != len(pairs) {
		t.Fatalf("got %d results for %d pairs", len(results), len(pairs))
	}

	for i, pair := range pairs {
		res := results[i]
		if res.From != pair.From || res.To != pair.To {
			t.Fatalf("result %d out of order: %+v", i, res)
		}

		route, found, err := routing.NewUniformCostSearch(ns.engine.GetGraph()).Search(pair.From, pair.To)
		wantFound := err == nil && found
		if res.Found != wantFound {
			t.Errorf("pair %d found = %v, want %v", i, res.Found, wantFound)
		}
		if wantFound && res.Cost != route.GetTotalCost() {
			t.Errorf("pair %d cost = %f, want %f", i, res.Cost, route.GetTotalCost())
		}
	}
}
