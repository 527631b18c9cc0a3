package usecases

import (
	"github.com/lakbayph/lakbay/pkg/datastructure"
	"github.com/lakbayph/lakbay/pkg/engine/routing"
)

type RouteEngine interface {
	Search(start, goal string) (*datastructure.Route, bool, error)
	SearchWithObserver(start, goal string, observe routing.StepFunc) (*datastructure.Route, bool, error)
	GetGraph() *datastructure.Graph
}

type SpatialIndex interface {
	SearchWithinRadius(graph *datastructure.Graph, qLat, qLon, radiusKm float64) []string
}
