package controllers

import (
	"github.com/lakbayph/lakbay/pkg/engine/routing"
	"github.com/lakbayph/lakbay/pkg/http/usecases"
)

type NavigationService interface {
	Route(start, goal string) (*usecases.RouteSummary, error)
	StreamRoute(start, goal string, emit routing.StepFunc) (*usecases.RouteSummary, error)
	Network() usecases.NetworkSummary
	NearestLocations(lat, lon, radiusKm float64) []usecases.LocationInfo
	RouteMatrix(pairs []usecases.MatrixQuery) []usecases.MatrixResult
}
