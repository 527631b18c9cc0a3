package controllers

import (
	"github.com/lakbayph/lakbay/pkg/datastructure"
	"github.com/lakbayph/lakbay/pkg/guidance"
	"github.com/lakbayph/lakbay/pkg/http/usecases"
)

type routeRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

type nearestLocationRequest struct {
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lon      float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusKm float64 `json:"radius_km" validate:"required,gt=0"`
}

type routeMatrixRequest struct {
	Pairs []matrixPair `json:"pairs" validate:"required,min=1,dive"`
}

type matrixPair struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

type routeResponse struct {
	Start         string                   `json:"start"`
	Goal          string                   `json:"goal"`
	TotalCost     float64                  `json:"total_cost"`
	TotalDistance float64                  `json:"total_distance_km"`
	TotalToll     float64                  `json:"total_toll_php"`
	Waypoints     []datastructure.Waypoint `json:"waypoints"`
	Segments      []datastructure.Segment  `json:"segments"`
	Directions    []guidance.Direction     `json:"directions"`
	Estimate      guidance.TripEstimate    `json:"estimate"`
	Polyline      string                   `json:"polyline,omitempty"`
}

func NewRouteResponse(summary *usecases.RouteSummary) routeResponse {
	route := summary.Route
	return routeResponse{
		Start:         summary.StartName,
		Goal:          summary.GoalName,
		TotalCost:     route.GetTotalCost(),
		TotalDistance: route.GetTotalDistance(),
		TotalToll:     route.GetTotalToll(),
		Waypoints:     route.GetPath().Waypoints(),
		Segments:      route.GetPath().Segments(),
		Directions:    summary.Directions,
		Estimate:      summary.Estimate,
		Polyline:      summary.Polyline,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
