package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RouteQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "route_queries_total", Help: "Route queries served"})
	RouteNotFoundTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "route_not_found_total", Help: "Route queries with no path between endpoints"})
	RouteBadLocationTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "route_bad_location_total", Help: "Route queries naming unknown locations"})
	RouteQueryDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "route_query_duration_ms", Help: "Route query latency",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 10)})
	RouteSettledLocations = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "route_settled_locations", Help: "Locations settled per query",
		Buckets: prometheus.LinearBuckets(1, 5, 10)})
	NearestQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nearest_location_queries_total", Help: "Nearest-location lookups served"})
)

func init() {
	prometheus.MustRegister(
		RouteQueriesTotal,
		RouteNotFoundTotal,
		RouteBadLocationTotal,
		RouteQueryDurationMs,
		RouteSettledLocations,
		NearestQueriesTotal,
	)
}

// Handler serves the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
