package usecases

import (
	"errors"
	"sort"
	"time"

	"github.com/lakbayph/lakbay/pkg/concurrent"
	"github.com/lakbayph/lakbay/pkg/datastructure"
	"github.com/lakbayph/lakbay/pkg/engine/routing"
	"github.com/lakbayph/lakbay/pkg/geo"
	"github.com/lakbayph/lakbay/pkg/guidance"
	"github.com/lakbayph/lakbay/pkg/metrics"
	"github.com/lakbayph/lakbay/pkg/util"
	"go.uber.org/zap"
)

var ErrRouteNotFound = errors.New("no highway route found")

// RouteSummary everything the presentation layer needs to render one route.
type RouteSummary struct {
	Route      *datastructure.Route
	Estimate   guidance.TripEstimate
	Directions []guidance.Direction
	Polyline   string
	StartName  string
	GoalName   string
}

type LocationInfo struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat,omitempty"`
	Lon  float64 `json:"lon,omitempty"`
}

type HighwayInfo struct {
	To       string  `json:"to"`
	Cost     float64 `json:"cost"`
	Distance float64 `json:"distance_km"`
	Traffic  float64 `json:"traffic_factor"`
	Toll     float64 `json:"toll_php"`
	Highway  string  `json:"highway"`
}

type NetworkSummary struct {
	Locations   []LocationInfo           `json:"locations"`
	Adjacency   map[string][]HighwayInfo `json:"adjacency"`
	NumLocation int                      `json:"num_locations"`
	NumHighways int                      `json:"num_highways"`
}

type MatrixQuery struct {
	From string
	To   string
}

type MatrixResult struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Found    bool    `json:"found"`
	Cost     float64 `json:"cost"`
	Distance float64 `json:"distance_km"`
	Toll     float64 `json:"toll_php"`
}

type NavigationService struct {
	log           *zap.Logger
	engine        RouteEngine
	spatialIndex  SpatialIndex
	itinerary     *guidance.ItineraryBuilder
	matrixWorkers int
}

func NewNavigationService(log *zap.Logger, engine RouteEngine, spatialIndex SpatialIndex,
	matrixWorkers int) *NavigationService {
	return &NavigationService{
		log:           log,
		engine:        engine,
		spatialIndex:  spatialIndex,
		itinerary:     guidance.NewItineraryBuilder(engine.GetGraph()),
		matrixWorkers: matrixWorkers,
	}
}

func (ns *NavigationService) Route(start, goal string) (*RouteSummary, error) {
	return ns.StreamRoute(start, goal, nil)
}

// StreamRoute runs the search, forwarding every settled step to emit when it
// is non-nil.
func (ns *NavigationService) StreamRoute(start, goal string, emit routing.StepFunc) (*RouteSummary, error) {
	metrics.RouteQueriesTotal.Inc()
	began := time.Now()

	settled := 0
	observe := func(step routing.Step) {
		settled = step.Settled
		if emit != nil {
			emit(step)
		}
	}

	route, found, err := ns.engine.SearchWithObserver(start, goal, observe)
	metrics.RouteQueryDurationMs.Observe(float64(time.Since(began).Microseconds()) / 1000.0)
	metrics.RouteSettledLocations.Observe(float64(settled))

	if err != nil {
		metrics.RouteBadLocationTotal.Inc()
		return nil, util.WrapErrorf(err, util.ErrBadParamInput,
			"unknown location in query %s -> %s", start, goal)
	}
	if !found {
		metrics.RouteNotFoundTotal.Inc()
		return nil, util.WrapErrorf(ErrRouteNotFound, util.ErrNotFound,
			"no highway route found from %s to %s", start, goal)
	}

	graph := ns.engine.GetGraph()
	ns.log.Info("route query served",
		zap.String("from", start),
		zap.String("to", goal),
		zap.Float64("total_cost", route.GetTotalCost()),
		zap.Int("settled", settled),
	)

	return &RouteSummary{
		Route:      route,
		Estimate:   guidance.NewTripEstimate(route.GetTotalDistance(), route.GetTotalToll()),
		Directions: ns.itinerary.GetDrivingDirections(route),
		Polyline:   ns.routePolyline(route),
		StartName:  graph.LocationName(start),
		GoalName:   graph.LocationName(goal),
	}, nil
}

// routePolyline encodes the coordinates of ledger waypoints that carry them.
// Scenario files may omit coordinates, in which case the polyline is empty.
func (ns *NavigationService) routePolyline(route *datastructure.Route) string {
	graph := ns.engine.GetGraph()
	coords := make([]geo.Coordinate, 0, route.GetPath().Len())
	for _, loc := range route.GetPath().Locations() {
		if c, ok := graph.GetCoordinate(loc); ok {
			coords = append(coords, c)
		}
	}
	if len(coords) < 2 {
		return ""
	}
	return geo.PolylineFromCoords(coords)
}

func (ns *NavigationService) Network() NetworkSummary {
	graph := ns.engine.GetGraph()

	summary := NetworkSummary{
		Adjacency:   make(map[string][]HighwayInfo),
		NumLocation: graph.NumLocations(),
		NumHighways: graph.NumHighways(),
	}
	for _, id := range graph.LocationIDs() {
		info := LocationInfo{ID: id, Name: graph.LocationName(id)}
		if c, ok := graph.GetCoordinate(id); ok {
			info.Lat, info.Lon = c.Lat, c.Lon
		}
		summary.Locations = append(summary.Locations, info)

		for _, e := range graph.EdgesFrom(id) {
			summary.Adjacency[id] = append(summary.Adjacency[id], HighwayInfo{
				To:       e.GetTo(),
				Cost:     e.GetCost(),
				Distance: e.GetDistance(),
				Traffic:  e.GetTraffic(),
				Toll:     e.GetToll(),
				Highway:  e.GetHighway(),
			})
		}
	}
	return summary
}

func (ns *NavigationService) NearestLocations(lat, lon, radiusKm float64) []LocationInfo {
	metrics.NearestQueriesTotal.Inc()
	graph := ns.engine.GetGraph()

	found := ns.spatialIndex.SearchWithinRadius(graph, lat, lon, radiusKm)
	out := make([]LocationInfo, 0, len(found))
	for _, id := range found {
		info := LocationInfo{ID: id, Name: graph.LocationName(id)}
		if c, ok := graph.GetCoordinate(id); ok {
			info.Lat, info.Lon = c.Lat, c.Lon
		}
		out = append(out, info)
	}
	return out
}

type indexedMatrixResult struct {
	idx int
	res MatrixResult
}

// RouteMatrix answers many (from, to) queries in parallel over the worker
// pool. Results come back in input order.
func (ns *NavigationService) RouteMatrix(pairs []MatrixQuery) []MatrixResult {
	type job struct {
		idx  int
		pair MatrixQuery
	}

	pool := concurrent.NewWorkerPool[job, indexedMatrixResult](ns.matrixWorkers, len(pairs))
	pool.Start(func(j job) indexedMatrixResult {
		res := MatrixResult{From: j.pair.From, To: j.pair.To}
		route, found, err := ns.engine.Search(j.pair.From, j.pair.To)
		if err == nil && found {
			res.Found = true
			res.Cost = route.GetTotalCost()
			res.Distance = route.GetTotalDistance()
			res.Toll = route.GetTotalToll()
		}
		return indexedMatrixResult{idx: j.idx, res: res}
	})

	for i, p := range pairs {
		pool.AddJob(job{idx: i, pair: p})
	}
	pool.Close()
	pool.Wait()

	indexed := make([]indexedMatrixResult, 0, len(pairs))
	for r := range pool.CollectResults() {
		indexed = append(indexed, r)
	}
	sort.Slice(indexed, func(i, j int) bool { return indexed[i].idx < indexed[j].idx })

	results := make([]MatrixResult, 0, len(indexed))
	for _, r := range indexed {
		results = append(results, r.res)
	}
	return results
}
