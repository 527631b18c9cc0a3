package datastructure

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lakbayph/lakbay/pkg"
	"github.com/lakbayph/lakbay/pkg/geo"
	"github.com/lakbayph/lakbay/pkg/util"
)

var ErrInvalidHighway = errors.New("highway parameters are not valid")

// Edge one directed adjacency record of a bidirectional highway. Immutable
// after construction; both directional records of one highway carry identical
// cost fields.
type Edge struct {
	to       string
	cost     float64
	distance float64
	traffic  float64
	toll     float64
	highway  string
}

func (e *Edge) GetTo() string {
	return e.to
}

func (e *Edge) GetCost() float64 {
	return e.cost
}

func (e *Edge) GetDistance() float64 {
	return e.distance
}

func (e *Edge) GetTraffic() float64 {
	return e.traffic
}

func (e *Edge) GetToll() float64 {
	return e.toll
}

func (e *Edge) GetHighway() string {
	return e.highway
}

// Graph adjacency-list road network: locations keyed by an opaque id, each
// with a display name, optional coordinates and a list of outgoing highway
// records. Mutation happens only while a scenario is being built; searches
// treat the graph as read-only, so one graph can serve many concurrent
// queries.
type Graph struct {
	adjacency   map[string][]Edge
	names       map[string]string
	coords      map[string]geo.Coordinate
	numHighways int
}

func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]Edge),
		names:     make(map[string]string),
		coords:    make(map[string]geo.Coordinate),
	}
}

// AddLocation registers a location. Idempotent: repeating an id overwrites
// the display name and keeps the existing adjacency list.
func (g *Graph) AddLocation(id, name string) {
	g.names[id] = name
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make([]Edge, 0)
	}
}

// AddLocationWithCoordinate registers a location together with its
// coordinates, used by the spatial index and route polylines.
func (g *Graph) AddLocationWithCoordinate(id, name string, lat, lon float64) {
	g.AddLocation(id, name)
	g.coords[id] = geo.NewCoordinate(lat, lon)
}

// AddHighway adds a bidirectional highway: exactly one directed record per
// direction, both carrying cost = distance*traffic + toll/10. Endpoints not
// yet registered get an empty adjacency entry but no display name.
func (g *Graph) AddHighway(from, to string, distanceKm, trafficFactor, tollPhp float64, highwayName string) error {
	if distanceKm < 0 {
		return util.WrapErrorf(ErrInvalidHighway, util.ErrBadParamInput,
			"highway %q: distance must be non-negative, got %f", highwayName, distanceKm)
	}
	if tollPhp < 0 {
		return util.WrapErrorf(ErrInvalidHighway, util.ErrBadParamInput,
			"highway %q: toll must be non-negative, got %f", highwayName, tollPhp)
	}
	if trafficFactor <= 0 {
		return util.WrapErrorf(ErrInvalidHighway, util.ErrBadParamInput,
			"highway %q: traffic factor must be positive, got %f", highwayName, trafficFactor)
	}

	cost := distanceKm*trafficFactor + tollPhp/pkg.TOLL_COST_DIVISOR

	if _, ok := g.adjacency[from]; !ok {
		g.adjacency[from] = make([]Edge, 0)
	}
	if _, ok := g.adjacency[to]; !ok {
		g.adjacency[to] = make([]Edge, 0)
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{
		to: to, cost: cost, distance: distanceKm, traffic: trafficFactor, toll: tollPhp, highway: highwayName,
	})
	g.adjacency[to] = append(g.adjacency[to], Edge{
		to: from, cost: cost, distance: distanceKm, traffic: trafficFactor, toll: tollPhp, highway: highwayName,
	})
	g.numHighways++

	return nil
}

// HasLocation reports whether id has an adjacency entry. This is the search
// precondition: a location registered by name only or auto-created by
// AddHighway both qualify.
func (g *Graph) HasLocation(id string) bool {
	_, ok := g.adjacency[id]
	return ok
}

// LocationName returns the display name for id, or an ID placeholder when the
// location was never registered with a name.
func (g *Graph) LocationName(id string) string {
	if name, ok := g.names[id]; ok {
		return name
	}
	return fmt.Sprintf("ID-%s", id)
}

func (g *Graph) GetCoordinate(id string) (geo.Coordinate, bool) {
	c, ok := g.coords[id]
	return c, ok
}

// EdgesFrom returns a copy of the adjacency records of id.
func (g *Graph) EdgesFrom(id string) []Edge {
	edges := g.adjacency[id]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// ForEdgesFrom iterates the adjacency records of id without copying.
func (g *Graph) ForEdgesFrom(id string, handle func(e *Edge)) {
	edges := g.adjacency[id]
	for i := range edges {
		handle(&edges[i])
	}
}

// LocationIDs returns all named location ids in sorted order.
func (g *Graph) LocationIDs() []string {
	ids := make([]string, 0, len(g.names))
	for id := range g.names {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (g *Graph) NumLocations() int {
	return len(g.names)
}

// NumHighways counts logical highways, not directed records.
func (g *Graph) NumHighways() int {
	return g.numHighways
}
