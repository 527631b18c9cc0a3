package guidance

import (
	"fmt"

	"github.com/lakbayph/lakbay/pkg"
	"github.com/lakbayph/lakbay/pkg/datastructure"
)

type Graph interface {
	LocationName(id string) string
}

// Direction one leg of the itinerary, ready for rendering by a CLI or API
// client.
type Direction struct {
	Instruction string  `json:"instruction"`
	Highway     string  `json:"highway"`
	DistanceKm  float64 `json:"distance_km"`
	TollPhp     float64 `json:"toll_php"`
	Cost        float64 `json:"cost"`
}

// ItineraryBuilder turns a route ledger into per-leg driving directions using
// the graph's display names.
type ItineraryBuilder struct {
	graph Graph
}

func NewItineraryBuilder(graph Graph) *ItineraryBuilder {
	return &ItineraryBuilder{graph: graph}
}

func (b *ItineraryBuilder) GetDrivingDirections(route *datastructure.Route) []Direction {
	segments := route.GetPath().Segments()
	directions := make([]Direction, 0, len(segments))

	for _, seg := range segments {
		verb := "Take"
		if seg.Highway == pkg.LOCAL_ROAD_LABEL {
			verb = "Follow"
		}
		instruction := fmt.Sprintf("%s %s to %s (%.0f km, ₱%.0f toll)",
			verb, seg.Highway, b.graph.LocationName(seg.To), seg.Distance, seg.Toll)

		directions = append(directions, Direction{
			Instruction: instruction,
			Highway:     seg.Highway,
			DistanceKm:  seg.Distance,
			TollPhp:     seg.Toll,
			Cost:        seg.Cost,
		})
	}
	return directions
}
