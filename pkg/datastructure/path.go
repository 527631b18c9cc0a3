package datastructure

import (
	"github.com/lakbayph/lakbay/pkg"
)

// Waypoint one visited location on a route, with running totals up to and
// including the highway used to reach it.
type Waypoint struct {
	Location string  `json:"location"`
	Cost     float64 `json:"cumulative_cost"`
	Distance float64 `json:"cumulative_distance_km"`
	Toll     float64 `json:"cumulative_toll_php"`
	Highway  string  `json:"highway"`
}

// Path an append-only ledger of waypoints. Append copies, so frontier
// branches that share a prefix never alias each other's history — required
// for correctness under lazy deletion.
type Path struct {
	waypoints []Waypoint
}

// NewPath starts a ledger at the given location with zeroed totals and the
// starting-point sentinel label.
func NewPath(start string) Path {
	return Path{waypoints: []Waypoint{{
		Location: start,
		Highway:  pkg.STARTING_POINT_LABEL,
	}}}
}

func (p Path) Append(wp Waypoint) Path {
	next := make([]Waypoint, len(p.waypoints), len(p.waypoints)+1)
	copy(next, p.waypoints)
	return Path{waypoints: append(next, wp)}
}

func (p Path) Len() int {
	return len(p.waypoints)
}

func (p Path) Last() Waypoint {
	return p.waypoints[len(p.waypoints)-1]
}

func (p Path) At(i int) Waypoint {
	return p.waypoints[i]
}

func (p Path) Waypoints() []Waypoint {
	out := make([]Waypoint, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}

func (p Path) Locations() []string {
	out := make([]string, 0, len(p.waypoints))
	for _, wp := range p.waypoints {
		out = append(out, wp.Location)
	}
	return out
}

// Segment the per-leg delta between two consecutive waypoints.
type Segment struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Cost     float64 `json:"cost"`
	Distance float64 `json:"distance_km"`
	Toll     float64 `json:"toll_php"`
	Highway  string  `json:"highway"`
}

// Segments derives the per-leg breakdown from the cumulative ledger.
func (p Path) Segments() []Segment {
	if len(p.waypoints) < 2 {
		return nil
	}
	segments := make([]Segment, 0, len(p.waypoints)-1)
	for i := 1; i < len(p.waypoints); i++ {
		prev, cur := p.waypoints[i-1], p.waypoints[i]
		segments = append(segments, Segment{
			From:     prev.Location,
			To:       cur.Location,
			Cost:     cur.Cost - prev.Cost,
			Distance: cur.Distance - prev.Distance,
			Toll:     cur.Toll - prev.Toll,
			Highway:  cur.Highway,
		})
	}
	return segments
}
