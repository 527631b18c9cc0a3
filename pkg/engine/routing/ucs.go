package routing

import (
	"errors"

	"github.com/lakbayph/lakbay/pkg"
	da "github.com/lakbayph/lakbay/pkg/datastructure"
)

var ErrUnknownLocation = errors.New("start or goal location not found in highway network")

// frontierItem priority-queue payload: the location together with the ledger
// that reached it. Ledgers are copy-on-append, so items never share history.
type frontierItem struct {
	location string
	path     da.Path
}

// Step one frontier extraction, reported to observers after the stale-entry
// skip. Presentation layers (console animation, websocket stream) consume
// these; the engine itself carries no timing or display logic.
type Step struct {
	Seq          int
	Location     string
	Cost         float64
	FrontierSize int
	Settled      int
	Path         da.Path
}

type StepFunc func(step Step)

// UniformCostSearch uniform cost search (Dijkstra framed as graph search)
// over a highway graph. The graph is read-only during a query and all search
// state is local to one call, so a single engine can serve concurrent
// queries.
type UniformCostSearch struct {
	graph *da.Graph
}

func NewUniformCostSearch(graph *da.Graph) *UniformCostSearch {
	return &UniformCostSearch{graph: graph}
}

func (ucs *UniformCostSearch) GetGraph() *da.Graph {
	return ucs.graph
}

// Search finds the minimum-cost route from start to goal. Returns
// (route, true, nil) on success, (nil, false, nil) when the frontier empties
// without reaching goal, and ErrUnknownLocation when either endpoint has no
// adjacency entry.
func (ucs *UniformCostSearch) Search(start, goal string) (*da.Route, bool, error) {
	return ucs.SearchWithObserver(start, goal, nil)
}

// SearchWithObserver runs Search, invoking observe once per settled location.
//
// The frontier is never decrease-keyed: expansion pushes duplicates and the
// stale-entry skip at extraction discards all but the first, cheapest entry
// per location. First extraction of goal is optimal because edge costs are
// non-negative. O((V+E) log V) time with the binary-heap frontier; the
// frontier may transiently hold O(E) entries.
func (ucs *UniformCostSearch) SearchWithObserver(start, goal string, observe StepFunc) (*da.Route, bool, error) {
	if !ucs.graph.HasLocation(start) || !ucs.graph.HasLocation(goal) {
		return nil, false, ErrUnknownLocation
	}

	frontier := da.NewBinaryHeap[frontierItem]()
	frontier.Insert(da.NewPriorityQueueNode(0, start, frontierItem{
		location: start,
		path:     da.NewPath(start),
	}))

	bestCost := make(map[string]float64)
	seq := 0

	for !frontier.IsEmpty() {
		entry, err := frontier.ExtractMin()
		if err != nil {
			return nil, false, err
		}
		cost := entry.GetRank()
		cur := entry.GetItem()

		// lazy deletion: a cheaper extraction already settled this location
		if settled, ok := bestCost[cur.location]; ok && settled <= cost {
			continue
		}
		bestCost[cur.location] = cost
		seq++

		if observe != nil {
			observe(Step{
				Seq:          seq,
				Location:     cur.location,
				Cost:         cost,
				FrontierSize: frontier.Size(),
				Settled:      len(bestCost),
				Path:         cur.path,
			})
		}

		if cur.location == goal {
			return da.NewRoute(cur.path), true, nil
		}

		last := cur.path.Last()
		ucs.graph.ForEdgesFrom(cur.location, func(e *da.Edge) {
			newCost := cost + e.GetCost()

			if settled, ok := bestCost[e.GetTo()]; ok && settled <= newCost {
				return
			}

			highway := e.GetHighway()
			if highway == "" {
				highway = pkg.LOCAL_ROAD_LABEL
			}

			frontier.Insert(da.NewPriorityQueueNode(newCost, e.GetTo(), frontierItem{
				location: e.GetTo(),
				path: cur.path.Append(da.Waypoint{
					Location: e.GetTo(),
					Cost:     newCost,
					Distance: last.Distance + e.GetDistance(),
					Toll:     last.Toll + e.GetToll(),
					Highway:  highway,
				}),
			}))
		})
	}

	return nil, false, nil
}
