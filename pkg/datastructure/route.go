package datastructure

// Route the result of one successful search: the full ledger plus totals
// taken from its final waypoint.
type Route struct {
	path          Path
	totalCost     float64
	totalDistance float64
	totalToll     float64
}

func NewRoute(path Path) *Route {
	last := path.Last()
	return &Route{
		path:          path,
		totalCost:     last.Cost,
		totalDistance: last.Distance,
		totalToll:     last.Toll,
	}
}

func (r *Route) GetPath() Path {
	return r.path
}

func (r *Route) GetTotalCost() float64 {
	return r.totalCost
}

func (r *Route) GetTotalDistance() float64 {
	return r.totalDistance
}

func (r *Route) GetTotalToll() float64 {
	return r.totalToll
}
