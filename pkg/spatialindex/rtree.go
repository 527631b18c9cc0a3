package spatialindex

import (
	"sort"

	"github.com/lakbayph/lakbay/pkg/datastructure"
	"github.com/lakbayph/lakbay/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree spatial index over locations that carry coordinates. Built once per
// graph; read-only afterwards.
type Rtree struct {
	tr *rtree.RTreeG[string]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[string]
	return &Rtree{
		tr: &tr,
	}
}

// Build indexes every named location with coordinates as a point box.
func (rt *Rtree) Build(graph *datastructure.Graph, log *zap.Logger) {
	indexed := 0
	for _, id := range graph.LocationIDs() {
		coord, ok := graph.GetCoordinate(id)
		if !ok {
			continue
		}
		rt.tr.Insert([2]float64{coord.Lon, coord.Lat}, [2]float64{coord.Lon, coord.Lat}, id)
		indexed++
	}
	log.Info("built r-tree spatial index", zap.Int("locations", indexed))
}

// SearchWithinRadius returns location ids within radius (km) of the query
// point, nearest first.
func (rt *Rtree) SearchWithinRadius(graph *datastructure.Graph, qLat, qLon, radiusKm float64) []string {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radiusKm)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radiusKm)

	query := geo.NewCoordinate(qLat, qLon)

	candidates := make([]string, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, id string) bool {
			candidates = append(candidates, id)
			return true
		})

	// the bounding box overshoots; keep only points truly within radius
	results := candidates[:0]
	for _, id := range candidates {
		coord, ok := graph.GetCoordinate(id)
		if !ok {
			continue
		}
		if geo.HaversineDistance(query, coord) <= radiusKm {
			results = append(results, id)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		ci, _ := graph.GetCoordinate(results[i])
		cj, _ := graph.GetCoordinate(results[j])
		return geo.HaversineDistance(query, ci) < geo.HaversineDistance(query, cj)
	})
	return results
}
