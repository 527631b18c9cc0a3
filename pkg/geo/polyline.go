package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes coordinates as a google encoded polyline string
// (precision 5), the format map frontends expect.
func PolylineFromCoords(coords []Coordinate) string {
	latLons := make([][]float64, 0, len(coords))
	for _, c := range coords {
		latLons = append(latLons, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(latLons))
}
