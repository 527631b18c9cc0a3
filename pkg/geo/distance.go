package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/lakbayph/lakbay/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM = 6371.0
)

// HaversineDistance great-circle distance between two coordinates in km.
func HaversineDistance(from, to Coordinate) float64 {
	a := s2.LatLngFromDegrees(from.Lat, from.Lon)
	b := s2.LatLngFromDegrees(to.Lat, to.Lon)
	return a.Distance(b).Radians() * earthRadiusKM
}

// GetDestinationPoint returns the destination point given the starting point,
// bearing (degrees) and distance (km). Used for building bounding boxes around
// a query point.
func GetDestinationPoint(lat, lon float64, bearing float64, dist float64) (float64, float64) {
	latRad := util.DegreeToRadians(lat)
	lonRad := util.DegreeToRadians(lon)
	bearingRad := util.DegreeToRadians(bearing)

	angular := dist / earthRadiusKM

	destLat := math.Asin(math.Sin(latRad)*math.Cos(angular) +
		math.Cos(latRad)*math.Sin(angular)*math.Cos(bearingRad))
	destLon := lonRad + math.Atan2(math.Sin(bearingRad)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(destLat))

	return util.RadiansToDegree(destLat), util.RadiansToDegree(destLon)
}
