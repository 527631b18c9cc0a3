package guidance

import (
	"math"

	"github.com/lakbayph/lakbay/pkg"
)

// TripEstimate derived travel metrics for a finished route: time at a fixed
// average speed, fuel at a fixed per-km rate, and total out-of-pocket cost
// (tolls + fuel).
type TripEstimate struct {
	Hours       float64 `json:"hours"`
	FuelCostPhp float64 `json:"fuel_cost_php"`
	TripCostPhp float64 `json:"trip_cost_php"`
}

func NewTripEstimate(totalDistanceKm, totalTollPhp float64) TripEstimate {
	fuel := totalDistanceKm * pkg.FUEL_COST_PHP_PER_KM
	return TripEstimate{
		Hours:       totalDistanceKm / pkg.AVG_SPEED_KMH,
		FuelCostPhp: fuel,
		TripCostPhp: totalTollPhp + fuel,
	}
}

// HoursMinutes splits Hours into whole hours and remaining minutes for
// display.
func (t TripEstimate) HoursMinutes() (int, int) {
	h := int(math.Floor(t.Hours))
	m := int(math.Round((t.Hours - float64(h)) * 60))
	if m == 60 {
		h, m = h+1, 0
	}
	return h, m
}
