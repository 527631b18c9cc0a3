package guidance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTripEstimate(t *testing.T) {
	estimate := NewTripEstimate(240, 375)

	require.InDelta(t, 4.0, estimate.Hours, 1e-9)        // 240 km at 60 km/h
	require.InDelta(t, 600.0, estimate.FuelCostPhp, 1e-9) // 2.5 per km
	require.InDelta(t, 975.0, estimate.TripCostPhp, 1e-9) // toll + fuel
}

func TestTripEstimateZeroDistance(t *testing.T) {
	estimate := NewTripEstimate(0, 0)

	require.Zero(t, estimate.Hours)
	require.Zero(t, estimate.FuelCostPhp)
	require.Zero(t, estimate.TripCostPhp)
}

func TestHoursMinutes(t *testing.T) {
	testCases := []struct {
		name        string
		distance    float64
		wantHours   int
		wantMinutes int
	}{
		{name: "whole hours", distance: 120, wantHours: 2, wantMinutes: 0},
		{name: "half hour", distance: 90, wantHours: 1, wantMinutes: 30},
		{name: "rounds up to next hour", distance: 119.99, wantHours: 2, wantMinutes: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			h, m := NewTripEstimate(tt.distance, 0).HoursMinutes()
			require.Equal(t, tt.wantHours, h)
			require.Equal(t, tt.wantMinutes, m)
		})
	}
}
