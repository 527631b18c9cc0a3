package guidance

import (
	"testing"

	"github.com/lakbayph/lakbay/pkg/datastructure"
	"github.com/stretchr/testify/require"
)

func TestGetDrivingDirections(t *testing.T) {
	g := datastructure.NewGraph()
	g.AddLocation("MNL", "Metro Manila")
	g.AddLocation("PAM", "Pampanga")
	g.AddLocation("SUB", "Subic Bay")
	require.NoError(t, g.AddHighway("MNL", "PAM", 80, 1.3, 180, "NLEX"))
	require.NoError(t, g.AddHighway("PAM", "SUB", 45, 1.2, 85, "SCTEX"))

	path := datastructure.NewPath("MNL").
		Append(datastructure.Waypoint{Location: "PAM", Cost: 122, Distance: 80, Toll: 180, Highway: "NLEX"}).
		Append(datastructure.Waypoint{Location: "SUB", Cost: 185.5, Distance: 125, Toll: 265, Highway: "SCTEX"})
	route := datastructure.NewRoute(path)

	directions := NewItineraryBuilder(g).GetDrivingDirections(route)
	require.Len(t, directions, 2)

	require.Equal(t, "Take NLEX to Pampanga (80 km, ₱180 toll)", directions[0].Instruction)
	require.Equal(t, "NLEX", directions[0].Highway)
	require.InDelta(t, 80.0, directions[0].DistanceKm, 1e-9)
	require.InDelta(t, 180.0, directions[0].TollPhp, 1e-9)

	require.Equal(t, "SCTEX", directions[1].Highway)
	require.InDelta(t, 45.0, directions[1].DistanceKm, 1e-9)
}

func TestNoDirectionsForStartOnlyRoute(t *testing.T) {
	g := datastructure.NewGraph()
	g.AddLocation("MNL", "Metro Manila")
	route := datastructure.NewRoute(datastructure.NewPath("MNL"))

	require.Empty(t, NewItineraryBuilder(g).GetDrivingDirections(route))
}
