package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lakbayph/lakbay/pkg/engine/routing"
	"github.com/stretchr/testify/require"
)

func TestBuiltInScenarios(t *testing.T) {
	testCases := []struct {
		name          string
		wantLocations int
		wantHighways  int
	}{
		{name: "Northern Luzon Network", wantLocations: 7, wantHighways: 8},
		{name: "Southern Luzon Network", wantLocations: 7, wantHighways: 9},
		{name: "Complete Luzon Network", wantLocations: 10, wantHighways: 11},
	}

	scenarios := BuiltIn()
	require.Len(t, scenarios, len(testCases))

	for i, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, scenarios[i].Name)

			g, err := scenarios[i].Build()
			require.NoError(t, err)
			require.Equal(t, tt.wantLocations, g.NumLocations())
			require.Equal(t, tt.wantHighways, g.NumHighways())

			// every built-in location carries coordinates for the spatial index
			for _, id := range g.LocationIDs() {
				_, ok := g.GetCoordinate(id)
				require.True(t, ok, "location %s has no coordinates", id)
			}
		})
	}
}

// Manila to Baguio on the northern network: NLEX + SCTEX then the untolled
// Tarlac-Baguio Road beats the TPLEX/Kennon detour.
func TestNorthernLuzonManilaToBaguio(t *testing.T) {
	g, err := BuildNorthernLuzon()
	require.NoError(t, err)

	route, found, err := routing.NewUniformCostSearch(g).Search("MNL", "BAG")
	require.NoError(t, err)
	require.True(t, found)

	require.Equal(t, []string{"MNL", "PAM", "TAR", "BAG"}, route.GetPath().Locations())
	require.InDelta(t, 319.5, route.GetTotalCost(), 1e-9) // 122 + 70 + 127.5
	require.InDelta(t, 220.0, route.GetTotalDistance(), 1e-9)
	require.InDelta(t, 275.0, route.GetTotalToll(), 1e-9)
}

func TestLoadFile(t *testing.T) {
	content := `locations:
  - id: MNL
    name: Metro Manila
    lat: 14.5995
    lon: 120.9842
  - id: PAM
    name: Pampanga
  - id: BAG
    name: Baguio City
highways:
  - from: MNL
    to: PAM
    distance_km: 80
    traffic_factor: 1.3
    toll_php: 180
    name: NLEX
  - from: PAM
    to: BAG
    distance_km: 130
    toll_php: 0
    name: Mountain Road
`
	path := filepath.Join(t.TempDir(), "luzon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, 3, g.NumLocations())
	require.Equal(t, 2, g.NumHighways())

	_, hasCoord := g.GetCoordinate("MNL")
	require.True(t, hasCoord)
	_, hasCoord = g.GetCoordinate("PAM")
	require.False(t, hasCoord)

	// omitted traffic factor defaults to free-flowing
	edges := g.EdgesFrom("PAM")
	require.Len(t, edges, 2)
	for _, e := range edges {
		if e.GetTo() == "BAG" {
			require.InDelta(t, 130.0, e.GetCost(), 1e-9)
		}
	}

	route, found, err := routing.NewUniformCostSearch(g).Search("MNL", "BAG")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"MNL", "PAM", "BAG"}, route.GetPath().Locations())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFileRejectsBadHighway(t *testing.T) {
	content := `locations:
  - id: A
    name: Alpha
highways:
  - from: A
    to: B
    distance_km: -5
`
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
}
