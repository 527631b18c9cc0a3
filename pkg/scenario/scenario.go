package scenario

import (
	"github.com/lakbayph/lakbay/pkg/datastructure"
)

// Scenario a named highway network builder. Building is deferred so listing
// scenarios stays cheap.
type Scenario struct {
	Name  string
	Build func() (*datastructure.Graph, error)
}

// BuiltIn returns the bundled Luzon highway networks.
func BuiltIn() []Scenario {
	return []Scenario{
		{Name: "Northern Luzon Network", Build: BuildNorthernLuzon},
		{Name: "Southern Luzon Network", Build: BuildSouthernLuzon},
		{Name: "Complete Luzon Network", Build: BuildCompleteLuzon},
	}
}

type location struct {
	id, name string
	lat, lon float64
}

type highway struct {
	from, to      string
	distanceKm    float64
	trafficFactor float64
	tollPhp       float64
	name          string
}

func build(locations []location, highways []highway) (*datastructure.Graph, error) {
	g := datastructure.NewGraph()
	for _, loc := range locations {
		g.AddLocationWithCoordinate(loc.id, loc.name, loc.lat, loc.lon)
	}
	for _, h := range highways {
		if err := g.AddHighway(h.from, h.to, h.distanceKm, h.trafficFactor, h.tollPhp, h.name); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// BuildNorthernLuzon NLEX/SCTEX/TPLEX corridor up to Baguio.
func BuildNorthernLuzon() (*datastructure.Graph, error) {
	return build(
		[]location{
			{"MNL", "Metro Manila", 14.5995, 120.9842},
			{"PAM", "Pampanga (Angeles/Clark)", 15.1450, 120.5887},
			{"TAR", "Tarlac City", 15.4755, 120.5963},
			{"SUB", "Subic Bay", 14.7944, 120.2717},
			{"PAN", "Pangasinan (Dagupan)", 16.0430, 120.3335},
			{"LAU", "La Union (San Fernando)", 16.6159, 120.3166},
			{"BAG", "Baguio City", 16.4023, 120.5960},
		},
		[]highway{
			{"MNL", "PAM", 80, 1.3, 180, "NLEX"},
			{"PAM", "TAR", 55, 1.1, 95, "SCTEX"},
			{"PAM", "SUB", 45, 1.2, 85, "SCTEX"},
			{"TAR", "PAN", 70, 1.0, 120, "TPLEX"},
			{"PAN", "LAU", 55, 1.1, 95, "TPLEX"},
			{"LAU", "BAG", 45, 1.8, 0, "Kennon Road"},
			{"TAR", "BAG", 85, 1.5, 0, "Tarlac-Baguio Road"},
			{"MNL", "SUB", 120, 2.0, 50, "MacArthur Highway"},
		},
	)
}

// BuildSouthernLuzon SLEX/STAR/CALAX corridor down to Batangas.
func BuildSouthernLuzon() (*datastructure.Graph, error) {
	return build(
		[]location{
			{"MNL", "Metro Manila", 14.5995, 120.9842},
			{"CAV", "Cavite (Bacoor)", 14.4590, 120.9367},
			{"LGB", "Laguna (Biñan)", 14.3424, 121.0803},
			{"STO", "Sto. Tomas, Batangas", 14.0850, 121.1410},
			{"BAT", "Batangas City", 13.7565, 121.0583},
			{"LOS", "Los Baños, Laguna", 14.1699, 121.2441},
			{"CAL", "Calamba, Laguna", 14.2117, 121.1653},
		},
		[]highway{
			{"MNL", "LGB", 45, 1.4, 140, "SLEX"},
			{"LGB", "CAL", 25, 1.2, 60, "SLEX"},
			{"CAL", "STO", 35, 1.1, 75, "SLEX"},
			{"STO", "BAT", 45, 1.0, 110, "STAR Tollway"},
			{"CAV", "LGB", 30, 1.3, 95, "CALAX"},
			{"MNL", "CAV", 35, 1.6, 85, "Coastal Road"},
			{"LGB", "LOS", 15, 1.1, 0, "Local Road"},
			{"CAL", "LOS", 8, 1.0, 0, "Local Road"},
			{"MNL", "CAL", 55, 1.8, 0, "National Highway"},
		},
	)
}

// BuildCompleteLuzon Metro Manila internals plus the major expressways.
func BuildCompleteLuzon() (*datastructure.Graph, error) {
	return build(
		[]location{
			{"MNL", "Metro Manila", 14.5995, 120.9842},
			{"QC", "Quezon City", 14.6760, 121.0437},
			{"MKT", "Makati CBD", 14.5547, 121.0244},
			{"BGC", "Bonifacio Global City", 14.5508, 121.0551},
			{"NAIA", "NAIA Airport Area", 14.5086, 121.0194},
			{"PAM", "Pampanga (Clark)", 15.1450, 120.5887},
			{"CAV", "Cavite", 14.4590, 120.9367},
			{"LGB", "Laguna (Biñan)", 14.3424, 121.0803},
			{"BAT", "Batangas City", 13.7565, 121.0583},
			{"SUB", "Subic Bay", 14.7944, 120.2717},
		},
		[]highway{
			{"MNL", "QC", 20, 2.5, 45, "EDSA/C5"},
			{"MNL", "MKT", 15, 2.8, 55, "Skyway"},
			{"MKT", "BGC", 8, 2.0, 35, "Skyway"},
			{"MNL", "NAIA", 12, 2.2, 40, "NAIA Expressway"},
			{"BGC", "NAIA", 10, 1.8, 30, "Skyway"},
			{"MNL", "PAM", 80, 1.3, 180, "NLEX"},
			{"MNL", "CAV", 35, 1.6, 85, "Coastal Road"},
			{"MNL", "LGB", 45, 1.4, 140, "SLEX"},
			{"PAM", "SUB", 45, 1.2, 85, "SCTEX"},
			{"LGB", "BAT", 80, 1.1, 185, "SLEX + STAR"},
			{"CAV", "LGB", 30, 1.3, 95, "CALAX"},
		},
	)
}
