package scenario

import (
	"fmt"

	"github.com/lakbayph/lakbay/pkg"
	"github.com/lakbayph/lakbay/pkg/datastructure"
	"github.com/spf13/viper"
)

type locationSpec struct {
	ID   string  `mapstructure:"id"`
	Name string  `mapstructure:"name"`
	Lat  float64 `mapstructure:"lat"`
	Lon  float64 `mapstructure:"lon"`
}

type highwaySpec struct {
	From          string  `mapstructure:"from"`
	To            string  `mapstructure:"to"`
	DistanceKm    float64 `mapstructure:"distance_km"`
	TrafficFactor float64 `mapstructure:"traffic_factor"`
	TollPhp       float64 `mapstructure:"toll_php"`
	Name          string  `mapstructure:"name"`
}

// LoadFile builds a highway network from a scenario file (yaml/json/toml,
// whatever viper can read). Locations without coordinates are registered by
// name only; highways with a zero traffic factor default to free-flowing
// traffic.
func LoadFile(path string) (*datastructure.Graph, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var (
		locations []locationSpec
		highways  []highwaySpec
	)
	if err := v.UnmarshalKey("locations", &locations); err != nil {
		return nil, fmt.Errorf("parse locations: %w", err)
	}
	if err := v.UnmarshalKey("highways", &highways); err != nil {
		return nil, fmt.Errorf("parse highways: %w", err)
	}

	g := datastructure.NewGraph()
	for _, loc := range locations {
		if loc.Lat != 0 || loc.Lon != 0 {
			g.AddLocationWithCoordinate(loc.ID, loc.Name, loc.Lat, loc.Lon)
		} else {
			g.AddLocation(loc.ID, loc.Name)
		}
	}
	for _, h := range highways {
		traffic := h.TrafficFactor
		if traffic == 0 {
			traffic = pkg.DEFAULT_TRAFFIC
		}
		if err := g.AddHighway(h.From, h.To, h.DistanceKm, traffic, h.TollPhp, h.Name); err != nil {
			return nil, fmt.Errorf("highway %s-%s: %w", h.From, h.To, err)
		}
	}
	return g, nil
}
