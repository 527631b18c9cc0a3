package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/lakbayph/lakbay/pkg/datastructure"
	"github.com/lakbayph/lakbay/pkg/engine/routing"
	"github.com/lakbayph/lakbay/pkg/http"
	"github.com/lakbayph/lakbay/pkg/http/usecases"
	"github.com/lakbayph/lakbay/pkg/logger"
	"github.com/lakbayph/lakbay/pkg/scenario"
	"github.com/lakbayph/lakbay/pkg/spatialindex"
	"go.uber.org/zap"
)

var (
	scenarioName  = flag.String("scenario", "Complete Luzon Network", "built-in scenario to serve")
	scenarioFile  = flag.String("scenario_file", "", "scenario file (yaml); overrides -scenario")
	matrixWorkers = flag.Int("matrix_workers", 4, "workers for route matrix queries")
	useRateLimit  = flag.Bool("rate_limit", false, "enable the API rate limiter")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	graph, err := loadGraph()
	if err != nil {
		panic(err)
	}
	log.Info("highway network loaded",
		zap.Int("locations", graph.NumLocations()),
		zap.Int("highways", graph.NumHighways()),
	)

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, log)

	engine := routing.NewUniformCostSearch(graph)

	api := http.NewServer(log)

	navigationService := usecases.NewNavigationService(log, engine, rtree, *matrixWorkers)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	if _, err := api.Use(ctx, log, *useRateLimit, navigationService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	log.Info("Lakbay route planner stopped", zap.String("signal", signal.String()))
	cleanup()
}

func loadGraph() (*datastructure.Graph, error) {
	if *scenarioFile != "" {
		return scenario.LoadFile(*scenarioFile)
	}
	for _, sc := range scenario.BuiltIn() {
		if sc.Name == *scenarioName {
			return sc.Build()
		}
	}
	return nil, fmt.Errorf("unknown scenario %q", *scenarioName)
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
