package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lakbayph/lakbay/pkg/http/router/controllers"
	router_helper "github.com/lakbayph/lakbay/pkg/http/router/routerhelper"
	http_server "github.com/lakbayph/lakbay/pkg/http/server"
	"github.com/lakbayph/lakbay/pkg/metrics"
	"github.com/rs/cors"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "net/http/pprof"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

//	@title			Lakbay API
//	@version		1.0
//	@description	Toll- and traffic-aware highway route planner for Luzon expressways.

// @host		localhost
// @BasePath	/api/navigation
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	useRateLimit bool,
	navigationService controllers.NavigationService,
) error {
	log.Info("Run httprouter API")

	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore

	})

	router.GET("/doc/*any", swaggerHandler)

	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)
	router.Handler(http.MethodGet, "/metrics", metrics.Handler())

	group := router_helper.NewRouteGroup(router, "/api/navigation")

	navigationRoutes := controllers.New(navigationService, log)

	navigationRoutes.Routes(group)

	router.Handler(http.MethodGet, "/api/navigation/ws", api.searchStepStream(navigationService))

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(log)}
	if useRateLimit {
		mwChain = append(mwChain, Limit)
	}
	mainMwChain := alice.New(mwChain...).Then(router)

	srv := http_server.New(ctx, mainMwChain, config)
	log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		log.Info("shutting down API server")
		return srv.Shutdown(context.Background())
	}
}

func swaggerHandler(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	httpSwagger.Handler(
		httpSwagger.URL("/doc/doc.json"),
	).ServeHTTP(w, r)
}
