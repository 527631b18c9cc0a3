package router

import (
	"encoding/json"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lakbayph/lakbay/pkg/engine/routing"
	"github.com/lakbayph/lakbay/pkg/http/router/controllers"
	"go.uber.org/zap"
)

type searchStepMessage struct {
	Seq          int      `json:"seq"`
	Location     string   `json:"location"`
	Cost         float64  `json:"cost"`
	FrontierSize int      `json:"frontier_size"`
	Settled      int      `json:"settled"`
	Path         []string `json:"path"`
}

type searchResultMessage struct {
	Found         bool     `json:"found"`
	Error         string   `json:"error,omitempty"`
	TotalCost     float64  `json:"total_cost,omitempty"`
	TotalDistance float64  `json:"total_distance_km,omitempty"`
	TotalToll     float64  `json:"total_toll_php,omitempty"`
	Route         []string `json:"route,omitempty"`
}

// searchStepStream upgrades the connection and streams one frame per settled
// frontier extraction, then a final result frame. This is the live-animation
// feed; the engine stays free of display concerns.
func (api *API) searchStepStream(service controllers.NavigationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		from := query.Get("from")
		to := query.Get("to")
		if from == "" || to == "" {
			http.Error(w, "from and to are required", http.StatusBadRequest)
			return
		}

		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			api.log.Error("websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		emit := func(step routing.Step) {
			payload, merr := json.Marshal(searchStepMessage{
				Seq:          step.Seq,
				Location:     step.Location,
				Cost:         step.Cost,
				FrontierSize: step.FrontierSize,
				Settled:      step.Settled,
				Path:         step.Path.Locations(),
			})
			if merr != nil {
				return
			}
			_ = wsutil.WriteServerMessage(conn, ws.OpText, payload)
		}

		summary, err := service.StreamRoute(from, to, emit)

		var result searchResultMessage
		if err != nil {
			result.Error = err.Error()
		} else {
			route := summary.Route
			result.Found = true
			result.TotalCost = route.GetTotalCost()
			result.TotalDistance = route.GetTotalDistance()
			result.TotalToll = route.GetTotalToll()
			result.Route = route.GetPath().Locations()
		}

		payload, merr := json.Marshal(result)
		if merr != nil {
			return
		}
		_ = wsutil.WriteServerMessage(conn, ws.OpText, payload)
		_ = wsutil.WriteServerMessage(conn, ws.OpClose, nil)
	})
}
