package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lakbayph/lakbay/pkg/http/router/routerhelper"
	"github.com/lakbayph/lakbay/pkg/http/usecases"
	"go.uber.org/zap"
)

type navigationAPI struct {
	service NavigationService
	log     *zap.Logger
}

func New(service NavigationService, log *zap.Logger) *navigationAPI {
	return &navigationAPI{
		service: service,
		log:     log,
	}
}

func (api *navigationAPI) Routes(group *helper.RouteGroup) {
	group.GET("/route", api.route)
	group.GET("/network", api.network)
	group.GET("/nearestLocation", api.nearestLocation)
	group.POST("/routeMatrix", api.routeMatrix)
}

func (api *navigationAPI) validate(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

func (api *navigationAPI) route(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request routeRequest

	query := r.URL.Query()
	request.From = query.Get("from")
	request.To = query.Get("to")

	if !api.validate(w, r, request) {
		return
	}

	summary, err := api.service.Route(request.From, request.To)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(summary)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) network(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.service.Network()}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) nearestLocation(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearestLocationRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	request.RadiusKm, err = strconv.ParseFloat(query.Get("radius_km"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("radius_km is required and must be a valid float"))
		return
	}

	if !api.validate(w, r, request) {
		return
	}

	locations := api.service.NearestLocations(request.Lat, request.Lon, request.RadiusKm)

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": locations}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *navigationAPI) routeMatrix(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request routeMatrixRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if !api.validate(w, r, request) {
		return
	}

	pairs := make([]usecases.MatrixQuery, 0, len(request.Pairs))
	for _, p := range request.Pairs {
		pairs = append(pairs, usecases.MatrixQuery{From: p.From, To: p.To})
	}

	results := api.service.RouteMatrix(pairs)

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": results}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
