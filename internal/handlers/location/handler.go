package location

import (
	"hotel/infras/otel"
	"hotel/internal/domains/location/model/dto"
	"hotel/internal/domains/location/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Location
	otel    otel.Otel
}

func New(service service.Location, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/locations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLocations)
	})

	router.Route("/find_closest_location_on_grid", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.FindClosestLocation)
	})
}

// GetLocations dumps the fixed location list.
// @Summary Get all locations
// @Description Dump every named location on the grid, in definition order.
// @Tags Location
// @Produce json
// @Success 200 {array} dto.LocationResponse
// @Failure 500 {object} response.Error
// @Router /locations/ [get]
func (handler *Handler) GetLocations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	locations, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get locations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, locations)
}

// FindClosestLocation finds the named location closest to the given grid coordinates.
// @Summary Find the closest location
// @Description Find the closest named location to (x, y). Coordinates must be integers between 0 and 99, inclusive.
// @Tags Location
// @Produce json
// @Param x query int true "Your X coordinate on the grid (0-99)." minimum(0) maximum(99)
// @Param y query int true "Your Y coordinate on the grid (0-99)." minimum(0) maximum(99)
// @Success 200 {object} dto.ClosestLocationResponse
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /find_closest_location_on_grid/ [get]
func (handler *Handler) FindClosestLocation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindClosestLocation")
	defer scope.End()

	req := dto.CoordinatesQuery{}

	if err := validator.ValidateQuery(request.URL.Query(), &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.FindClosest(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find closest location")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Closest location found: " + res.ClosestLocation.Name)

	response.WithJSON(writer, http.StatusOK, res)
}
