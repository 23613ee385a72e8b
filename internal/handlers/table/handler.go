package table

import (
	"net/http"

	"tavola/infras/otel"
	"tavola/internal/domains/table/model/dto"
	"tavola/internal/domains/table/service"
	"tavola/shared/constant"
	"tavola/shared/validator"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Table
	otel    otel.Otel
}

func New(service service.Table, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tables", func(routerGroup chi.Router) {
		routerGroup.Get("/availability", handler.GetAvailability)
	})
}

// GetAvailability classifies every table for a slot and party size.
// @Summary Get table availability
// @Tags Table
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Time slot (HH:MM)"
// @Param party_size query integer true "Party size"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Tables"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	req := dto.AvailabilityRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	tables, err := handler.service.Classified(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tables)
}
