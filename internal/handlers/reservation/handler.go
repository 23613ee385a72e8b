package reservation

import (
	"net/http"

	"tavola/infras/otel"
	"tavola/internal/domains/reservation/service"
	"tavola/shared/constant"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Get("/{id}/receipt", handler.GetReceipt)
	})
}

// GetReservationByID retrieves a submitted reservation.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	reservation, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// GetReceipt returns the archived JSON receipt of a reservation.
// @Summary Get a reservation receipt
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} object "Receipt document"
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id}/receipt [get]
// @Security BearerAuth
func (handler *Handler) GetReceipt(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReceipt")
	defer scope.End()

	receipt, err := handler.service.Receipt(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation receipt")

		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, constant.ContentTypeJSON, receipt)
}
