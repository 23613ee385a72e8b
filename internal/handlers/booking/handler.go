package booking

import (
	"net/http"

	"tavola/infras/otel"
	"tavola/internal/domains/booking/model/dto"
	"tavola/internal/domains/booking/service"
	"tavola/shared/constant"
	"tavola/shared/validator"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartSession)

		routerGroup.Route("/{id}", func(session chi.Router) {
			session.Get("/", handler.GetSession)
			session.Delete("/", handler.AbandonSession)
			session.Put("/details", handler.UpdateDetails)
			session.Get("/tables", handler.LoadTables)
			session.Put("/table", handler.SelectTable)
			session.Post("/menu/modes", handler.ToggleMode)
			session.Post("/menu/packages", handler.SelectPackage)
			session.Patch("/menu/packages/{packageID}", handler.ChangePackageQuantity)
			session.Delete("/menu/packages/{packageID}", handler.RemovePackage)
			session.Put("/menu/items", handler.SetItems)
			session.Post("/payment", handler.ConfirmPayment)
			session.Post("/payment/failure", handler.ReportPaymentFailure)
			session.Post("/advance", handler.Advance)
			session.Post("/retreat", handler.Retreat)
			session.Post("/submit", handler.Submit)
		})
	})
}

// StartSession opens a booking session.
// @Summary Start a booking
// @Description Open a booking session on the details step. Payment settings are loaded once here.
// @Tags Booking
// @Produce json
// @Success 201 {object} response.Data[dto.SessionResponse] "New session"
// @Failure 500 {object} response.Error
// @Router /v1/booking/sessions [post]
func (handler *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartSession")
	defer scope.End()

	session, err := handler.service.Start(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start booking session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking session started " + session.ID)

	response.WithJSON(w, http.StatusCreated, session)
}

// GetSession returns the current view of a session.
// @Summary Get a booking session
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id} [get]
func (handler *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	session, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking session")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// AbandonSession drops a session and its draft.
// @Summary Abandon a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Message "Booking abandoned"
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id} [delete]
func (handler *Handler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AbandonSession")
	defer scope.End()

	if err := handler.service.Abandon(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to abandon booking session")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking abandoned")
}

// UpdateDetails stores the details step.
// @Summary Update booking details
// @Description Contact, schedule, occasion and notes. Changing the schedule reloads the tables.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.DetailsRequest true "Details"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id}/details [put]
func (handler *Handler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDetails")
	defer scope.End()

	req := dto.DetailsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.UpdateDetails(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking details")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// LoadTables reloads the tables of the chosen slot.
// @Summary Reload tables
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id}/tables [get]
func (handler *Handler) LoadTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoadTables")
	defer scope.End()

	session, err := handler.service.LoadTables(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// SelectTable holds a table for the draft.
// @Summary Select a table
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectTableRequest true "Table"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Table occupied or too small"
// @Router /v1/booking/sessions/{id}/table [put]
func (handler *Handler) SelectTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectTable")
	defer scope.End()

	req := dto.SelectTableRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.SelectTable(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select table")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// ToggleMode switches a menu selector on or off.
// @Summary Toggle a menu mode
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ToggleModeRequest true "Mode"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Router /v1/booking/sessions/{id}/menu/modes [post]
func (handler *Handler) ToggleMode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleMode")
	defer scope.End()

	req := dto.ToggleModeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.ToggleMode(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle menu mode")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// SelectPackage adds one unit of a fixed package.
// @Summary Select a fixed package
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectPackageRequest true "Package"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/booking/sessions/{id}/menu/packages [post]
func (handler *Handler) SelectPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectPackage")
	defer scope.End()

	req := dto.SelectPackageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.SelectPackage(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select package")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// ChangePackageQuantity moves the quantity of a selected package.
// @Summary Change package quantity
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param packageID path string true "Package ID"
// @Param request body dto.ChangeQuantityRequest true "Delta"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Router /v1/booking/sessions/{id}/menu/packages/{packageID} [patch]
func (handler *Handler) ChangePackageQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePackageQuantity")
	defer scope.End()

	req := dto.ChangeQuantityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)
	packageID := chi.URLParam(r, constant.RequestParamPackageID)

	session, err := handler.service.ChangePackageQuantity(ctx, id, packageID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change package quantity")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// RemovePackage drops a fixed package from the selection.
// @Summary Remove a package
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Param packageID path string true "Package ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Router /v1/booking/sessions/{id}/menu/packages/{packageID} [delete]
func (handler *Handler) RemovePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemovePackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	packageID := chi.URLParam(r, constant.RequestParamPackageID)

	session, err := handler.service.RemovePackage(ctx, id, packageID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove package")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// SetItems replaces the à-la-carte lines.
// @Summary Set à-la-carte items
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ItemsRequest true "Items"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Router /v1/booking/sessions/{id}/menu/items [put]
func (handler *Handler) SetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetItems")
	defer scope.End()

	req := dto.ItemsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.SetItems(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// ConfirmPayment records a successful payment for the total.
// @Summary Confirm payment
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.PaymentRequest true "Payment"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Router /v1/booking/sessions/{id}/payment [post]
func (handler *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmPayment")
	defer scope.End()

	req := dto.PaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.ConfirmPayment(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment confirmed " + req.TransactionID)

	response.WithJSON(w, http.StatusOK, session)
}

// ReportPaymentFailure keeps the guest on the payment step with a message.
// @Summary Report a failed payment
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.PaymentFailureRequest true "Failure"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Router /v1/booking/sessions/{id}/payment/failure [post]
func (handler *Handler) ReportPaymentFailure(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReportPaymentFailure")
	defer scope.End()

	req := dto.PaymentFailureRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.ReportPaymentFailure(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to report payment failure")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Advance moves to the next step.
// @Summary Next step
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error "Step incomplete, with per-field messages on details"
// @Router /v1/booking/sessions/{id}/advance [post]
func (handler *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Advance")
	defer scope.End()

	session, err := handler.service.Advance(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Retreat moves to the previous step.
// @Summary Previous step
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse] "Session"
// @Failure 400 {object} response.Error
// @Router /v1/booking/sessions/{id}/retreat [post]
func (handler *Handler) Retreat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Retreat")
	defer scope.End()

	session, err := handler.service.Retreat(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to retreat booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}

// Submit turns the draft into a reservation.
// @Summary Submit the reservation
// @Tags Booking
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} response.Data[dto.SubmitResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Table taken meanwhile, session moved back to table selection"
// @Failure 500 {object} response.Error
// @Router /v1/booking/sessions/{id}/submit [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	res, err := handler.service.Submit(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation submitted " + res.ReservationID)

	response.WithJSON(w, http.StatusCreated, res)
}
