package setting

import (
	"net/http"

	"tavola/infras/otel"
	"tavola/internal/domains/setting/service"
	"tavola/shared/constant"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Setting
	otel    otel.Otel
}

func New(service service.Setting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/payment", handler.GetPaymentSetting)
	})
}

// GetPaymentSetting tells the client whether online payment is on.
// @Summary Get payment settings
// @Tags Setting
// @Produce json
// @Success 200 {object} response.Data[dto.PaymentSettingResponse] "Payment settings"
// @Router /v1/settings/payment [get]
func (handler *Handler) GetPaymentSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentSetting")
	defer scope.End()

	setting, err := handler.service.Payment(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment setting")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, setting)
}
