package catalog

import (
	"net/http"

	"tavola/infras/otel"
	"tavola/internal/domains/catalog/model/dto"
	"tavola/internal/domains/catalog/service"
	"tavola/shared/constant"
	"tavola/shared/validator"
	"tavola/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/catalog", func(routerGroup chi.Router) {
		routerGroup.Get("/packages", handler.GetPackages)
		routerGroup.Get("/items", handler.GetItems)
	})
}

// GetPackages lists the active fixed menu packages.
// @Summary Get fixed packages
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.PackagesResponse] "Packages"
// @Failure 500 {object} response.Error
// @Router /v1/catalog/packages [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	packages, err := handler.service.Packages(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, packages)
}

// GetItems lists the à-la-carte catalog.
// @Summary Get à-la-carte items
// @Tags Catalog
// @Produce json
// @Param category_id query string false "Category"
// @Param in_stock query boolean false "Only items in stock"
// @Success 200 {object} response.Data[dto.ItemsResponse] "Items with their categories"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/catalog/items [get]
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	query := dto.ItemQuery{}
	query.FromRequest(r)

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	items, err := handler.service.Items(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}
