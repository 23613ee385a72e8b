package router

import (
	"tavola/internal/handlers/booking"
	"tavola/internal/handlers/catalog"
	"tavola/internal/handlers/reservation"
	"tavola/internal/handlers/setting"
	"tavola/internal/handlers/table"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking     booking.Handler
	Catalog     catalog.Handler
	Table       table.Handler
	Setting     setting.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Table.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
