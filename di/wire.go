//go:build wireinject
// +build wireinject

package di

import (
	"tavola/config"
	"tavola/infras/jwt"
	"tavola/infras/otel"
	"tavola/infras/s3"
	"tavola/permissions"
	"tavola/shared/cache"
	"tavola/transport/http"
	"tavola/transport/http/middleware"
	"tavola/transport/http/router"

	bookingRepository "tavola/internal/domains/booking/repository"
	bookingService "tavola/internal/domains/booking/service"
	catalogRepository "tavola/internal/domains/catalog/repository"
	catalogService "tavola/internal/domains/catalog/service"
	loyaltyService "tavola/internal/domains/loyalty/service"
	reservationRepository "tavola/internal/domains/reservation/repository"
	reservationService "tavola/internal/domains/reservation/service"
	settingRepository "tavola/internal/domains/setting/repository"
	settingService "tavola/internal/domains/setting/service"
	tableRepository "tavola/internal/domains/table/repository"
	tableService "tavola/internal/domains/table/service"

	bookingHandler "tavola/internal/handlers/booking"
	catalogHandler "tavola/internal/handlers/catalog"
	reservationHandler "tavola/internal/handlers/reservation"
	settingHandler "tavola/internal/handlers/setting"
	tableHandler "tavola/internal/handlers/table"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	providePostgres,
	otel.New,
	provideRedis,
	jwt.New,
	s3.New,
	provideKafka,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewPackage,
	catalogRepository.NewItem,
	catalogService.New,
)

var settingDomain = wire.NewSet(
	settingRepository.New,
	settingService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var loyaltyDomain = wire.NewSet(
	loyaltyService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.NewFlow,
	bookingService.New,
	wire.Bind(new(bookingService.TableSource), new(tableService.Table)),
	wire.Bind(new(bookingService.CatalogSource), new(catalogService.Catalog)),
	wire.Bind(new(bookingService.PaymentSettingsSource), new(settingService.Setting)),
	wire.Bind(new(bookingService.ReservationWriter), new(reservationService.Reservation)),
	wire.Bind(new(bookingService.LoyaltyAwarder), new(loyaltyService.Loyalty)),
)

var domains = wire.NewSet(
	tableDomain,
	catalogDomain,
	settingDomain,
	reservationDomain,
	loyaltyDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	catalogHandler.New,
	tableHandler.New,
	settingHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}
