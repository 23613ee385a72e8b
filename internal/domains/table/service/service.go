package service

import (
	"context"
	"fmt"

	"tavola/config"
	"tavola/infras/otel"
	bookingModel "tavola/internal/domains/booking/model"
	reservationRepo "tavola/internal/domains/reservation/repository"
	"tavola/internal/domains/table/model"
	"tavola/internal/domains/table/model/dto"
	"tavola/internal/domains/table/repository"
	"tavola/shared/cache"
	"tavola/shared/constant"
	gDto "tavola/shared/dto"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllTable = "table:gets"
)

type Table interface {
	Availability(ctx context.Context, date, timeSlot string) ([]bookingModel.Table, error)
	Classified(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo            repository.DiningTable
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.DiningTable, reservationRepo reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Table {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

// Availability lists every active table with its free flag for the slot. Occupancy is
// never cached; the floor plan is.
func (s *serviceImpl) Availability(ctx context.Context, date, timeSlot string) (res []bookingModel.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tables, err := s.activeTables(ctx)
	if err != nil {
		return nil, err
	}

	occupied, err := s.reservationRepo.OccupiedTableIDs(ctx, date, timeSlot)
	if err != nil {
		log.Error().Err(err).Str("date", date).Str("time", timeSlot).Msg("failed to get occupied tables")

		return nil, fmt.Errorf("failed to get occupied tables: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"tables":   len(tables),
		"occupied": len(occupied),
	})

	return dto.ToDomain(tables, occupied), nil
}

func (s *serviceImpl) activeTables(ctx context.Context) ([]model.DiningTable, error) {
	var tables []model.DiningTable

	if err := s.cache.Get(ctx, cacheGetAllTable, &tables); err == nil && len(tables) > 0 {
		log.Debug().Str("cacheKey", cacheGetAllTable).Msg("cache hit for tables")

		return tables, nil
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCapacity, SortDir: gDto.SortDirAsc}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	tables, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return nil, fmt.Errorf("failed to get tables: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllTable, tables, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tables to cache")
		}
	}()

	return tables, nil
}

func (s *serviceImpl) Classified(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Classified")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tables, err := s.Availability(ctx, req.Date, req.TimeSlot)
	if err != nil {
		return res, err
	}

	res.FromModels(req, tables)

	return res, nil
}
