package service

import (
	"context"
	"fmt"
	"strconv"

	"tavola/config"
	"tavola/infras/otel"
	bookingModel "tavola/internal/domains/booking/model"
	"tavola/internal/domains/catalog/model"
	"tavola/internal/domains/catalog/model/dto"
	"tavola/internal/domains/catalog/repository"
	"tavola/shared"
	"tavola/shared/cache"
	"tavola/shared/constant"
	gDto "tavola/shared/dto"
	"tavola/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPackage = "catalog:packages"
	cacheGetAllItem    = "catalog:items"
)

type Catalog interface {
	Packages(ctx context.Context) (dto.PackagesResponse, error)
	Package(ctx context.Context, id string) (bookingModel.Package, error)
	Items(ctx context.Context, query dto.ItemQuery) (dto.ItemsResponse, error)
}

type serviceImpl struct {
	packageRepo repository.Package
	itemRepo    repository.Item
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(packageRepo repository.Package, itemRepo repository.Item, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		packageRepo: packageRepo,
		itemRepo:    itemRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Packages(ctx context.Context) (res dto.PackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.Packages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheGetAllPackage, &res)
	if err == nil && res.Packages != nil {
		log.Debug().Str("cacheKey", cacheGetAllPackage).Msg("cache hit for packages")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.PackageTableName + "." + model.FieldSortOrder, SortDir: gDto.SortDirAsc}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.PackageTableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	models, err := s.packageRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get packages")

		return res, fmt.Errorf("failed to get packages: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllPackage, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save packages to cache")
		}
	}()

	return res, nil
}

// Package resolves one active package by id.
func (s *serviceImpl) Package(ctx context.Context, id string) (res bookingModel.Package, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.Package")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	packages, err := s.Packages(ctx)
	if err != nil {
		return res, err
	}

	for _, pkg := range packages.Packages {
		if pkg.ID == id {
			return pkg, nil
		}
	}

	return res, failure.NotFound(model.PackageEntityName) // nolint:wrapcheck
}

func (s *serviceImpl) Items(ctx context.Context, query dto.ItemQuery) (res dto.ItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".catalog.Items")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	inStock := constant.Empty
	if query.InStock != nil {
		inStock = strconv.FormatBool(*query.InStock)
	}

	cacheKey := shared.BuildCacheKey(cacheGetAllItem, query.CategoryID, inStock)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil && res.Items != nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for items")

		return res, nil
	}

	filters := []any{
		gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.ItemTableName},
	}

	if query.CategoryID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldCategoryID, Value: query.CategoryID, Operator: gDto.FilterOperatorEq, Table: model.ItemTableName})
	}

	if query.InStock != nil {
		filters = append(filters, gDto.Filter{Field: model.FieldInStock, Value: *query.InStock, Operator: gDto.FilterOperatorEq, Table: model.ItemTableName})
	}

	params := gDto.QueryParams{SortBy: model.ItemTableName + "." + model.FieldSortOrder, SortDir: gDto.SortDirAsc}

	models, err := s.itemRepo.GetAll(ctx, params, gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd})
	if err != nil {
		log.Error().Err(err).Msg("failed to get items")

		return res, fmt.Errorf("failed to get items: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save items to cache")
		}
	}()

	return res, nil
}
