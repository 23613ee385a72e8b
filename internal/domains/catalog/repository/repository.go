package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/internal/domains/catalog/model"
	gDto "tavola/shared/dto"
	gRepo "tavola/shared/repository"
)

type Package interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MenuPackage, error)
}

type Item interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MenuItem, error)
}

type packageRepository struct {
	gRepo.Repository[model.MenuPackage]
}

type itemRepository struct {
	gRepo.Repository[model.MenuItem]
}

func NewPackage(db *postgres.Connection, otel otel.Otel) Package {
	return &packageRepository{
		Repository: gRepo.NewRepository[model.MenuPackage](model.PackageEntityName, model.PackageTableName, db, otel),
	}
}

func NewItem(db *postgres.Connection, otel otel.Otel) Item {
	return &itemRepository{
		Repository: gRepo.NewRepository[model.MenuItem](model.ItemEntityName, model.ItemTableName, db, otel),
	}
}
