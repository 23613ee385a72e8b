package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/internal/domains/table/model"
	gDto "tavola/shared/dto"
	gRepo "tavola/shared/repository"
)

type DiningTable interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DiningTable, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DiningTable, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.DiningTable]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DiningTable {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DiningTable](model.EntityName, model.TableName, db, otel),
		db:         db,
		otel:       otel,
	}
}
