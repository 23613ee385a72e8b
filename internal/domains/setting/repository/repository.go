package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/internal/domains/setting/model"
	gDto "tavola/shared/dto"
	gRepo "tavola/shared/repository"
)

type PaymentSetting interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PaymentSetting, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PaymentSetting]
}

func New(db *postgres.Connection, otel otel.Otel) PaymentSetting {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PaymentSetting](model.EntityName, model.TableName, db, otel),
	}
}
