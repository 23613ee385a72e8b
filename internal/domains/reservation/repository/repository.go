package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/internal/domains/reservation/model"
	tableModel "tavola/internal/domains/table/model"
	"tavola/shared/constant"
	gDto "tavola/shared/dto"
	"tavola/shared/logger"
	gRepo "tavola/shared/repository"

	"github.com/jmoiron/sqlx"
)

const txMaxRetries = 2

var (
	lockTableQuery = fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = $1 FOR UPDATE",
		tableModel.FieldCapacity, tableModel.FieldActive, tableModel.TableName, tableModel.FieldID)

	slotTakenQuery = fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3 AND %s <> $4)",
		model.TableName, model.FieldTableID, model.FieldDate, model.FieldTimeSlot, model.FieldStatus)
)

type Reservation interface {
	Create(ctx context.Context, reservation model.Reservation, items []model.MenuItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetItems(ctx context.Context, reservationID string) ([]model.MenuItem, error)
	OccupiedTableIDs(ctx context.Context, date, timeSlot string) ([]string, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	items gRepo.Repository[model.MenuItem]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, db, otel),
		items:      gRepo.NewRepository[model.MenuItem](model.ItemEntityName, model.ItemTableName, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Create writes the reservation and its menu lines in one transaction. The table row is
// locked first so concurrent submissions for the same table are checked one at a time.
func (repo *repositoryImpl) Create(ctx context.Context, reservation model.Reservation, items []model.MenuItem) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = gRepo.RunInTxWithRetry(ctx, repo.db.Write, txMaxRetries, func(tx *sqlx.Tx) (struct{}, error) {
		if err := repo.checkTable(ctx, tx, reservation); err != nil {
			return struct{}{}, err
		}

		if err := repo.InsertTx(ctx, tx, reservation); err != nil {
			return struct{}{}, err //nolint:wrapcheck
		}

		if len(items) == 0 {
			return struct{}{}, nil
		}

		return struct{}{}, repo.items.InsertBulkTx(ctx, tx, items) //nolint:wrapcheck
	})

	if gRepo.IsUniqueViolation(err) {
		return model.ErrTableOccupied
	}

	return err
}

func (repo *repositoryImpl) checkTable(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation) error {
	var table struct {
		Capacity int  `db:"capacity"`
		Active   bool `db:"active"`
	}

	err := tx.GetContext(ctx, &table, lockTableQuery, reservation.TableID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrTableOccupied
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock table (%s): %w", reservation.TableID, err)
	}

	if !table.Active {
		return model.ErrTableOccupied
	}

	if table.Capacity < reservation.PartySize {
		return model.ErrTableTooSmall
	}

	taken := false

	err = tx.GetContext(ctx, &taken, slotTakenQuery,
		reservation.TableID, reservation.Date.Format(constant.DayFormat), reservation.TimeSlot, model.StatusCancelled)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to check table slot (%s): %w", reservation.TableID, err)
	}

	if taken {
		return model.ErrTableOccupied
	}

	return nil
}

func (repo *repositoryImpl) GetItems(ctx context.Context, reservationID string) ([]model.MenuItem, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.GetItems")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.ItemFieldReservationID, Value: reservationID, Operator: gDto.FilterOperatorEq, Table: model.ItemTableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	return repo.items.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

// OccupiedTableIDs lists the tables held by a non-cancelled reservation for the slot.
func (repo *repositoryImpl) OccupiedTableIDs(ctx context.Context, date, timeSlot string) ([]string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.OccupiedTableIDs")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldTimeSlot, Value: timeSlot, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusCancelled, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	reservations, err := repo.GetAll(ctx, gDto.QueryParams{}, filter, model.FieldTableID)
	if err != nil {
		scope.TraceError(err)

		return nil, err //nolint:wrapcheck
	}

	ids := make([]string, len(reservations))
	for i, reservation := range reservations {
		ids[i] = reservation.TableID
	}

	return ids, nil
}
