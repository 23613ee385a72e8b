package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tavola/shared/constant"
	"tavola/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	pqErrorSerializationFailure = "40001"
	pqErrorDeadlockDetected     = "40P01"

	txRetryBaseWait = 100 * time.Millisecond
)

// RunInTx runs fn inside a write transaction and commits when fn succeeds.
func RunInTx[T any](ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		logger.ErrorWithStack(err)

		return zero, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Warn().Err(rollbackErr).Msg("failed to rollback transaction")
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return zero, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

// RunInTxWithRetry retries serialization failures and deadlocks with a linear backoff.
func RunInTxWithRetry[T any](ctx context.Context, db *sqlx.DB, maxRetries int, fn func(tx *sqlx.Tx) (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		result, err := RunInTx(ctx, db, fn)
		if err == nil {
			return result, nil
		}

		if !isRetryable(err) || attempt >= maxRetries {
			return zero, err
		}

		wait := time.Duration(attempt+1) * txRetryBaseWait
		log.Warn().Err(err).Int("attempt", attempt+1).Dur("wait", wait).Msg("retrying transaction")

		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("transaction retry aborted: %w", ctx.Err())
		case <-time.After(wait):
		}
	}
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	return pqErr.Code == pqErrorSerializationFailure || pqErr.Code == pqErrorDeadlockDetected
}

// IsUniqueViolation reports whether err was raised by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation
}
