package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/internal/domains/booking/model"
	"tavola/shared"
	"tavola/shared/cache"
	"tavola/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	lockTTLSeconds = 10
	lockAttempts   = 20
	lockRetryWait  = 25 * time.Millisecond
)

// Session stores booking sessions in Redis. A session expires after the configured TTL
// of inactivity.
type Session interface {
	Save(ctx context.Context, state model.State) error
	Get(ctx context.Context, id string) (model.State, error)
	Delete(ctx context.Context, id string) error
	// Lock serialises updates of one session. The returned func releases it.
	Lock(ctx context.Context, id string) (unlock func(), err error)
}

type repositoryImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Session {
	return &repositoryImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func sessionKey(id string) string {
	return shared.BuildCacheKey(model.CacheKeySession, id)
}

func lockKey(id string) string {
	return shared.BuildCacheKey(model.CacheKeySessionLock, id)
}

func (r *repositoryImpl) Save(ctx context.Context, state model.State) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Save(ctx, sessionKey(state.ID), state, r.cfg.Booking.SessionTTLSeconds); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (state model.State, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.cache.Get(ctx, sessionKey(id), &state)
	if errors.Is(err, cache.Nil) {
		return state, model.ErrSessionNotFound
	}

	if err != nil {
		return state, fmt.Errorf("failed to get session: %w", err)
	}

	return state, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Delete(ctx, sessionKey(id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Lock(ctx context.Context, id string) (unlock func(), err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Lock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := lockKey(id)
	token := uuid.NewString()

	for attempt := range lockAttempts {
		saved, err := r.cache.SaveIfAbsent(ctx, key, token, lockTTLSeconds)
		if err != nil {
			return nil, fmt.Errorf("failed to lock session: %w", err)
		}

		if saved {
			scope.SetAttribute("attempts", attempt+1)

			return func() {
				released, err := r.cache.DeleteIfEqual(context.WithoutCancel(ctx), key, token)
				if err != nil {
					log.Error().Err(err).Str("session", id).Msg("failed to unlock session")

					return
				}

				// the lock outlived its TTL and may now belong to someone else
				if !released {
					log.Warn().Str("session", id).Msg("session lock expired before release")
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to lock session: %w", ctx.Err())
		case <-time.After(lockRetryWait):
		}
	}

	return nil, model.ErrSessionBusy
}
