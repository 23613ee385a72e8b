package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/infras/s3"
	bookingModel "tavola/internal/domains/booking/model"
	"tavola/internal/domains/reservation/model"
	"tavola/internal/domains/reservation/model/dto"
	"tavola/internal/domains/reservation/repository"
	"tavola/shared"
	"tavola/shared/cache"
	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation = "reservation:get"

	receiptExtension = ".json"
)

type Reservation interface {
	Create(ctx context.Context, submission dto.Submission) (string, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Receipt(ctx context.Context, id string) ([]byte, error)
}

type serviceImpl struct {
	repo  repository.Reservation
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Reservation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// Create stores a submitted draft. A table that was taken or shrank below the party
// size comes back as a conflict carrying a *bookingModel.TableError.
func (s *serviceImpl) Create(ctx context.Context, submission dto.Submission) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, items, err := submission.ToModel()
	if err != nil {
		log.Error().Err(err).Str("session", submission.SessionID).Msg("failed to build reservation")

		return constant.Empty, failure.BadRequest(err) // nolint:wrapcheck
	}

	err = s.repo.Create(ctx, reservation, items)

	switch {
	case errors.Is(err, model.ErrTableOccupied):
		return constant.Empty, conflict(reservation.TableID, bookingModel.TableIssueOccupied)
	case errors.Is(err, model.ErrTableTooSmall):
		return constant.Empty, conflict(reservation.TableID, bookingModel.TableIssueTooSmall)
	case err != nil:
		log.Error().Err(err).Msg("failed to create reservation")

		return constant.Empty, fmt.Errorf("failed to create reservation: %w", err)
	}

	scope.AddEvent("reservation created " + reservation.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		s.archiveReceipt(c, reservation, items)
	}()

	return reservation.ID, nil
}

func conflict(tableID string, issue bookingModel.TableIssue) error {
	return fmt.Errorf("%w: %w", failure.Conflict("reservation conflict"), &bookingModel.TableError{TableID: tableID, Issue: issue})
}

func (s *serviceImpl) archiveReceipt(ctx context.Context, reservation model.Reservation, items []model.MenuItem) {
	var receipt dto.Receipt
	receipt.FromModel(reservation, items)

	body, err := json.Marshal(receipt)
	if err != nil {
		log.Error().Err(err).Str("reservation", reservation.ID).Msg("failed to encode receipt")

		return
	}

	key := s.receiptKey(reservation.ID)

	url, err := s.s3.Put(ctx, key, constant.ContentTypeJSON, body)
	if err != nil {
		log.Error().Err(err).Str("reservation", reservation.ID).Msg("failed to archive receipt")

		return
	}

	update := map[string]any{
		model.FieldReceiptURL:    url,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, update, shared.FilterByID(reservation.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("reservation", reservation.ID).Msg("failed to store receipt url")

		if err = s.s3.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to remove orphaned receipt")
		}

		return
	}

	if err = s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetReservation, reservation.ID)); err != nil {
		log.Error().Err(err).Str("reservation", reservation.ID).Msg("failed to invalidate reservation cache")
	}

	log.Info().Str("reservation", reservation.ID).Str("url", url).Msg("receipt archived")
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil && res.ID != constant.Empty {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	items, err := s.repo.GetItems(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation lines")

		return res, fmt.Errorf("failed to get reservation lines: %w", err)
	}

	res.FromModel(reservation, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) receiptKey(id string) string {
	return path.Join(s.cfg.External.S3.ReceiptDir, id+receiptExtension)
}

// Receipt returns the archived JSON receipt. Archiving runs after the commit, so a fresh
// reservation may not have one yet.
func (s *serviceImpl) Receipt(ctx context.Context, id string) (body []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Receipt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err = s.s3.Get(ctx, s.receiptKey(id))
	if errors.Is(err, s3.ErrObjectNotFound) {
		return nil, failure.NotFound(model.ReceiptEntityName) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("reservation", id).Msg("failed to get receipt")

		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	return body, nil
}
