package service

import (
	"context"
	"fmt"

	"tavola/config"
	"tavola/infras/kafka"
	"tavola/infras/otel"
	bookingModel "tavola/internal/domains/booking/model"
	"tavola/internal/domains/loyalty/model"
	"tavola/shared/constant"
	"tavola/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Loyalty interface {
	Award(ctx context.Context, userID, reservationID string, mode bookingModel.Mode) error
}

type serviceImpl struct {
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(kafka kafka.Client, cfg *config.Config, otel otel.Otel) Loyalty {
	return &serviceImpl{
		kafka: kafka,
		cfg:   cfg,
		otel:  otel,
	}
}

// Award publishes the points earned by a reservation. Guests without an account earn nothing.
func (s *serviceImpl) Award(ctx context.Context, userID, reservationID string, mode bookingModel.Mode) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".loyalty.Award")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if userID == constant.Empty {
		log.Debug().Str("reservation", reservationID).Msg("guest reservation, no loyalty points")

		return nil
	}

	points, bonus := model.Points(s.cfg.Loyalty.BasePoints, s.cfg.Loyalty.BonusPoints, mode != bookingModel.ModeAtRestaurant)

	event := model.PointsAwarded{
		UserID:        userID,
		ReservationID: reservationID,
		MenuMode:      string(mode),
		BasePoints:    s.cfg.Loyalty.BasePoints,
		BonusPoints:   bonus,
		Points:        points,
		AwardedAt:     timezone.Now(),
	}

	scope.SetAttributes(map[string]any{
		"user_id": userID,
		"points":  points,
	})

	message := kafka.Message{
		Key:     userID,
		Value:   event,
		Headers: map[string]string{model.HeaderEvent: model.EventPointsAwarded},
	}

	if err = s.kafka.SendMessages(ctx, s.cfg.Loyalty.Topic, message); err != nil {
		log.Error().Err(err).Str("user", userID).Str("reservation", reservationID).Msg("failed to award loyalty points")

		return fmt.Errorf("failed to award loyalty points: %w", err)
	}

	log.Info().Str("user", userID).Int("points", points).Msg("loyalty points awarded")

	return nil
}
