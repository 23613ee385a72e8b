package service

import (
	"context"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/internal/domains/setting/model"
	"tavola/internal/domains/setting/model/dto"
	"tavola/internal/domains/setting/repository"
	"tavola/shared"
	"tavola/shared/cache"
	"tavola/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPayment = "setting:payment"
)

type Setting interface {
	Payment(ctx context.Context) (dto.PaymentSettingResponse, error)
}

type serviceImpl struct {
	repo  repository.PaymentSetting
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.PaymentSetting, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Payment never fails: a missing row or an unreachable database yields the configured default.
func (s *serviceImpl) Payment(ctx context.Context) (res dto.PaymentSettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.Payment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err := s.cache.Get(ctx, cacheGetPayment, &res); err == nil {
		log.Debug().Str("cacheKey", cacheGetPayment).Msg("cache hit for payment setting")

		return res, nil
	}

	setting, err := s.repo.Get(ctx, shared.FilterByID(model.PaymentSettingID, model.FieldID, model.TableName))
	if err != nil {
		log.Warn().Err(err).Bool("default", s.cfg.Payment.Enabled).Msg("failed to get payment setting, using default")

		return dto.PaymentSettingResponse{Enabled: s.cfg.Payment.Enabled, Default: true}, nil
	}

	if setting.ID == constant.Empty {
		res = dto.PaymentSettingResponse{Enabled: s.cfg.Payment.Enabled, Default: true}
	} else {
		res.FromModel(setting)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetPayment, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment setting to cache")
		}
	}()

	return res, nil
}
