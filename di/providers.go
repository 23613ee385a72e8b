package di

import (
	"tavola/config"
	"tavola/infras/kafka"
	"tavola/infras/otel"
	"tavola/infras/postgres"
	"tavola/infras/redis"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// provideKafka closes the shared producer when the injector is torn down so that
// buffered loyalty events are flushed.
func provideKafka(cfg *config.Config, otel otel.Otel) (kafka.Client, func()) {
	client := kafka.New(cfg, otel)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Kafka client")
		}
	}
}

func providePostgres(cfg *config.Config) (*postgres.Connection, func(), error) {
	db, err := postgres.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return db, func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Postgres connections")
		}
	}, nil
}

func provideRedis(cfg *config.Config) (*goRedis.Client, func(), error) {
	client, err := redis.New(cfg)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis client")
		}
	}, nil
}
