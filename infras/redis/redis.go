package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"tavola/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// New connects to the primary Redis and checks it answers before returning.
func New(cfg *config.Config) (*goRedis.Client, error) {
	primary := cfg.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to connect to redis at %s: %w", client.Options().Addr, err)
	}

	log.Info().Str("addr", client.Options().Addr).Int("db", primary.DB).Msg("Connected to Redis")

	return client, nil
}
