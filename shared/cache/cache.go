package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tavola/infras/otel"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	Nil                   = redis.Nil
)

// deleteIfEqual removes KEYS[1] only while it still holds ARGV[1].
var deleteIfEqual = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisCache stores JSON-encoded values with a TTL in seconds. Strings are stored as is.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	SaveIfAbsent(ctx context.Context, key string, value any, duration int) (saved bool, err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	DeleteIfEqual(ctx context.Context, key string, value any) (deleted bool, err error)
	Increment(ctx context.Context, key string, duration int) (count int64, err error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

func encode(value any) ([]byte, error) {
	if s, ok := value.(string); ok {
		return []byte(s), nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache value: %w", err)
	}

	return raw, nil
}

func ttl(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

func (cache *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode cache value")

		return err
	}

	if err = cache.client.Set(ctx, key, raw, ttl(duration)).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("key", key).Msg("cache saved")

	return nil
}

// SaveIfAbsent stores value only when key does not exist yet.
func (cache *redisCache) SaveIfAbsent(ctx context.Context, key string, value any, duration int) (saved bool, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".SaveIfAbsent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := encode(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode cache value")

		return false, err
	}

	saved, err = cache.client.SetNX(ctx, key, raw, ttl(duration)).Result()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return false, fmt.Errorf("failed to set cache value: %w", err)
	}

	return saved, nil
}

// Get decodes the value under key into value. A missing key wraps Nil.
func (cache *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if s, ok := value.(*string); ok {
		*s = string(raw)

		return nil
	}

	if err = json.Unmarshal(raw, value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (cache *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if err = cache.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to del cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// DeleteIfEqual removes key atomically, and only while it still holds value.
func (cache *redisCache) DeleteIfEqual(ctx context.Context, key string, value any) (deleted bool, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".DeleteIfEqual")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := encode(value)
	if err != nil {
		return false, err
	}

	removed, err := deleteIfEqual.Run(ctx, cache.client, []string{key}, raw).Int()
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to compare and delete cache")

		return false, fmt.Errorf("failed to delete cache value: %w", err)
	}

	return removed > 0, nil
}

// Increment bumps a counter. The TTL is set by the increment that creates the key, so the
// window is fixed from the first hit.
func (cache *redisCache) Increment(ctx context.Context, key string, duration int) (count int64, err error) {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	pipe := cache.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl(duration))

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to increment cache counter")

		return 0, fmt.Errorf("failed to increment cache value: %w", err)
	}

	return incr.Val(), nil
}
