package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// RedisStore sayaçları Redis üzerinde tutar; birden fazla uygulama
// örneği aynı pencereyi paylaşır.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore verilen istemciyle bir RedisStore kurar.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Incr Store arayüzünü uygular. INCR + ExpireNX aynı pipeline'da koşar;
// pencere TTL'i yalnızca ilk istekte başlatılır.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	fullKey := redisKeyPrefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, window)
	ttl := pipe.TTL(ctx, fullKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	remaining := ttl.Val()
	if remaining < 0 {
		remaining = window
	}
	return incr.Val(), time.Now().Add(remaining), nil
}
