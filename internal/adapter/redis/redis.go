package redis

import (
	"context"
	"errors"
	"time"

	"github.com/elysia-api/parking-service/internal/core/ports"

	redisClient "github.com/redis/go-redis/v9"
)

type RedisAdapter struct {
	client *redisClient.Client
}

func NewRedisAdapter(client *redisClient.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisAdapter) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redisClient.Nil) {
		return "", ports.ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *RedisAdapter) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
