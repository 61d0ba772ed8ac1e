package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisProvider stores entries in Redis, which lets several service instances
// share one cache.
type RedisProvider struct {
	client redis.UniversalClient
}

// NewRedisProvider wraps an existing client
func NewRedisProvider(client redis.UniversalClient) *RedisProvider {
	return &RedisProvider{client: client}
}

// DialRedis connects to a single Redis node and checks it answers
func DialRedis(ctx context.Context, addr, password string, db int) (*RedisProvider, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return NewRedisProvider(client), nil
}

func (p *RedisProvider) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := p.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (p *RedisProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return p.client.Set(ctx, key, value, ttl).Err()
}

func (p *RedisProvider) Del(ctx context.Context, key string) error {
	return p.client.Del(ctx, key).Err()
}

func (p *RedisProvider) Close() error {
	return p.client.Close()
}
