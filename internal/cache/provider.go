package cache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"region-directory/pkg/model"
)

// keyPrefix namespaces region entries in shared stores such as Redis
const keyPrefix = "region:"

// Provider is a byte store. Implementations must be safe for concurrent use
// and return exactly the bytes that were Set.
type Provider interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Close() error
}

// ProviderCache stores encoded regions in a Provider
type ProviderCache struct {
	provider Provider
	codec    Codec[model.RegionDTO]
	ttl      time.Duration
	logger   *zap.Logger
}

// NewProviderCache wraps provider; ttl of zero means entries do not expire
func NewProviderCache(provider Provider, ttl time.Duration, logger *zap.Logger) *ProviderCache {
	return &ProviderCache{
		provider: provider,
		codec:    Msgpack[model.RegionDTO]{},
		ttl:      ttl,
		logger:   logger,
	}
}

// Get decodes the cached region for id. Corrupt entries are dropped.
func (c *ProviderCache) Get(ctx context.Context, id string) (model.RegionDTO, bool) {
	key := keyPrefix + id

	raw, ok, err := c.provider.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return model.RegionDTO{}, false
	}
	if !ok {
		return model.RegionDTO{}, false
	}

	dto, err := c.codec.Decode(raw)
	if err != nil {
		c.logger.Warn("dropping undecodable cache entry", zap.String("key", key), zap.Error(err))
		c.Evict(ctx, id)
		return model.RegionDTO{}, false
	}
	return dto, true
}

// Put encodes dto and stores it under its id
func (c *ProviderCache) Put(ctx context.Context, dto model.RegionDTO) {
	key := keyPrefix + dto.ID

	raw, err := c.codec.Encode(dto)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.provider.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Evict removes the entry for id
func (c *ProviderCache) Evict(ctx context.Context, id string) {
	key := keyPrefix + id
	if err := c.provider.Del(ctx, key); err != nil {
		c.logger.Warn("cache evict failed", zap.String("key", key), zap.Error(err))
	}
}

// Close releases the provider
func (c *ProviderCache) Close() error {
	return c.provider.Close()
}
