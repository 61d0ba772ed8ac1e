package cache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Supported cache backends
const (
	BackendMemory    = "memory"
	BackendRistretto = "ristretto"
	BackendBigcache  = "bigcache"
	BackendRedis     = "redis"
	BackendNone      = "none"
)

// Config selects and sizes the cache backend
type Config struct {
	Backend       string
	TTL           time.Duration
	MaxCost       int64
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New builds the configured cache. The returned cleanup func releases
// backend resources and is never nil.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (RegionCache, func() error, error) {
	noop := func() error { return nil }

	var (
		provider Provider
		err      error
	)

	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemory(), noop, nil
	case BackendNone:
		return Nop{}, noop, nil
	case BackendRistretto:
		maxCost := cfg.MaxCost
		if maxCost <= 0 {
			maxCost = 64 << 20
		}
		provider, err = NewRistrettoProvider(RistrettoConfig{
			NumCounters: 1e5,
			MaxCost:     maxCost,
			BufferItems: 64,
		})
	case BackendBigcache:
		provider, err = NewBigcacheProvider(cfg.TTL)
	case BackendRedis:
		provider, err = DialRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, noop, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, noop, fmt.Errorf("failed to create %s cache: %w", cfg.Backend, err)
	}

	logger.Info("using provider cache", zap.String("backend", cfg.Backend), zap.Duration("ttl", cfg.TTL))
	c := NewProviderCache(provider, cfg.TTL, logger.Named("cache"))
	return c, c.Close, nil
}
