package cache

import (
	"context"

	"region-directory/internal/metrics"
	"region-directory/pkg/model"
)

// Instrumented counts hits, misses and writes of the wrapped cache
type Instrumented struct {
	next    RegionCache
	metrics *metrics.Metrics
}

// NewInstrumented wraps next with Prometheus counters
func NewInstrumented(next RegionCache, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, metrics: m}
}

func (c *Instrumented) Get(ctx context.Context, id string) (model.RegionDTO, bool) {
	dto, ok := c.next.Get(ctx, id)
	if ok {
		c.metrics.CacheRequests.WithLabelValues("hit").Inc()
	} else {
		c.metrics.CacheRequests.WithLabelValues("miss").Inc()
	}
	return dto, ok
}

func (c *Instrumented) Put(ctx context.Context, dto model.RegionDTO) {
	c.next.Put(ctx, dto)
	c.metrics.CacheWrites.WithLabelValues("put").Inc()
}

func (c *Instrumented) Evict(ctx context.Context, id string) {
	c.next.Evict(ctx, id)
	c.metrics.CacheWrites.WithLabelValues("evict").Inc()
}
