package cache

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"region-directory/internal/metrics"
	"region-directory/pkg/model"
)

var moscow = model.RegionDTO{ID: "78", Name: "город Москва", ShortName: "МСК"}

// exerciseCache checks the put/get/evict contract every backend must honour.
func exerciseCache(t *testing.T, c RegionCache) {
	t.Helper()
	ctx := context.Background()

	_, ok := c.Get(ctx, moscow.ID)
	assert.False(t, ok, "expected miss on empty cache")

	c.Put(ctx, moscow)
	got, ok := c.Get(ctx, moscow.ID)
	require.True(t, ok, "expected hit after put")
	assert.Equal(t, moscow, got)

	updated := moscow
	updated.Name = "Москва"
	c.Put(ctx, updated)
	got, ok = c.Get(ctx, moscow.ID)
	require.True(t, ok)
	assert.Equal(t, updated, got)

	c.Evict(ctx, moscow.ID)
	_, ok = c.Get(ctx, moscow.ID)
	assert.False(t, ok, "expected miss after evict")

	// evicting an absent key is harmless
	c.Evict(ctx, "99")
}

func TestMemory(t *testing.T) {
	c := NewMemory()
	exerciseCache(t, c)
	assert.Zero(t, c.Len())
}

func TestMemoryConcurrentAccess(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Put(ctx, moscow)
			c.Get(ctx, moscow.ID)
			c.Evict(ctx, "10")
		}()
	}
	wg.Wait()

	got, ok := c.Get(ctx, moscow.ID)
	require.True(t, ok)
	assert.Equal(t, moscow, got)
}

func TestNop(t *testing.T) {
	c := Nop{}
	c.Put(context.Background(), moscow)
	_, ok := c.Get(context.Background(), moscow.ID)
	assert.False(t, ok)
}

func TestRistrettoProviderCache(t *testing.T) {
	p, err := NewRistrettoProvider(RistrettoConfig{NumCounters: 1000, MaxCost: 1 << 20, BufferItems: 64})
	require.NoError(t, err)
	c := NewProviderCache(p, 0, zap.NewNop())
	defer c.Close()

	exerciseCache(t, c)
}

func TestRistrettoProviderRejectsInvalidConfig(t *testing.T) {
	_, err := NewRistrettoProvider(RistrettoConfig{})
	assert.Error(t, err)
}

func TestBigcacheProviderCache(t *testing.T) {
	p, err := NewBigcacheProvider(time.Minute)
	require.NoError(t, err)
	c := NewProviderCache(p, time.Minute, zap.NewNop())
	defer c.Close()

	exerciseCache(t, c)
}

func TestBigcacheProviderWithoutTTL(t *testing.T) {
	p, err := NewBigcacheProvider(0)
	require.NoError(t, err)
	c := NewProviderCache(p, 0, zap.NewNop())
	defer c.Close()

	exerciseCache(t, c)
}

func TestRedisProviderCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	p, err := DialRedis(context.Background(), addr, os.Getenv("REDIS_PASSWORD"), 0)
	require.NoError(t, err)
	c := NewProviderCache(p, time.Minute, zap.NewNop())
	defer c.Close()

	exerciseCache(t, c)
}

// stubProvider is a map-backed Provider that can be told to fail.
type stubProvider struct {
	data    map[string][]byte
	failGet bool
	failSet bool
}

func newStubProvider() *stubProvider {
	return &stubProvider{data: make(map[string][]byte)}
}

func (p *stubProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	if p.failGet {
		return nil, false, errors.New("connection refused")
	}
	b, ok := p.data[key]
	return b, ok, nil
}

func (p *stubProvider) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if p.failSet {
		return errors.New("connection refused")
	}
	p.data[key] = value
	return nil
}

func (p *stubProvider) Del(_ context.Context, key string) error {
	delete(p.data, key)
	return nil
}

func (p *stubProvider) Close() error { return nil }

func TestProviderCacheFailuresBehaveAsMisses(t *testing.T) {
	ctx := context.Background()

	t.Run("read errors", func(t *testing.T) {
		p := newStubProvider()
		c := NewProviderCache(p, 0, zap.NewNop())
		c.Put(ctx, moscow)
		p.failGet = true

		_, ok := c.Get(ctx, moscow.ID)
		assert.False(t, ok)
	})

	t.Run("write errors", func(t *testing.T) {
		p := newStubProvider()
		p.failSet = true
		c := NewProviderCache(p, 0, zap.NewNop())
		c.Put(ctx, moscow)

		assert.Empty(t, p.data)
	})

	t.Run("corrupt entries are dropped", func(t *testing.T) {
		p := newStubProvider()
		p.data[keyPrefix+moscow.ID] = []byte{0xc1}
		c := NewProviderCache(p, 0, zap.NewNop())

		_, ok := c.Get(ctx, moscow.ID)
		assert.False(t, ok)
		assert.NotContains(t, p.data, keyPrefix+moscow.ID)
	})

	t.Run("entries are namespaced", func(t *testing.T) {
		p := newStubProvider()
		c := NewProviderCache(p, 0, zap.NewNop())
		c.Put(ctx, moscow)

		assert.Contains(t, p.data, "region:78")
	})
}

func TestMsgpackCodecRoundTrip(t *testing.T) {
	codec := Msgpack[model.RegionDTO]{}

	raw, err := codec.Encode(moscow)
	require.NoError(t, err)

	decoded, err := codec.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, moscow, decoded)
}

func TestInstrumentedCountsHitsAndMisses(t *testing.T) {
	m := metrics.New()
	c := NewInstrumented(NewMemory(), m)
	ctx := context.Background()

	c.Get(ctx, moscow.ID)
	c.Put(ctx, moscow)
	c.Get(ctx, moscow.ID)
	c.Get(ctx, moscow.ID)
	c.Evict(ctx, moscow.ID)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheRequests.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheRequests.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheWrites.WithLabelValues("put")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheWrites.WithLabelValues("evict")))
}

func TestNewSelectsBackend(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	c, cleanup, err := New(ctx, Config{Backend: BackendMemory}, logger)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, c)
	assert.NoError(t, cleanup())

	c, cleanup, err = New(ctx, Config{Backend: BackendNone}, logger)
	require.NoError(t, err)
	assert.IsType(t, Nop{}, c)
	assert.NoError(t, cleanup())

	c, cleanup, err = New(ctx, Config{Backend: BackendRistretto}, logger)
	require.NoError(t, err)
	assert.IsType(t, &ProviderCache{}, c)
	assert.NoError(t, cleanup())

	_, _, err = New(ctx, Config{Backend: "memcached"}, logger)
	assert.Error(t, err)
}
