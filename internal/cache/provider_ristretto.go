package cache

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/ristretto"
)

// RistrettoConfig sizes the ristretto admission filter and cost budget
type RistrettoConfig struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
}

// RistrettoProvider keeps entries in a bounded in-process ristretto cache.
// Cost is the encoded entry size in bytes.
type RistrettoProvider struct {
	c *ristretto.Cache
}

// NewRistrettoProvider creates a ristretto-backed provider
func NewRistrettoProvider(cfg RistrettoConfig) (*RistrettoProvider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}

	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}
	return &RistrettoProvider{c: c}, nil
}

func (p *RistrettoProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set waits for the write buffer to drain so a following Get sees the value.
// Ristretto may still reject the entry under cost pressure.
func (p *RistrettoProvider) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	p.c.SetWithTTL(key, value, int64(len(value)), ttl)
	p.c.Wait()
	return nil
}

func (p *RistrettoProvider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *RistrettoProvider) Close() error {
	p.c.Close()
	return nil
}
