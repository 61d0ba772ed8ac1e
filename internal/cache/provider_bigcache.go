package cache

import (
	"context"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"
)

// BigcacheProvider keeps entries in allegro/bigcache. Bigcache has no per-entry
// TTL; the life window is fixed when the provider is created.
type BigcacheProvider struct {
	c *bigcache.BigCache
}

// defaultBigcacheLifeWindow applies when no TTL is configured. Bigcache
// always expires entries: even without a clean window, a shard drops its
// oldest entry on the next write once that entry is older than the window.
const defaultBigcacheLifeWindow = 24 * time.Hour

// NewBigcacheProvider creates a bigcache-backed provider. A zero lifeWindow
// means entries live for defaultBigcacheLifeWindow and are never swept in
// the background.
func NewBigcacheProvider(lifeWindow time.Duration) (*BigcacheProvider, error) {
	cleanWindow := time.Duration(0)
	if lifeWindow > 0 {
		cleanWindow = lifeWindow / 2
	} else {
		lifeWindow = defaultBigcacheLifeWindow
	}

	conf := bigcache.DefaultConfig(lifeWindow)
	conf.CleanWindow = cleanWindow
	conf.Verbose = false

	c, err := bigcache.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &BigcacheProvider{c: c}, nil
}

func (p *BigcacheProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := p.c.Get(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (p *BigcacheProvider) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	return p.c.Set(key, value)
}

func (p *BigcacheProvider) Del(_ context.Context, key string) error {
	err := p.c.Delete(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (p *BigcacheProvider) Close() error {
	return p.c.Close()
}
