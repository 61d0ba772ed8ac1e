// Package cache keeps resolved regions by business id so single-id lookups
// can skip the store. Caches are best effort: backend failures are logged and
// behave like misses, they never fail a request.
package cache

import (
	"context"

	"region-directory/pkg/model"
)

// RegionCache maps region ids to transfer objects
type RegionCache interface {
	Get(ctx context.Context, id string) (model.RegionDTO, bool)
	Put(ctx context.Context, dto model.RegionDTO)
	Evict(ctx context.Context, id string)
}

// Nop caches nothing
type Nop struct{}

func (Nop) Get(context.Context, string) (model.RegionDTO, bool) { return model.RegionDTO{}, false }
func (Nop) Put(context.Context, model.RegionDTO)                {}
func (Nop) Evict(context.Context, string)                       {}
