package cache

import (
	"context"

	"github.com/puzpuzpuz/xsync/v3"

	"region-directory/pkg/model"
)

// Memory is an unbounded concurrent map without expiry. Entries live until
// evicted or the process exits.
type Memory struct {
	entries *xsync.MapOf[string, model.RegionDTO]
}

// NewMemory creates an empty in-process cache
func NewMemory() *Memory {
	return &Memory{
		entries: xsync.NewMapOf[string, model.RegionDTO](),
	}
}

// Get returns the cached region for id
func (m *Memory) Get(_ context.Context, id string) (model.RegionDTO, bool) {
	return m.entries.Load(id)
}

// Put stores dto under its id
func (m *Memory) Put(_ context.Context, dto model.RegionDTO) {
	m.entries.Store(dto.ID, dto)
}

// Evict drops the entry for id
func (m *Memory) Evict(_ context.Context, id string) {
	m.entries.Delete(id)
}

// Len reports the number of cached regions
func (m *Memory) Len() int {
	return m.entries.Size()
}
