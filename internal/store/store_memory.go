package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"region-directory/pkg/model"
)

// MemoryStore keeps regions in process memory. It enforces the same id
// uniqueness and ordering rules as the SQL store.
type MemoryStore struct {
	mu      sync.RWMutex
	regions map[string]model.Region
	nextKey int64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		regions: make(map[string]model.Region),
	}
}

// Save inserts a region and assigns its surrogate key
func (s *MemoryStore) Save(_ context.Context, region *model.Region) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.regions[region.ID]; exists {
		return ErrDuplicateKey
	}

	s.nextKey++
	region.Key = s.nextKey
	s.regions[region.ID] = *region
	return nil
}

// GetAll returns every region ordered by name
func (s *MemoryStore) GetAll(_ context.Context) ([]model.Region, error) {
	return s.filter(func(model.Region) bool { return true }), nil
}

// GetByID returns the region with the given business id
func (s *MemoryStore) GetByID(_ context.Context, id string) (*model.Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	region, ok := s.regions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &region, nil
}

// GetByName returns regions whose name matches exactly
func (s *MemoryStore) GetByName(_ context.Context, name string) ([]model.Region, error) {
	return s.filter(func(r model.Region) bool { return r.Name == name }), nil
}

// GetByNameBeginning returns regions whose name starts with prefix
func (s *MemoryStore) GetByNameBeginning(_ context.Context, prefix string) ([]model.Region, error) {
	return s.filter(func(r model.Region) bool { return strings.HasPrefix(r.Name, prefix) }), nil
}

// GetByShortName returns regions with the given short name
func (s *MemoryStore) GetByShortName(_ context.Context, shortName string) ([]model.Region, error) {
	return s.filter(func(r model.Region) bool { return r.ShortName == shortName }), nil
}

// UpdateByID replaces the region stored under id, keeping its surrogate key
func (s *MemoryStore) UpdateByID(_ context.Context, id string, region *model.Region) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.regions[id]
	if !ok {
		return 0, nil
	}
	if region.ID != id {
		if _, taken := s.regions[region.ID]; taken {
			return 0, ErrDuplicateKey
		}
		delete(s.regions, id)
	}

	region.Key = current.Key
	s.regions[region.ID] = *region
	return 1, nil
}

// DeleteByID removes the region identified by id
func (s *MemoryStore) DeleteByID(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.regions[id]; !ok {
		return 0, nil
	}
	delete(s.regions, id)
	return 1, nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) filter(keep func(model.Region) bool) []model.Region {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var regions []model.Region
	for _, r := range s.regions {
		if keep(r) {
			regions = append(regions, r)
		}
	}

	slices.SortFunc(regions, func(a, b model.Region) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return regions
}
