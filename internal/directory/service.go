// Package directory implements the region directory operations: it calls the
// store, keeps the id cache consistent with confirmed writes and translates
// store outcomes into RecordNotFoundError and DuplicateUniqueValuesError.
package directory

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"region-directory/internal/cache"
	"region-directory/internal/store"
	"region-directory/pkg/model"
)

// Service handles region directory operations
type Service struct {
	store  RegionStore
	cache  cache.RegionCache
	fence  *cacheFence
	logger *zap.Logger
}

// NewService creates a new directory service
func NewService(store RegionStore, cache cache.RegionCache, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		fence:  newCacheFence(),
		logger: logger,
	}
}

// Add stores a new region and caches it once the store accepts it
func (s *Service) Add(ctx context.Context, dto model.RegionDTO) error {
	err := s.store.Save(ctx, model.NewRegion(dto))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return duplicateID(dto.ID)
		}
		return fmt.Errorf("failed to add region %s: %w", dto.ID, err)
	}

	s.fence.write(dto.ID, func() { s.cache.Put(ctx, dto) })
	s.logger.Debug("region added", zap.String("id", dto.ID))
	return nil
}

// GetAll lists every region ordered by name. An empty directory is reported
// as RecordNotFoundError rather than an empty list.
func (s *Service) GetAll(ctx context.Context) ([]model.RegionDTO, error) {
	epoch := s.fence.begin()
	regions, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return s.toDTOs(ctx, epoch, regions, &RecordNotFoundError{})
}

// GetByID returns the region with the given id, serving it from the cache when possible
func (s *Service) GetByID(ctx context.Context, id string) (model.RegionDTO, error) {
	if dto, ok := s.cache.Get(ctx, id); ok {
		return dto, nil
	}

	epoch := s.fence.begin()
	region, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.RegionDTO{}, notFoundBy("id", id)
		}
		return model.RegionDTO{}, fmt.Errorf("failed to get region %s: %w", id, err)
	}

	dto := region.ToDTO()
	s.fence.fill(dto.ID, epoch, func() { s.cache.Put(ctx, dto) })
	return dto, nil
}

// GetByName returns regions with exactly the given name
func (s *Service) GetByName(ctx context.Context, name string) ([]model.RegionDTO, error) {
	epoch := s.fence.begin()
	regions, err := s.store.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find regions by name: %w", err)
	}
	return s.toDTOs(ctx, epoch, regions, notFoundBy("name", name))
}

// GetByNameBeginning returns regions whose name starts with prefix
func (s *Service) GetByNameBeginning(ctx context.Context, prefix string) ([]model.RegionDTO, error) {
	epoch := s.fence.begin()
	regions, err := s.store.GetByNameBeginning(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to find regions by name beginning: %w", err)
	}
	return s.toDTOs(ctx, epoch, regions, notFoundBy("name beginning", prefix))
}

// GetByShortName returns regions with the given short name
func (s *Service) GetByShortName(ctx context.Context, shortName string) ([]model.RegionDTO, error) {
	epoch := s.fence.begin()
	regions, err := s.store.GetByShortName(ctx, shortName)
	if err != nil {
		return nil, fmt.Errorf("failed to find regions by short name: %w", err)
	}
	return s.toDTOs(ctx, epoch, regions, notFoundBy("short name", shortName))
}

// UpdateByID replaces the region stored under id with dto. dto.ID may differ
// from id, in which case the region moves to the new id and the old cache
// entry is dropped.
func (s *Service) UpdateByID(ctx context.Context, id string, dto model.RegionDTO) error {
	updated, err := s.store.UpdateByID(ctx, id, model.NewRegion(dto))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return duplicateID(dto.ID)
		}
		return fmt.Errorf("failed to update region %s: %w", id, err)
	}

	if updated == 0 {
		return notFoundBy("id", id)
	}

	if id != dto.ID {
		s.fence.write(id, func() { s.cache.Evict(ctx, id) })
	}
	s.fence.write(dto.ID, func() { s.cache.Put(ctx, dto) })
	s.logger.Debug("region updated", zap.String("id", id), zap.String("new_id", dto.ID))
	return nil
}

// DeleteByID removes the region with the given id
func (s *Service) DeleteByID(ctx context.Context, id string) error {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete region %s: %w", id, err)
	}

	if deleted == 0 {
		return notFoundBy("id", id)
	}

	s.fence.write(id, func() { s.cache.Evict(ctx, id) })
	s.logger.Debug("region deleted", zap.String("id", id))
	return nil
}

// toDTOs converts store rows read at epoch, caching each one that saw no
// write since. No rows yields notFound.
func (s *Service) toDTOs(ctx context.Context, epoch uint64, regions []model.Region, notFound *RecordNotFoundError) ([]model.RegionDTO, error) {
	if len(regions) == 0 {
		return nil, notFound
	}

	dtos := make([]model.RegionDTO, 0, len(regions))
	for _, region := range regions {
		dto := region.ToDTO()
		s.fence.fill(dto.ID, epoch, func() { s.cache.Put(ctx, dto) })
		dtos = append(dtos, dto)
	}
	return dtos, nil
}
