package directory

import (
	"context"

	"region-directory/pkg/model"
)

//go:generate mockgen -source=ports.go -destination=mocks/store_mock.go -package=mocks

// RegionStore persists regions keyed by business id. Implementations return
// store.ErrNotFound from GetByID for absent ids and store.ErrDuplicateKey when
// a write would break id uniqueness.
type RegionStore interface {
	Save(ctx context.Context, region *model.Region) error
	GetAll(ctx context.Context) ([]model.Region, error)
	GetByID(ctx context.Context, id string) (*model.Region, error)
	GetByName(ctx context.Context, name string) ([]model.Region, error)
	GetByNameBeginning(ctx context.Context, prefix string) ([]model.Region, error)
	GetByShortName(ctx context.Context, shortName string) ([]model.Region, error)
	UpdateByID(ctx context.Context, id string, region *model.Region) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}
