package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"region-directory/pkg/model"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
	DriverMemory   = "memory"
)

const selectRegions = `SELECT "key", id, name, short_name FROM regions`

// likeEscaper escapes LIKE wildcards so prefixes match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SQLStore persists regions in a relational table through sqlx
type SQLStore struct {
	db *sqlx.DB
}

// NewSQLStore creates a store on an open connection pool
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{
		db: db,
	}
}

// Save inserts a region and records the generated surrogate key on it
func (s *SQLStore) Save(ctx context.Context, region *model.Region) error {
	query := s.db.Rebind(`
        INSERT INTO regions (id, name, short_name)
        VALUES (?, ?, ?)
        RETURNING "key"
    `)

	err := s.db.QueryRowxContext(ctx, query, region.ID, region.Name, region.ShortName).Scan(&region.Key)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert region: %w", err)
	}
	return nil
}

// GetAll returns every region ordered by name
func (s *SQLStore) GetAll(ctx context.Context) ([]model.Region, error) {
	return s.selectRegions(ctx, selectRegions+` ORDER BY name`)
}

// GetByID returns the region with the given business id
func (s *SQLStore) GetByID(ctx context.Context, id string) (*model.Region, error) {
	var region model.Region
	err := s.db.GetContext(ctx, &region, s.db.Rebind(selectRegions+` WHERE id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return &region, nil
}

// GetByName returns regions whose name matches exactly
func (s *SQLStore) GetByName(ctx context.Context, name string) ([]model.Region, error) {
	return s.selectRegions(ctx, selectRegions+` WHERE name = ? ORDER BY name`, name)
}

// GetByNameBeginning returns regions whose name starts with prefix
func (s *SQLStore) GetByNameBeginning(ctx context.Context, prefix string) ([]model.Region, error) {
	return s.selectRegions(ctx, selectRegions+` WHERE name LIKE ? ESCAPE '\' ORDER BY name`,
		likeEscaper.Replace(prefix)+"%")
}

// GetByShortName returns regions with the given short name
func (s *SQLStore) GetByShortName(ctx context.Context, shortName string) ([]model.Region, error) {
	return s.selectRegions(ctx, selectRegions+` WHERE short_name = ? ORDER BY name`, shortName)
}

// UpdateByID replaces the fields of the region identified by id, including the id itself.
// The surrogate key is preserved.
func (s *SQLStore) UpdateByID(ctx context.Context, id string, region *model.Region) (int64, error) {
	query := s.db.Rebind(`
        UPDATE regions
        SET id = ?, name = ?, short_name = ?
        WHERE id = ?
    `)

	result, err := s.db.ExecContext(ctx, query, region.ID, region.Name, region.ShortName, id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateKey
		}
		return 0, fmt.Errorf("failed to update region: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read updated rows: %w", err)
	}
	return rows, nil
}

// DeleteByID removes the region identified by id
func (s *SQLStore) DeleteByID(ctx context.Context, id string) (int64, error) {
	result, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM regions WHERE id = ?`), id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete region: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted rows: %w", err)
	}
	return rows, nil
}

// Ping checks the database connection
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) selectRegions(ctx context.Context, query string, args ...any) ([]model.Region, error) {
	var regions []model.Region
	if err := s.db.SelectContext(ctx, &regions, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to select regions: %w", err)
	}
	return regions, nil
}
