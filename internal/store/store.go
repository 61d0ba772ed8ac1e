// Package store persists regions. The SQL implementation runs on PostgreSQL
// (lib/pq) or SQLite (go-sqlite3) through sqlx; the memory implementation
// backs development runs and tests.
package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"region-directory/pkg/model"
)

// Backend is a region store with a connection lifecycle
type Backend interface {
	Save(ctx context.Context, region *model.Region) error
	GetAll(ctx context.Context) ([]model.Region, error)
	GetByID(ctx context.Context, id string) (*model.Region, error)
	GetByName(ctx context.Context, name string) ([]model.Region, error)
	GetByNameBeginning(ctx context.Context, prefix string) ([]model.Region, error)
	GetByShortName(ctx context.Context, shortName string) ([]model.Region, error)
	UpdateByID(ctx context.Context, id string, region *model.Region) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

var (
	_ Backend = (*SQLStore)(nil)
	_ Backend = (*MemoryStore)(nil)
)

// Config selects and configures a backend
type Config struct {
	Driver       string
	DSN          string
	AutoMigrate  bool
	MaxOpenConns int
}

// Open connects to the configured backend, applying the schema when AutoMigrate is set
func Open(ctx context.Context, cfg Config) (Backend, error) {
	if cfg.Driver == DriverMemory {
		return NewMemoryStore(), nil
	}

	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return NewSQLStore(db), nil
}

// Connect opens a sqlx pool for a SQL driver
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sqlx.ConnectContext(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Each SQLite connection to an in-memory DSN would see its own database
	if cfg.Driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return db, nil
}

// Close closes the underlying connection pool
func (s *SQLStore) Close() error {
	return s.db.Close()
}
