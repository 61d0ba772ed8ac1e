package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemas = map[string][]string{
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS regions (
            "key"      SERIAL PRIMARY KEY,
            id         VARCHAR(3)   NOT NULL UNIQUE,
            name       TEXT         NOT NULL,
            short_name VARCHAR(3)   NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS regions_name_idx ON regions (name)`,
		`CREATE INDEX IF NOT EXISTS regions_short_name_idx ON regions (short_name)`,
	},
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS regions (
            "key"      INTEGER PRIMARY KEY AUTOINCREMENT,
            id         TEXT NOT NULL UNIQUE,
            name       TEXT NOT NULL,
            short_name TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS regions_name_idx ON regions (name)`,
		`CREATE INDEX IF NOT EXISTS regions_short_name_idx ON regions (short_name)`,
	},
}

// Migrate creates the regions table and its indexes if they do not exist yet
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
