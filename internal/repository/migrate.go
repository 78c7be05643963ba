package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hseconsult/backend/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

// OpenMigrationDB opens a database/sql handle for goose over the pgx driver.
func OpenMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("migrate: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: ping: %w", err)
	}
	return db, nil
}

// NewMigrator returns a goose provider over the embedded migrations.
func NewMigrator(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("migrate: new provider: %w", err)
	}
	return provider, nil
}

// MigrateUp applies all pending migrations and returns how many ran.
func MigrateUp(ctx context.Context, dsn string) (int, error) {
	db, err := OpenMigrationDB(ctx, dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	provider, err := NewMigrator(db)
	if err != nil {
		return 0, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrate: up: %w", err)
	}
	return len(results), nil
}
