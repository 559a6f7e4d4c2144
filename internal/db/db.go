package db

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"github.com/osa911/clipdesk/internal/config"
	dbschema "github.com/osa911/clipdesk/internal/db/schema"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database wraps the ent SQL driver shared by every repository.
type Database struct {
	Driver *entsql.Driver
}

// Open connects to the database selected by the configuration.
// Postgres goes through lib/pq; sqlite through the pure-Go modernc driver.
func Open(cfg *config.Config) (*Database, error) {
	return OpenDriver(cfg.DatabaseDriver, cfg.DataSource())
}

// OpenDriver connects using an explicit driver name and data source.
func OpenDriver(driver, source string) (*Database, error) {
	switch driver {
	case config.DriverPostgres:
		drv, err := entsql.Open(dialect.Postgres, source)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &Database{Driver: drv}, nil
	case config.DriverSQLite:
		// modernc registers itself as "sqlite" while ent's dialect name is "sqlite3"
		sqlDB, err := stdsql.Open("sqlite", source)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &Database{Driver: entsql.OpenDB(dialect.SQLite, sqlDB)}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// NewDatabase wraps an existing driver.
func NewDatabase(drv *entsql.Driver) *Database {
	return &Database{Driver: drv}
}

// Dialect returns the SQL dialect name of the underlying driver.
func (d *Database) Dialect() string {
	return d.Driver.Dialect()
}

// Migrate creates or updates every table of the store.
func (d *Database) Migrate(ctx context.Context) error {
	m, err := schema.NewMigrate(d.Driver)
	if err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}
	if err := m.Create(ctx, dbschema.Tables...); err != nil {
		return fmt.Errorf("failed creating schema resources: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable.
func (d *Database) Ping(ctx context.Context) error {
	return d.Driver.DB().PingContext(ctx)
}

// Close releases the connection pool.
func (d *Database) Close() error {
	return d.Driver.Close()
}
