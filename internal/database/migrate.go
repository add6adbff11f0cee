package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/allisson/taxledger/migrations"
)

// NewMigrate creates a migrate instance that applies the embedded migrations of
// driver to the database identified by connectionString. The caller must Close it.
func NewMigrate(driver, connectionString string) (*migrate.Migrate, error) {
	fsys, err := migrations.FS(driver)
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create iofs source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, MigrateURL(driver, connectionString))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration. No pending migrations is not an error.
func MigrateUp(driver, connectionString string) error {
	m, err := NewMigrate(driver, connectionString)
	if err != nil {
		return err
	}

	upErr := m.Up()
	sourceErr, databaseErr := m.Close()

	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", upErr)
	}
	if sourceErr != nil || databaseErr != nil {
		return fmt.Errorf("failed to close migrate: %w", errors.Join(sourceErr, databaseErr))
	}
	return nil
}

// MigrateURL converts an application connection string into the URL form
// golang-migrate expects. PostgreSQL URLs are already in that form; MySQL DSNs
// and SQLite file paths get their scheme prepended.
func MigrateURL(driver, connectionString string) string {
	switch driver {
	case DriverMySQL:
		if strings.HasPrefix(connectionString, "mysql://") {
			return connectionString
		}
		return "mysql://" + connectionString
	case DriverSQLite:
		if strings.HasPrefix(connectionString, "sqlite://") {
			return connectionString
		}
		return "sqlite://" + strings.TrimPrefix(connectionString, "file:")
	default:
		return connectionString
	}
}
