package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies every pending "up" migration found under
// <migrationsPath>/<driverName> to db. driverName is "postgres" or "mysql".
func RunMigrations(db *sql.DB, driverName, migrationsPath string, logger *slog.Logger) error {
	var (
		instance migratedb.Driver
		err      error
	)
	switch driverName {
	case "postgres":
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	case "mysql":
		instance, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	default:
		return fmt.Errorf("no migrations for driver %q", driverName)
	}
	if err != nil {
		return fmt.Errorf("could not create %s driver instance for migrations: %w", driverName, err)
	}

	sourceURL := "file://" + filepath.ToSlash(filepath.Join(migrationsPath, driverName))
	m, err := migrate.NewWithDatabaseInstance(sourceURL, driverName, instance)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
