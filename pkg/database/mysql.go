package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
)

// NewMySQLDB opens a MySQL handle. DATE and DATETIME columns are always parsed
// into time.Time and statements run in UTC regardless of the DSN.
func NewMySQLDB(ctx context.Context, dsn string, ping bool) (*sql.DB, error) {
	cfg, err := newMySQLConfig(dsn)
	if err != nil {
		return nil, err
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	if ping {
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to ping mysql: %w", err)
		}
	}

	slog.Info("Connected to MySQL database", slog.String("addr", cfg.Addr), slog.String("db", cfg.DBName))
	return db, nil
}

// newMySQLConfig parses dsn and applies the settings the repositories rely on.
// ClientFoundRows makes UPDATE report matched rows, so an update that leaves a
// row unchanged is not mistaken for a missing row.
func newMySQLConfig(dsn string) (*mysql.Config, error) {
	if dsn == "" {
		return nil, fmt.Errorf("mysql DSN cannot be empty")
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mysql DSN: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.MultiStatements = true // migrations run several statements per file
	cfg.ClientFoundRows = true
	return cfg, nil
}
