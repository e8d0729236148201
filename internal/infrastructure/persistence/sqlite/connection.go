package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/bnema/tinyguard/internal/logging"
)

const dbDirPerm = 0o750

// pragmas tune the store for one long-running writer (serve recording settled
// scans) and short-lived readers in other processes (reports, blocking).
var pragmas = []string{
	// Readers in another process never block the history writer.
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	// A toggle from the CLI can land while serve is mid-insert.
	"PRAGMA busy_timeout = 5000",
	// One settings row and a pruned history table fit in a couple of MB.
	"PRAGMA cache_size = -2000",
	"PRAGMA temp_store = MEMORY",
}

// NewConnection opens the settings and scan history database, creating its
// directory and applying migrations.
func NewConnection(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection serialises this process's writes; WAL covers the rest.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := setup(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	log := logging.Component(ctx, "database")
	log.Debug().Str("path", dbPath).Msg("database ready")
	return db, nil
}

func setup(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("set %q: %w", pragma, err)
		}
	}

	if err := RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}

// Close closes db if it was opened.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
