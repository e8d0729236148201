package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/tinyguard/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// newMigrator builds a goose provider over the embedded schema. Providers
// carry their own state, so tests can migrate several databases in parallel.
func newMigrator(db *sql.DB) (*goose.Provider, error) {
	schema, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	return goose.NewProvider(goose.DialectSQLite3, db, schema)
}

// RunMigrations creates or upgrades the settings and scan_reports tables.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.Component(ctx, "database")

	migrator, err := newMigrator(db)
	if err != nil {
		return err
	}

	results, err := migrator.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Str("file", r.Source.Path).
			Dur("took", r.Duration).
			Msg("schema migration applied")
	}
	if len(results) == 0 {
		log.Debug().Msg("schema up to date")
	}

	return nil
}

// SchemaVersion returns the version of the last applied migration.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	migrator, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	return migrator.GetDBVersion(ctx)
}
