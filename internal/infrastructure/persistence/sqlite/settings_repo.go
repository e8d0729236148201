package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/bnema/tinyguard/internal/domain/repository"
	"github.com/bnema/tinyguard/internal/logging"
)

const keyBlockingEnabled = "blocking_enabled"

type blockingStateRepo struct {
	db *sql.DB
}

// NewBlockingStateRepository creates a SQLite-backed blocking flag store.
func NewBlockingStateRepository(db *sql.DB) repository.BlockingStateRepository {
	return &blockingStateRepo{db: db}
}

func (r *blockingStateRepo) Get(ctx context.Context) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, keyBlockingEnabled).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return strconv.ParseBool(raw)
}

func (r *blockingStateRepo) Set(ctx context.Context, enabled bool) error {
	log := logging.FromContext(ctx)
	log.Debug().Bool("enabled", enabled).Msg("setting blocking state")

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		keyBlockingEnabled, strconv.FormatBool(enabled),
	)
	return err
}
