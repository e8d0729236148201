package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/repository"
	"github.com/bnema/tinyguard/internal/logging"
)

type scanReportRepo struct {
	db *sql.DB
}

// NewScanReportRepository creates a SQLite-backed scan history.
func NewScanReportRepository(db *sql.DB) repository.ScanReportRepository {
	return &scanReportRepo{db: db}
}

func (r *scanReportRepo) Save(ctx context.Context, record *entity.ScanRecord) error {
	log := logging.FromContext(ctx)

	if record == nil {
		log.Error().Msg("cannot save nil scan record")
		return errors.New("cannot save nil scan record")
	}

	trackers, err := encodeList(record.Trackers)
	if err != nil {
		return err
	}
	thirdParties, err := encodeList(record.ThirdParties)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO scan_reports (tab_id, trackers, third_parties, score, grade, settled_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		int64(record.TabID), trackers, thirdParties, record.Score, string(record.Grade), record.SettledAt.UnixMilli(),
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = id

	log.Debug().Int64("id", id).Int64("tab_id", int64(record.TabID)).Msg("scan report saved")
	return nil
}

func (r *scanReportRepo) Recent(ctx context.Context, limit int) ([]*entity.ScanRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, tab_id, trackers, third_parties, score, grade, settled_at
		FROM scan_reports
		ORDER BY settled_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.ScanRecord
	for rows.Next() {
		var (
			rec          entity.ScanRecord
			tabID        int64
			trackers     string
			thirdParties string
			grade        string
			settledAt    int64
		)
		if err := rows.Scan(&rec.ID, &tabID, &trackers, &thirdParties, &rec.Score, &grade, &settledAt); err != nil {
			return nil, err
		}
		rec.TabID = entity.TabID(tabID)
		rec.Grade = entity.Grade(grade)
		rec.SettledAt = time.UnixMilli(settledAt).UTC()
		if rec.Trackers, err = decodeList(trackers); err != nil {
			return nil, err
		}
		if rec.ThirdParties, err = decodeList(thirdParties); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (r *scanReportRepo) DeleteOlderThan(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM scan_reports
		WHERE id NOT IN (
			SELECT id FROM scan_reports ORDER BY settled_at DESC, id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode domain list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	out := []string{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode domain list: %w", err)
	}
	return out, nil
}
