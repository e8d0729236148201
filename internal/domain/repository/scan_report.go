package repository

import (
	"context"

	"github.com/bnema/tinyguard/internal/domain/entity"
)

// ScanReportRepository keeps a history of settled scans.
type ScanReportRepository interface {
	// Save stores a settled scan and fills in its ID.
	Save(ctx context.Context, record *entity.ScanRecord) error

	// Recent returns the latest records, newest first.
	Recent(ctx context.Context, limit int) ([]*entity.ScanRecord, error)

	// DeleteOlderThan removes everything but the newest keep records.
	DeleteOlderThan(ctx context.Context, keep int) (int64, error)
}
