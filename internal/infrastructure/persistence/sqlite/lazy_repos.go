package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/repository"
)

// LazyBlockingStateRepository opens the database on first access.
type LazyBlockingStateRepository struct {
	provider port.DatabaseProvider
	repo     repository.BlockingStateRepository
	once     sync.Once
	initErr  error
}

// NewLazyBlockingStateRepository creates a lazy-loading blocking state repository.
func NewLazyBlockingStateRepository(provider port.DatabaseProvider) repository.BlockingStateRepository {
	return &LazyBlockingStateRepository{provider: provider}
}

func (r *LazyBlockingStateRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewBlockingStateRepository(db)
	})
	return r.initErr
}

func (r *LazyBlockingStateRepository) Get(ctx context.Context) (bool, error) {
	if err := r.init(ctx); err != nil {
		return false, err
	}
	return r.repo.Get(ctx)
}

func (r *LazyBlockingStateRepository) Set(ctx context.Context, enabled bool) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Set(ctx, enabled)
}

// LazyScanReportRepository opens the database on first access.
type LazyScanReportRepository struct {
	provider port.DatabaseProvider
	repo     repository.ScanReportRepository
	once     sync.Once
	initErr  error
}

// NewLazyScanReportRepository creates a lazy-loading scan report repository.
func NewLazyScanReportRepository(provider port.DatabaseProvider) repository.ScanReportRepository {
	return &LazyScanReportRepository{provider: provider}
}

func (r *LazyScanReportRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewScanReportRepository(db)
	})
	return r.initErr
}

func (r *LazyScanReportRepository) Save(ctx context.Context, record *entity.ScanRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, record)
}

func (r *LazyScanReportRepository) Recent(ctx context.Context, limit int) ([]*entity.ScanRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Recent(ctx, limit)
}

func (r *LazyScanReportRepository) DeleteOlderThan(ctx context.Context, keep int) (int64, error) {
	if err := r.init(ctx); err != nil {
		return 0, err
	}
	return r.repo.DeleteOlderThan(ctx, keep)
}
