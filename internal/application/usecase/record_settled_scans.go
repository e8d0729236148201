package usecase

import (
	"context"

	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/repository"
	"github.com/bnema/tinyguard/internal/logging"
)

// RecordSettledScansUseCase stores every settled scan in the history.
type RecordSettledScansUseCase struct {
	aggregator *ScanAggregator
	scanData   *GetScanDataUseCase
	repo       repository.ScanReportRepository
	keep       int
}

// NewRecordSettledScansUseCase creates a new RecordSettledScansUseCase.
// keep bounds the history size; zero keeps everything.
func NewRecordSettledScansUseCase(
	aggregator *ScanAggregator,
	scanData *GetScanDataUseCase,
	repo repository.ScanReportRepository,
	keep int,
) *RecordSettledScansUseCase {
	return &RecordSettledScansUseCase{
		aggregator: aggregator,
		scanData:   scanData,
		repo:       repo,
		keep:       keep,
	}
}

// Run consumes settle events until ctx is done. It blocks.
func (uc *RecordSettledScansUseCase) Run(ctx context.Context) {
	events, unsubscribe := uc.aggregator.Subscribe(64)
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			uc.record(ctx, ev)
		}
	}
}

func (uc *RecordSettledScansUseCase) record(ctx context.Context, ev entity.ScanSettled) {
	log := logging.ForTab(ctx, "scan-history", int64(ev.TabID))

	// The tab may have moved on or closed since it settled; score what settled.
	report := uc.scanData.Report(ctx, ev.TabID, entity.SessionState{
		Trackers:     ev.Trackers,
		ThirdParties: ev.ThirdParties,
	})

	rec := &entity.ScanRecord{
		TabID:        ev.TabID,
		Trackers:     ev.Trackers,
		ThirdParties: ev.ThirdParties,
		Score:        report.Score,
		Grade:        report.Grade,
		SettledAt:    ev.At,
	}

	if err := uc.repo.Save(ctx, rec); err != nil {
		log.Error().Err(err).Msg("failed to save settled scan")
		return
	}

	if uc.keep > 0 {
		if n, err := uc.repo.DeleteOlderThan(ctx, uc.keep); err != nil {
			log.Warn().Err(err).Msg("failed to prune scan history")
		} else if n > 0 {
			log.Debug().Int64("pruned", n).Msg("scan history pruned")
		}
	}
}
