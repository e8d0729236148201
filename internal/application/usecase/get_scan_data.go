package usecase

import (
	"context"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/repository"
	"github.com/bnema/tinyguard/internal/logging"
)

// GetScanDataUseCase assembles the scan report of a tab.
type GetScanDataUseCase struct {
	aggregator  *ScanAggregator
	permissions port.PermissionProvider
	blocking    repository.BlockingStateRepository
	risky       []string
}

// NewGetScanDataUseCase creates a new GetScanDataUseCase.
// A nil risky list uses entity.DefaultRiskyPermissions.
func NewGetScanDataUseCase(
	aggregator *ScanAggregator,
	permissions port.PermissionProvider,
	blocking repository.BlockingStateRepository,
	risky []string,
) *GetScanDataUseCase {
	if risky == nil {
		risky = entity.DefaultRiskyPermissions()
	}
	return &GetScanDataUseCase{
		aggregator:  aggregator,
		permissions: permissions,
		blocking:    blocking,
		risky:       risky,
	}
}

// Execute always returns a report of the tab's live session. If the host
// cannot list permissions the list is empty; if the blocking flag cannot be
// read blocking counts as off.
func (uc *GetScanDataUseCase) Execute(ctx context.Context, tabID entity.TabID) entity.ScanReport {
	report := uc.Report(ctx, tabID, uc.aggregator.Session(tabID))
	report.Settled = uc.aggregator.Settled(tabID)
	return report
}

// Report scores state as given, without reading the aggregator. Permissions
// and Blocked are filled in from the host and the blocking flag.
func (uc *GetScanDataUseCase) Report(ctx context.Context, tabID entity.TabID, state entity.SessionState) entity.ScanReport {
	log := logging.ForTab(ctx, "scan-data", int64(tabID))

	var granted []string
	if uc.permissions != nil {
		perms, err := uc.permissions.GrantedPermissions(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("permissions unavailable, scoring without them")
		} else {
			granted = perms
		}
	}
	state.Permissions = entity.FilterRiskyPermissions(granted, uc.risky)

	enabled := false
	if uc.blocking != nil {
		v, err := uc.blocking.Get(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("blocking flag unreadable, assuming disabled")
		} else {
			enabled = v
		}
	}
	state.Blocked = entity.BlockedDomains(state.Trackers, enabled)

	return entity.ScanReport{
		TabID:           tabID,
		SessionState:    state,
		PrivacyScore:    entity.ComputeScore(state),
		BlockingEnabled: enabled,
	}
}
