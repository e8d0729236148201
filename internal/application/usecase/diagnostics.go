package usecase

import (
	"context"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/repository"
	"github.com/bnema/tinyguard/internal/domain/ruleset"
	"github.com/bnema/tinyguard/internal/domain/tracker"
	"github.com/bnema/tinyguard/internal/logging"
)

// GetDiagnosticsUseCase reports catalog and rule table health.
type GetDiagnosticsUseCase struct {
	catalog  *tracker.Catalog
	rules    port.RuleTableSource
	blocking repository.BlockingStateRepository
}

// NewGetDiagnosticsUseCase creates a new GetDiagnosticsUseCase.
func NewGetDiagnosticsUseCase(
	catalog *tracker.Catalog,
	rules port.RuleTableSource,
	blocking repository.BlockingStateRepository,
) *GetDiagnosticsUseCase {
	return &GetDiagnosticsUseCase{
		catalog:  catalog,
		rules:    rules,
		blocking: blocking,
	}
}

// Execute degrades missing pieces to zero values instead of failing.
func (uc *GetDiagnosticsUseCase) Execute(ctx context.Context) entity.Diagnostics {
	log := logging.Component(ctx, "diagnostics")

	diag := entity.Diagnostics{
		TotalTrackers: uc.catalog.Size(),
		RuleType:      entity.RuleTypeStatic,
	}

	if uc.rules != nil {
		count, err := uc.rules.RuleCount(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("rule table unavailable")
		} else {
			diag.BlockingRules = count
		}
	}

	if uc.blocking != nil {
		enabled, err := uc.blocking.Get(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("blocking flag unreadable")
		} else {
			diag.BlockingEnabled = enabled
		}
	}

	diag.RulesetActive = diag.BlockingEnabled && diag.BlockingRules > 0
	diag.Coverage = ruleset.FormatCoverage(diag.BlockingRules, diag.TotalTrackers)

	return diag
}
