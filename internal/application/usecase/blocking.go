package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tinyguard/internal/domain/repository"
	"github.com/bnema/tinyguard/internal/logging"
)

// SetBlockingUseCase persists the blocking toggle.
type SetBlockingUseCase struct {
	repo repository.BlockingStateRepository
}

// NewSetBlockingUseCase creates a new SetBlockingUseCase.
func NewSetBlockingUseCase(repo repository.BlockingStateRepository) *SetBlockingUseCase {
	return &SetBlockingUseCase{repo: repo}
}

// SetBlockingOutput mirrors what the toggle UI expects back.
type SetBlockingOutput struct {
	OK      bool `json:"ok"`
	Enabled bool `json:"enabled"`
}

// Execute stores enabled.
func (uc *SetBlockingUseCase) Execute(ctx context.Context, enabled bool) (SetBlockingOutput, error) {
	log := logging.FromContext(ctx)

	if err := uc.repo.Set(ctx, enabled); err != nil {
		return SetBlockingOutput{OK: false, Enabled: false}, fmt.Errorf("save blocking state: %w", err)
	}

	log.Info().Bool("enabled", enabled).Msg("blocking state saved")
	return SetBlockingOutput{OK: true, Enabled: enabled}, nil
}

// GetBlockingUseCase reads the blocking toggle.
type GetBlockingUseCase struct {
	repo repository.BlockingStateRepository
}

// NewGetBlockingUseCase creates a new GetBlockingUseCase.
func NewGetBlockingUseCase(repo repository.BlockingStateRepository) *GetBlockingUseCase {
	return &GetBlockingUseCase{repo: repo}
}

// Execute returns the stored flag, or false when it cannot be read.
func (uc *GetBlockingUseCase) Execute(ctx context.Context) bool {
	enabled, err := uc.repo.Get(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read blocking state")
		return false
	}
	return enabled
}
