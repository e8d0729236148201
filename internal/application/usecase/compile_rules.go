package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/domain/ruleset"
	"github.com/bnema/tinyguard/internal/logging"
)

// ErrNoRulesOutput is returned when no rules destination was given.
var ErrNoRulesOutput = errors.New("rules output path is required")

// CompileRulesUseCase turns a tracker list document into a static rule table on disk.
type CompileRulesUseCase struct {
	loader port.TrackerListLoader
	writer port.RuleTableWriter
}

// NewCompileRulesUseCase creates a new CompileRulesUseCase.
func NewCompileRulesUseCase(loader port.TrackerListLoader, writer port.RuleTableWriter) *CompileRulesUseCase {
	return &CompileRulesUseCase{
		loader: loader,
		writer: writer,
	}
}

// CompileRulesInput contains the parameters of a compile run.
type CompileRulesInput struct {
	TrackerListPath string
	Destination     port.RuleTableDestination
	Options         ruleset.Options
}

// CompileRulesOutput reports what was written.
type CompileRulesOutput struct {
	Table ruleset.Table
}

// Execute loads, compiles and writes. Nothing is written unless the list
// loads and compiles cleanly.
func (uc *CompileRulesUseCase) Execute(ctx context.Context, input CompileRulesInput) (*CompileRulesOutput, error) {
	log := logging.Component(ctx, "rule-compiler")

	if input.Destination.RulesPath == "" {
		return nil, ErrNoRulesOutput
	}

	domains, err := uc.loader.LoadFile(ctx, input.TrackerListPath)
	if err != nil {
		return nil, fmt.Errorf("load tracker list: %w", err)
	}
	log.Info().Int("trackers", len(domains)).Str("path", input.TrackerListPath).Msg("tracker list loaded")

	table, err := ruleset.Compile(domains, input.Options)
	if err != nil {
		return nil, fmt.Errorf("compile rules: %w", err)
	}

	if err := uc.writer.WriteTable(ctx, table, input.Destination); err != nil {
		return nil, fmt.Errorf("write rule table: %w", err)
	}

	log.Info().
		Int("unique", table.Stats.Unique).
		Int("priority_included", table.Stats.PriorityIncluded).
		Int("rules", table.Stats.Emitted).
		Str("coverage", table.Stats.CoverageString()).
		Int("remaining", table.Stats.Remaining()).
		Msg("rule table written")

	return &CompileRulesOutput{Table: table}, nil
}
