package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/domain/tracker"
	"github.com/bnema/tinyguard/internal/logging"
)

// ErrNoSources is returned when a conversion has nothing to fetch.
var ErrNoSources = errors.New("no filter list sources given")

// ConvertFilterListUseCase builds a tracker list document from filter lists.
type ConvertFilterListUseCase struct {
	fetcher port.FilterListFetcher
	writer  port.TrackerListWriter
}

// NewConvertFilterListUseCase creates a new ConvertFilterListUseCase.
func NewConvertFilterListUseCase(fetcher port.FilterListFetcher, writer port.TrackerListWriter) *ConvertFilterListUseCase {
	return &ConvertFilterListUseCase{
		fetcher: fetcher,
		writer:  writer,
	}
}

// ConvertFilterListInput contains the conversion parameters.
type ConvertFilterListInput struct {
	Sources    []port.FilterListSource
	OutputPath string
}

// ConvertFilterListOutput reports per-source and merged counts.
type ConvertFilterListOutput struct {
	PerSource map[string]int
	Domains   []string
}

// Execute fetches every source, extracts domains, merges them and writes a
// sorted tracker list document.
func (uc *ConvertFilterListUseCase) Execute(ctx context.Context, input ConvertFilterListInput) (*ConvertFilterListOutput, error) {
	log := logging.Component(ctx, "filter-converter")

	if len(input.Sources) == 0 {
		return nil, ErrNoSources
	}

	fetched, err := uc.fetcher.FetchAll(ctx, input.Sources)
	if err != nil {
		return nil, fmt.Errorf("fetch filter lists: %w", err)
	}

	perSource := make(map[string]int, len(fetched))
	lists := make([][]string, 0, len(fetched))
	for _, f := range fetched {
		domains, err := tracker.ExtractDomains(string(f.Body))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.Source.Name, err)
		}
		perSource[f.Source.Name] = len(domains)
		lists = append(lists, domains)
		log.Debug().Str("source", f.Source.Name).Int("domains", len(domains)).Msg("filter list parsed")
	}

	merged := tracker.MergeDomains(lists...)

	if err := uc.writer.WriteFile(ctx, input.OutputPath, merged); err != nil {
		return nil, fmt.Errorf("write tracker list: %w", err)
	}

	log.Info().Int("domains", len(merged)).Str("path", input.OutputPath).Msg("tracker list extracted")

	return &ConvertFilterListOutput{PerSource: perSource, Domains: merged}, nil
}
