package usecase

import (
	"context"

	"github.com/bnema/tinyguard/internal/domain/entity"
	domainurl "github.com/bnema/tinyguard/internal/domain/url"
	"github.com/bnema/tinyguard/internal/logging"
)

// ReportRequestUseCase classifies an observed request and records it for its tab.
type ReportRequestUseCase struct {
	classifier *EventClassifier
	aggregator *ScanAggregator
}

// NewReportRequestUseCase creates a new ReportRequestUseCase.
func NewReportRequestUseCase(classifier *EventClassifier, aggregator *ScanAggregator) *ReportRequestUseCase {
	return &ReportRequestUseCase{
		classifier: classifier,
		aggregator: aggregator,
	}
}

// ReportRequestInput describes one observed resource load.
type ReportRequestInput struct {
	TabID entity.TabID
	// URL is the requested resource.
	URL string
	// PageHost is the hostname of the page that made the request. When empty
	// it is derived from PageURL.
	PageHost string
	PageURL  string
}

// ReportRequestOutput holds the classification, if any.
type ReportRequestOutput struct {
	Event    entity.ClassifiedEvent
	Recorded bool
}

// Execute never fails. URLs without a hostname are dropped silently so a
// single bad event cannot disturb the session.
func (uc *ReportRequestUseCase) Execute(ctx context.Context, input ReportRequestInput) ReportRequestOutput {
	log := logging.FromContext(ctx)

	pageHost := input.PageHost
	if pageHost == "" && input.PageURL != "" {
		pageHost, _ = domainurl.Hostname(input.PageURL)
	}

	event, ok := uc.classifier.Classify(input.URL, pageHost)
	if !ok {
		log.Trace().Str("url", input.URL).Msg("ignoring request without hostname")
		return ReportRequestOutput{}
	}

	uc.aggregator.RecordEvent(ctx, input.TabID, event)

	return ReportRequestOutput{Event: event, Recorded: true}
}
