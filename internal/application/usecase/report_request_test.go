package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/domain/tracker"
)

func TestReportRequestUseCase_Execute(t *testing.T) {
	ctx := testContext()
	sched := newManualScheduler()
	agg := usecase.NewScanAggregator(sched, time.Second)
	uc := usecase.NewReportRequestUseCase(usecase.NewEventClassifier(tracker.NewCatalog("tracker.com")), agg)

	out := uc.Execute(ctx, usecase.ReportRequestInput{
		TabID:   5,
		URL:     "https://ads.tracker.com/pixel.gif",
		PageURL: "https://shop.example.com/cart",
	})
	assert.True(t, out.Recorded)
	assert.True(t, out.Event.IsTracker)
	assert.True(t, out.Event.IsThirdParty)

	uc.Execute(ctx, usecase.ReportRequestInput{TabID: 5, URL: "https://cdn.other.net/lib.js", PageHost: "shop.example.com"})
	uc.Execute(ctx, usecase.ReportRequestInput{TabID: 5, URL: "https://img.example.com/a.png", PageHost: "shop.example.com"})

	state := agg.Session(5)
	assert.Equal(t, []string{"tracker.com"}, state.Trackers)
	assert.Equal(t, []string{"tracker.com", "other.net"}, state.ThirdParties)
	assert.Equal(t, 1, sched.Pending())
}

func TestReportRequestUseCase_Execute_BadURLIsDropped(t *testing.T) {
	ctx := testContext()
	sched := newManualScheduler()
	agg := usecase.NewScanAggregator(sched, time.Second)
	uc := usecase.NewReportRequestUseCase(usecase.NewEventClassifier(tracker.NewCatalog()), agg)

	out := uc.Execute(ctx, usecase.ReportRequestInput{TabID: 1, URL: "javascript:void(0)"})

	assert.False(t, out.Recorded)
	assert.Empty(t, agg.Tabs())
	assert.Equal(t, 0, sched.Pending())
}

func TestReportRequestUseCase_Execute_UnparseablePageIsUnknown(t *testing.T) {
	ctx := testContext()
	agg := usecase.NewScanAggregator(newManualScheduler(), time.Second)
	uc := usecase.NewReportRequestUseCase(usecase.NewEventClassifier(tracker.NewCatalog()), agg)

	out := uc.Execute(ctx, usecase.ReportRequestInput{TabID: 1, URL: "https://a.com/", PageURL: "about:blank"})

	assert.True(t, out.Recorded)
	assert.False(t, out.Event.IsThirdParty)
}
