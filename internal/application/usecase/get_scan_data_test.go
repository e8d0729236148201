package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	portmocks "github.com/bnema/tinyguard/internal/application/port/mocks"
	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/domain/entity"
	repomocks "github.com/bnema/tinyguard/internal/domain/repository/mocks"
)

func TestGetScanDataUseCase_Execute(t *testing.T) {
	ctx := testContext()
	agg := usecase.NewScanAggregator(newManualScheduler(), time.Second)
	agg.RecordEvent(ctx, 3, trackerEvent("a.com"))
	agg.RecordEvent(ctx, 3, trackerEvent("b.com"))
	agg.RecordEvent(ctx, 3, entity.ClassifiedEvent{RootDomain: "cdn.net", IsThirdParty: true})

	perms := portmocks.NewMockPermissionProvider(t)
	perms.EXPECT().GrantedPermissions(mock.Anything).Return([]string{"storage", "tabs"}, nil)

	blocking := repomocks.NewMockBlockingStateRepository(t)
	blocking.EXPECT().Get(mock.Anything).Return(true, nil)

	uc := usecase.NewGetScanDataUseCase(agg, perms, blocking, nil)
	report := uc.Execute(ctx, 3)

	assert.Equal(t, entity.TabID(3), report.TabID)
	assert.Equal(t, []string{"a.com", "b.com"}, report.Trackers)
	assert.Equal(t, []string{"a.com", "b.com", "cdn.net"}, report.ThirdParties)
	assert.Equal(t, []string{"tabs"}, report.Permissions)
	assert.Equal(t, []string{"a.com", "b.com"}, report.Blocked)
	// 100 - 30 - 9 - 10
	assert.Equal(t, 51, report.Score)
	assert.Equal(t, entity.GradeD, report.Grade)
	assert.True(t, report.BlockingEnabled)
	assert.False(t, report.Settled)
}

func TestGetScanDataUseCase_ScenarioGradeC(t *testing.T) {
	ctx := testContext()
	agg := usecase.NewScanAggregator(newManualScheduler(), time.Second)
	agg.RecordEvent(ctx, 1, entity.ClassifiedEvent{RootDomain: "t1.com", IsTracker: true})
	agg.RecordEvent(ctx, 1, entity.ClassifiedEvent{RootDomain: "t2.com", IsTracker: true})
	agg.RecordEvent(ctx, 1, entity.ClassifiedEvent{RootDomain: "p.com", IsThirdParty: true})

	perms := portmocks.NewMockPermissionProvider(t)
	perms.EXPECT().GrantedPermissions(mock.Anything).Return(nil, nil)
	blocking := repomocks.NewMockBlockingStateRepository(t)
	blocking.EXPECT().Get(mock.Anything).Return(false, nil)

	report := usecase.NewGetScanDataUseCase(agg, perms, blocking, nil).Execute(ctx, 1)

	assert.Equal(t, 67, report.Score)
	assert.Equal(t, entity.GradeC, report.Grade)
	assert.Empty(t, report.Blocked)
}

func TestGetScanDataUseCase_DegradesOnEnvironmentFailure(t *testing.T) {
	ctx := testContext()
	agg := usecase.NewScanAggregator(newManualScheduler(), time.Second)
	agg.RecordEvent(ctx, 1, trackerEvent("a.com"))

	perms := portmocks.NewMockPermissionProvider(t)
	perms.EXPECT().GrantedPermissions(mock.Anything).Return(nil, errors.New("host gone"))
	blocking := repomocks.NewMockBlockingStateRepository(t)
	blocking.EXPECT().Get(mock.Anything).Return(true, errors.New("storage corrupt"))

	report := usecase.NewGetScanDataUseCase(agg, perms, blocking, nil).Execute(ctx, 1)

	assert.Empty(t, report.Permissions)
	assert.Empty(t, report.Blocked)
	assert.False(t, report.BlockingEnabled)
	// Best-effort score from what is known: 100 - 15 - 3.
	assert.Equal(t, 82, report.Score)
	assert.Equal(t, entity.GradeB, report.Grade)
}

func TestGetScanDataUseCase_UnknownTab(t *testing.T) {
	ctx := testContext()
	agg := usecase.NewScanAggregator(newManualScheduler(), time.Second)

	report := usecase.NewGetScanDataUseCase(agg, nil, nil, nil).Execute(ctx, 42)

	assert.Empty(t, report.Trackers)
	assert.Equal(t, 100, report.Score)
	assert.Equal(t, entity.GradeA, report.Grade)
}

func TestGetScanDataUseCase_CustomRiskyList(t *testing.T) {
	ctx := testContext()
	agg := usecase.NewScanAggregator(newManualScheduler(), time.Second)

	perms := portmocks.NewMockPermissionProvider(t)
	perms.EXPECT().GrantedPermissions(mock.Anything).Return([]string{"tabs", "geolocation"}, nil)

	report := usecase.NewGetScanDataUseCase(agg, perms, nil, []string{"geolocation"}).Execute(ctx, 1)

	assert.Equal(t, []string{"geolocation"}, report.Permissions)
	assert.Equal(t, 90, report.Score)
}
