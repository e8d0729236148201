package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tinyguard/internal/application/port"
	portmocks "github.com/bnema/tinyguard/internal/application/port/mocks"
	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/domain/tracker"
)

func TestConvertFilterListUseCase_Execute(t *testing.T) {
	ctx := testContext()
	sources := []port.FilterListSource{
		{Name: "easyprivacy", Location: "https://example.invalid/easyprivacy.txt"},
		{Name: "hosts", Location: "hosts.txt"},
	}

	fetcher := portmocks.NewMockFilterListFetcher(t)
	fetcher.EXPECT().FetchAll(mock.Anything, sources).Return([]port.FetchedFilterList{
		{Source: sources[0], Body: []byte("! comment\n||b-tracker.com^\n||a-tracker.com^$third-party\n")},
		{Source: sources[1], Body: []byte("0.0.0.0 a-tracker.com\n0.0.0.0 c.example\n")},
	}, nil)

	writer := portmocks.NewMockTrackerListWriter(t)
	writer.EXPECT().WriteFile(mock.Anything, "trackers.json", []string{"a-tracker.com", "b-tracker.com", "c.example"}).Return(nil)

	out, err := usecase.NewConvertFilterListUseCase(fetcher, writer).Execute(ctx, usecase.ConvertFilterListInput{
		Sources:    sources,
		OutputPath: "trackers.json",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"easyprivacy": 2, "hosts": 2}, out.PerSource)
	assert.Len(t, out.Domains, 3)
}

func TestConvertFilterListUseCase_Execute_FetchError(t *testing.T) {
	ctx := testContext()
	fetchErr := errors.New("timeout")

	fetcher := portmocks.NewMockFilterListFetcher(t)
	fetcher.EXPECT().FetchAll(mock.Anything, mock.Anything).Return(nil, fetchErr)
	writer := portmocks.NewMockTrackerListWriter(t)

	_, err := usecase.NewConvertFilterListUseCase(fetcher, writer).Execute(ctx, usecase.ConvertFilterListInput{
		Sources:    []port.FilterListSource{{Name: "x", Location: "x"}},
		OutputPath: "trackers.json",
	})
	assert.ErrorIs(t, err, fetchErr)
}

func TestConvertFilterListUseCase_Execute_NoSources(t *testing.T) {
	_, err := usecase.NewConvertFilterListUseCase(nil, nil).Execute(testContext(), usecase.ConvertFilterListInput{})
	assert.ErrorIs(t, err, usecase.ErrNoSources)
}

func TestConvertFilterListUseCase_Execute_UnreadableListWritesNothing(t *testing.T) {
	ctx := testContext()
	sources := []port.FilterListSource{{Name: "broken", Location: "broken.txt"}}

	fetcher := portmocks.NewMockFilterListFetcher(t)
	fetcher.EXPECT().FetchAll(mock.Anything, sources).Return([]port.FetchedFilterList{
		{Source: sources[0], Body: []byte("||a.com^\n||" + strings.Repeat("x", 2<<20) + "^\n")},
	}, nil)
	writer := portmocks.NewMockTrackerListWriter(t)

	_, err := usecase.NewConvertFilterListUseCase(fetcher, writer).Execute(ctx, usecase.ConvertFilterListInput{
		Sources:    sources,
		OutputPath: "trackers.json",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, tracker.ErrMalformedFilterList)
	assert.Contains(t, err.Error(), "broken")
}
