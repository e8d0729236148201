package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tinyguard/internal/application/port"
	portmocks "github.com/bnema/tinyguard/internal/application/port/mocks"
	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/domain/ruleset"
	"github.com/bnema/tinyguard/internal/domain/tracker"
)

func TestCompileRulesUseCase_Execute(t *testing.T) {
	ctx := testContext()
	dest := port.RuleTableDestination{RulesPath: "out/rules.json", BlockedListPath: "out/blocked-trackers.txt"}

	loader := portmocks.NewMockTrackerListLoader(t)
	loader.EXPECT().LoadFile(mock.Anything, "trackers.json").
		Return([]string{"Doubleclick.net", "doubleclick.net", "example.com"}, nil)

	writer := portmocks.NewMockRuleTableWriter(t)
	writer.EXPECT().WriteTable(mock.Anything, mock.AnythingOfType("ruleset.Table"), dest).
		Run(func(_ context.Context, table ruleset.Table, _ port.RuleTableDestination) {
			assert.Equal(t, []string{"doubleclick.net", "example.com"}, table.Domains)
		}).
		Return(nil)

	out, err := usecase.NewCompileRulesUseCase(loader, writer).Execute(ctx, usecase.CompileRulesInput{
		TrackerListPath: "trackers.json",
		Destination:     dest,
		Options:         ruleset.Options{MaxRules: 10, Priority: []string{"doubleclick.net"}},
	})
	require.NoError(t, err)

	require.Len(t, out.Table.Rules, 2)
	assert.Equal(t, "*doubleclick.net*", out.Table.Rules[0].Condition.URLFilter)
	assert.Equal(t, 2, out.Table.Rules[1].ID)
}

func TestCompileRulesUseCase_Execute_MalformedListWritesNothing(t *testing.T) {
	ctx := testContext()

	loader := portmocks.NewMockTrackerListLoader(t)
	loader.EXPECT().LoadFile(mock.Anything, "bad.json").Return(nil, tracker.ErrNonStringEntry)
	writer := portmocks.NewMockRuleTableWriter(t)

	_, err := usecase.NewCompileRulesUseCase(loader, writer).Execute(ctx, usecase.CompileRulesInput{
		TrackerListPath: "bad.json",
		Destination:     port.RuleTableDestination{RulesPath: "rules.json"},
		Options:         ruleset.DefaultOptions(),
	})
	assert.ErrorIs(t, err, tracker.ErrNonStringEntry)
	writer.AssertNotCalled(t, "WriteTable", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompileRulesUseCase_Execute_InvalidCapWritesNothing(t *testing.T) {
	ctx := testContext()

	loader := portmocks.NewMockTrackerListLoader(t)
	loader.EXPECT().LoadFile(mock.Anything, "trackers.json").Return([]string{"a.com"}, nil)
	writer := portmocks.NewMockRuleTableWriter(t)

	_, err := usecase.NewCompileRulesUseCase(loader, writer).Execute(ctx, usecase.CompileRulesInput{
		TrackerListPath: "trackers.json",
		Destination:     port.RuleTableDestination{RulesPath: "rules.json"},
		Options:         ruleset.Options{MaxRules: 0},
	})
	assert.ErrorIs(t, err, ruleset.ErrInvalidRuleCap)
}

func TestCompileRulesUseCase_Execute_WriteError(t *testing.T) {
	ctx := testContext()
	writeErr := errors.New("read-only fs")

	loader := portmocks.NewMockTrackerListLoader(t)
	loader.EXPECT().LoadFile(mock.Anything, mock.Anything).Return([]string{"a.com"}, nil)
	writer := portmocks.NewMockRuleTableWriter(t)
	writer.EXPECT().WriteTable(mock.Anything, mock.Anything, mock.Anything).Return(writeErr)

	_, err := usecase.NewCompileRulesUseCase(loader, writer).Execute(ctx, usecase.CompileRulesInput{
		TrackerListPath: "trackers.json",
		Destination:     port.RuleTableDestination{RulesPath: "rules.json"},
		Options:         ruleset.DefaultOptions(),
	})
	assert.ErrorIs(t, err, writeErr)
}

func TestCompileRulesUseCase_Execute_RequiresOutput(t *testing.T) {
	_, err := usecase.NewCompileRulesUseCase(nil, nil).Execute(testContext(), usecase.CompileRulesInput{})
	assert.ErrorIs(t, err, usecase.ErrNoRulesOutput)
}
