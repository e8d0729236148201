package ruleset

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tinyguard/internal/domain/entity"
)

func TestCompile_DedupAndPriority(t *testing.T) {
	table, err := Compile(
		[]string{"Doubleclick.net", "doubleclick.net", "example.com"},
		Options{MaxRules: 10, Priority: []string{"doubleclick.net"}},
	)
	require.NoError(t, err)

	require.Len(t, table.Rules, 2)
	assert.Equal(t, 1, table.Rules[0].ID)
	assert.Equal(t, "*doubleclick.net*", table.Rules[0].Condition.URLFilter)
	assert.Equal(t, 2, table.Rules[1].ID)
	assert.Equal(t, "*example.com*", table.Rules[1].Condition.URLFilter)

	for _, r := range table.Rules {
		assert.Equal(t, entity.RulePriority, r.Priority)
		assert.Equal(t, entity.RuleActionBlock, r.Action.Type)
		assert.Equal(t, entity.AllResourceTypes(), r.Condition.ResourceTypes)
	}

	assert.Equal(t, Stats{Input: 3, Unique: 2, PriorityIncluded: 1, Emitted: 2}, table.Stats)
}

func TestCompile_PriorityGroupUsesPriorityListOrder(t *testing.T) {
	table, err := Compile(
		[]string{"z.com", "hotjar.com", "a.com", "doubleclick.net"},
		Options{MaxRules: 100, Priority: []string{"doubleclick.net", "missing.com", "hotjar.com"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"doubleclick.net", "hotjar.com", "z.com", "a.com"}, table.Domains)
}

func TestCompile_CapKeepsPriorityFirst(t *testing.T) {
	input := make([]string, 0, 100)
	for i := 0; i < 98; i++ {
		input = append(input, fmt.Sprintf("t%02d.com", i))
	}
	input = append(input, "hotjar.com", "criteo.com")

	table, err := Compile(input, Options{MaxRules: 5, Priority: DefaultPriorityDomains()})
	require.NoError(t, err)

	assert.Equal(t, []string{"criteo.com", "hotjar.com", "t00.com", "t01.com", "t02.com"}, table.Domains)
	assert.Equal(t, 2, table.Stats.PriorityIncluded)
	assert.Equal(t, 95, table.Stats.Remaining())
	assert.Equal(t, "5.0%", table.Stats.CoverageString())
}

func TestCompile_IDsContiguous(t *testing.T) {
	input := []string{"c.com", "b.com", "a.com", "B.com", "d.com"}
	table, err := Compile(input, Options{MaxRules: 3})
	require.NoError(t, err)

	for i, r := range table.Rules {
		assert.Equal(t, i+1, r.ID)
	}
	assert.Equal(t, []string{"c.com", "b.com", "a.com"}, table.Domains)
}

func TestCompile_Deterministic(t *testing.T) {
	input := []string{"x.com", "Facebook.com", "y.net", "x.com", "doubleclick.net", "z.org"}
	opts := DefaultOptions()

	first, err := Compile(input, opts)
	require.NoError(t, err)
	second, err := Compile(input, opts)
	require.NoError(t, err)

	a, err := json.MarshalIndent(first.Rules, "", "  ")
	require.NoError(t, err)
	b, err := json.MarshalIndent(second.Rules, "", "  ")
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}

func TestCompile_BlankEntriesSkipped(t *testing.T) {
	table, err := Compile([]string{"", "  ", "a.com"}, Options{MaxRules: 10})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.com"}, table.Domains)
	assert.Equal(t, 2, table.Stats.Blank)
}

func TestCompile_SurroundingWhitespaceMerges(t *testing.T) {
	table, err := Compile([]string{" a.com", "a.com", "A.COM\n"}, Options{MaxRules: 10})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.com"}, table.Domains)
	require.Len(t, table.Rules, 1)
	assert.Equal(t, "*a.com*", table.Rules[0].Condition.URLFilter)
}

func TestCompile_InvalidCap(t *testing.T) {
	for _, maxRules := range []int{0, -1} {
		_, err := Compile([]string{"a.com"}, Options{MaxRules: maxRules})
		assert.ErrorIs(t, err, ErrInvalidRuleCap)
	}
}

func TestCompile_EmptyInput(t *testing.T) {
	table, err := Compile(nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, table.Rules)
	assert.Equal(t, "0.0%", table.Stats.CoverageString())
}

func TestRuleRecord_JSONShape(t *testing.T) {
	table, err := Compile([]string{"a.com"}, Options{MaxRules: 1})
	require.NoError(t, err)

	raw, err := json.Marshal(table.Rules[0])
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1,
		"priority": 1,
		"action": {"type": "block"},
		"condition": {
			"urlFilter": "*a.com*",
			"resourceTypes": ["main_frame","sub_frame","stylesheet","script","image","font","object",
				"xmlhttprequest","ping","media","websocket","webtransport","other"]
		}
	}`, string(raw))
}

func TestStats_Rating(t *testing.T) {
	assert.Equal(t, "excellent", Stats{Input: 100, Emitted: 65}.Rating())
	assert.Equal(t, "great", Stats{Input: 100, Emitted: 50}.Rating())
	assert.Equal(t, "good", Stats{Input: 100, Emitted: 30}.Rating())
	assert.Equal(t, "low", Stats{Input: 100, Emitted: 29}.Rating())
	assert.Equal(t, "low", Stats{}.Rating())
}

func TestDefaultPriorityDomains(t *testing.T) {
	domains := DefaultPriorityDomains()
	assert.Len(t, domains, 51)
	assert.Equal(t, "doubleclick.net", domains[0])
}
