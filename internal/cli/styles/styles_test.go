package styles

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/tinyguard/internal/domain/build"
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/ruleset"
)

func TestGradeColor(t *testing.T) {
	theme := NewTheme()

	assert.Equal(t, theme.Success, theme.GradeColor(entity.GradeA))
	assert.Equal(t, theme.Warning, theme.GradeColor(entity.GradeC))
	assert.Equal(t, theme.Error, theme.GradeColor(entity.GradeF))
	assert.Equal(t, lipgloss.Color("#f97316"), theme.GradeColor(entity.GradeD))
}

func TestRenderScanReport(t *testing.T) {
	theme := NewTheme()
	state := entity.NewSessionState()
	state.Trackers = []string{"doubleclick.net"}
	state.ThirdParties = []string{"doubleclick.net", "fonts.net"}

	out := theme.RenderScanReport(entity.ScanReport{
		TabID:        12,
		SessionState: state,
		PrivacyScore: entity.ComputeScore(state),
		Settled:      true,
	})

	assert.Contains(t, out, "Tab 12")
	assert.Contains(t, out, "doubleclick.net")
	assert.Contains(t, out, "fonts.net")
	assert.Contains(t, out, "Risky permissions (0)")
	assert.Contains(t, out, "settled")
}

func TestRenderDiagnostics(t *testing.T) {
	out := NewTheme().RenderDiagnostics(entity.Diagnostics{
		TotalTrackers: 200, BlockingRules: 100, Coverage: "50.0%", RuleType: entity.RuleTypeStatic,
	})
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "100 (static)")
	assert.Contains(t, out, "inactive")
}

func TestRenderCompileStats(t *testing.T) {
	out := NewTheme().RenderCompileStats(ruleset.Stats{Input: 10, Unique: 10, Emitted: 3}, "rules.json")
	assert.Contains(t, out, "30.0% (good)")
	assert.Contains(t, out, "rules.json")
}

func TestRenderScanRecords(t *testing.T) {
	theme := NewTheme()
	assert.Contains(t, theme.RenderScanRecords(nil), "No scans")

	out := theme.RenderScanRecords([]*entity.ScanRecord{{
		TabID: 3, Trackers: []string{"a.com", "b.com"}, Score: 70, Grade: entity.GradeB, SettledAt: time.Now(),
	}})
	assert.Contains(t, out, "tab 3")
	assert.Contains(t, out, "2 trackers")
}

func TestAboutRenderer(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(
		build.Info{Version: "1.2.3", Commit: "abcdef0123", GoVersion: "go1.25"},
		AboutPaths{Database: "/data/tinyguard.sqlite", Catalog: "/etc/trackers.json"},
	)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "abcdef0")
	assert.NotContains(t, out, "abcdef0123")
	assert.Contains(t, out, "built-in defaults")
	assert.Contains(t, out, "/data/tinyguard.sqlite")
	assert.Contains(t, out, "/etc/trackers.json")
	assert.Contains(t, out, build.RepoURL())
}
