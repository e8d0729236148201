package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/ruleset"
)

const emptyList = "none"

// RenderScanReport renders one tab's scan as a boxed summary.
func (t *Theme) RenderScanReport(r entity.ScanReport) string {
	var b strings.Builder

	header := fmt.Sprintf("%s Tab %d  %s  %s",
		IconShield, r.TabID, t.GradeBadge(r.Grade), t.Title.Render(fmt.Sprintf("%d/100", r.Score)))
	b.WriteString(t.BoxHeader.Render(header))
	b.WriteString("\n")

	b.WriteString(t.section("Trackers", r.Trackers, t.ErrorStyle))
	b.WriteString(t.section("Third parties", r.ThirdParties, t.Normal))
	b.WriteString(t.section("Risky permissions", r.Permissions, t.WarningStyle))

	state := t.Subtle.Render("blocking off")
	if r.BlockingEnabled {
		state = t.SuccessStyle.Render(fmt.Sprintf("%s blocking on, %d blocked", IconCheck, len(r.Blocked)))
	}
	settled := t.Subtle.Render("still loading")
	if r.Settled {
		settled = t.Subtle.Render("settled")
	}
	b.WriteString(state + "  " + settled)

	return t.Box.Render(b.String())
}

func (t *Theme) section(title string, items []string, style interface{ Render(...string) string }) string {
	var b strings.Builder
	b.WriteString(t.Subtitle.Render(fmt.Sprintf("%s (%d)", title, len(items))))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString("  " + t.Subtle.Render(emptyList) + "\n\n")
		return b.String()
	}
	for _, item := range items {
		b.WriteString("  " + style.Render(item) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// RenderDiagnostics renders the engine status.
func (t *Theme) RenderDiagnostics(d entity.Diagnostics) string {
	active := t.ErrorStyle.Render(IconX + " inactive")
	if d.RulesetActive {
		active = t.SuccessStyle.Render(IconCheck + " active")
	}

	rows := [][2]string{
		{"Trackers in catalog", fmt.Sprintf("%d", d.TotalTrackers)},
		{"Blocking rules", fmt.Sprintf("%d (%s)", d.BlockingRules, d.RuleType)},
		{"Coverage", d.Coverage},
		{"Blocking enabled", fmt.Sprintf("%t", d.BlockingEnabled)},
		{"Ruleset", active},
	}
	return t.keyValues(rows)
}

// RenderCompileStats summarizes a compile run.
func (t *Theme) RenderCompileStats(s ruleset.Stats, outputs ...string) string {
	rating := s.Rating()
	ratingStyle := t.SuccessStyle
	switch rating {
	case ruleset.RatingGood:
		ratingStyle = t.WarningStyle
	case ruleset.RatingLow:
		ratingStyle = t.ErrorStyle
	}

	rows := [][2]string{
		{"Input entries", fmt.Sprintf("%d", s.Input)},
		{"Unique domains", fmt.Sprintf("%d", s.Unique)},
		{"Priority included", fmt.Sprintf("%d", s.PriorityIncluded)},
		{"Rules emitted", fmt.Sprintf("%d", s.Emitted)},
		{"Coverage", ratingStyle.Render(fmt.Sprintf("%s (%s)", s.CoverageString(), rating))},
		{"Not blocked", fmt.Sprintf("%d", s.Remaining())},
	}
	out := t.keyValues(rows)
	for _, o := range outputs {
		out += "\n" + t.Subtle.Render(IconFile+" "+o)
	}
	return out
}

// RenderScanRecords renders stored scans newest first.
func (t *Theme) RenderScanRecords(records []*entity.ScanRecord) string {
	if len(records) == 0 {
		return t.Subtle.Render("No scans recorded yet.")
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("%s %s  %-8s %s  %s",
			t.GradeBadge(r.Grade),
			t.Title.Render(fmt.Sprintf("%3d", r.Score)),
			fmt.Sprintf("tab %d", r.TabID),
			t.BadgeMuted.Render(fmt.Sprintf("%d trackers", len(r.Trackers))),
			t.Subtle.Render(r.SettledAt.Local().Format(time.DateTime)),
		))
	}
	return strings.Join(lines, "\n")
}

func (t *Theme) keyValues(rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s  %s", t.Subtle.Render(fmt.Sprintf("%-*s", width, r[0])), t.Normal.Render(r[1])))
	}
	return strings.Join(lines, "\n")
}
