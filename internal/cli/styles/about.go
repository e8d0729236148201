package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tinyguard/internal/domain/build"
)

// AboutPaths are the files a running tinyguard reads and writes.
// An empty ConfigFile means built-in defaults are in use.
type AboutPaths struct {
	ConfigFile string
	Database   string
	Catalog    string
	Rules      string
}

// AboutRenderer draws the about screen: a shield next to build and path info.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new AboutRenderer.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render returns the about screen for info and paths.
func (r *AboutRenderer) Render(info build.Info, paths AboutPaths) string {
	shield := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(" ▄▄▄▄▄▄▄\n █ ▀█▀ █\n █  █  █\n  ▀▄█▄▀\n    ▀")

	config := paths.ConfigFile
	if config == "" {
		config = "built-in defaults"
	}

	lines := []string{
		r.line(IconVersion, "Version", info.Version),
		r.line(IconGitBranch, "Commit", info.ShortCommit()),
		r.line(IconCalendar, "Built", info.BuildDate),
		r.line(IconGo, "Go", info.GoVersion),
		"",
		r.line(IconFile, "Config", config),
		r.line(IconFile, "Database", paths.Database),
		r.line(IconShield, "Catalog", paths.Catalog),
		r.line(IconShield, "Rules", paths.Rules),
		"",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconGithub) + " " + r.theme.Subtle.Render(build.RepoURL()),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, shield, "   ", strings.Join(lines, "\n"))
}

func (r *AboutRenderer) line(icon, key, value string) string {
	if value == "" {
		value = "-"
	}
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return iconStyle.Render(icon) + " " + r.theme.Subtle.Render(key) + " " + r.theme.Highlight.Render(value)
}
