package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/cli"
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/tracker"
)

func newTestApp(t *testing.T) *cli.App {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg-config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "xdg-data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "xdg-state"))

	cfg := `[catalog]
path = "trackers.json"

[scan]
settle_delay = "20ms"
`
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trackers.json"),
		[]byte(`{"trackers":["doubleclick.net","google-analytics.com"]}`), 0o644))

	a, err := cli.NewApp(cli.Options{ConfigPath: cfgPath, LogLevel: "disabled"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestScanReader_WaitsForSettle(t *testing.T) {
	a := newTestApp(t)

	input := strings.Join([]string{
		"# requests captured from example.com",
		"https://stats.g.doubleclick.net/j/collect",
		"",
		"https://www.google-analytics.com/analytics.js",
		"https://cdn.example.net/app.js",
		"https://example.com/style.css",
		"not a url",
	}, "\n")

	ctx, cancel := context.WithTimeout(a.Ctx(), 5*time.Second)
	defer cancel()

	report, err := scanReader(ctx, a, strings.NewReader(input), entity.TabID(3), "https://example.com/")
	require.NoError(t, err)

	assert.Equal(t, entity.TabID(3), report.TabID)
	assert.True(t, report.Settled)
	assert.Equal(t, []string{"doubleclick.net", "google-analytics.com"}, report.Trackers)
	assert.Equal(t, []string{"doubleclick.net", "google-analytics.com", "example.net"}, report.ThirdParties)
	assert.Empty(t, report.Blocked)
}

func TestScanReader_NoRequestsReturnsImmediately(t *testing.T) {
	a := newTestApp(t)

	report, err := scanReader(a.Ctx(), a, strings.NewReader("\n# nothing\n"), entity.TabID(1), "")
	require.NoError(t, err)
	assert.Empty(t, report.Trackers)
	assert.False(t, report.Settled)
	assert.Equal(t, entity.GradeA, report.Grade)
}

func TestScanReader_CancelledWhileWaiting(t *testing.T) {
	a := newTestApp(t)

	ctx, cancel := context.WithCancel(a.Ctx())
	cancel()

	_, err := scanReader(ctx, a, strings.NewReader("https://doubleclick.net/x\n"), entity.TabID(1), "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestManDir_UsesXDGDataHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	dir, err := manDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "man", "man1"), dir)
}

func TestMatchedEntry(t *testing.T) {
	catalog := tracker.NewCatalog("example.com", "ads.example.com", "co.uk")
	classifier := usecase.NewEventClassifier(catalog)

	tests := []struct {
		name  string
		url   string
		want  string
		found bool
	}{
		{"most specific entry", "https://x.ads.example.com/p.gif", "ads.example.com", true},
		{"parent entry", "https://www.example.com/", "example.com", true},
		{"listed heuristic root", "https://foo.co.uk/", "co.uk", true},
		{"not a tracker", "https://example.org/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, ok := classifier.Classify(tt.url, "")
			require.True(t, ok)

			got, found := matchedEntry(catalog, event)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}
