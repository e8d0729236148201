package ruleset

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tinyguard/internal/application/port"
	domainruleset "github.com/bnema/tinyguard/internal/domain/ruleset"
)

func compileTable(t *testing.T, domains ...string) domainruleset.Table {
	t.Helper()
	table, err := domainruleset.Compile(domains, domainruleset.Options{MaxRules: 100})
	require.NoError(t, err)
	return table
}

func TestFileWriter_WritesBothArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	dest := port.RuleTableDestination{
		RulesPath:       filepath.Join(dir, "rules.json"),
		BlockedListPath: filepath.Join(dir, "blocked-trackers.txt"),
	}

	table := compileTable(t, "a.com", "b.net")
	require.NoError(t, NewFileWriter().WriteTable(context.Background(), table, dest))

	data, err := os.ReadFile(dest.RulesPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {\n    \"id\": 1,")

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 2)

	blocked, err := os.ReadFile(dest.BlockedListPath)
	require.NoError(t, err)
	assert.Equal(t, "a.com\nb.net\n", string(blocked))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp files must be renamed away")
}

func TestFileWriter_EmptyTable(t *testing.T) {
	dir := t.TempDir()
	dest := port.RuleTableDestination{RulesPath: filepath.Join(dir, "rules.json")}

	require.NoError(t, NewFileWriter().WriteTable(context.Background(), domainruleset.Table{}, dest))

	data, err := os.ReadFile(dest.RulesPath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestFileWriter_FailureLeavesPreviousTable(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(rulesPath, []byte("[]\n"), 0o644))

	// A regular file where a directory is expected makes the second stage fail.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	dest := port.RuleTableDestination{
		RulesPath:       rulesPath,
		BlockedListPath: filepath.Join(blocker, "blocked.txt"),
	}
	err := NewFileWriter().WriteTable(context.Background(), compileTable(t, "a.com"), dest)
	require.Error(t, err)

	data, err := os.ReadFile(rulesPath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFileWriter_BlockedListCommitFailureKeepsRules(t *testing.T) {
	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(rulesPath, []byte("[]\n"), 0o644))

	// Staging succeeds but a non-empty directory cannot be replaced by rename.
	blockedPath := filepath.Join(dir, "blocked-trackers.txt")
	require.NoError(t, os.MkdirAll(filepath.Join(blockedPath, "keep"), 0o755))

	dest := port.RuleTableDestination{RulesPath: rulesPath, BlockedListPath: blockedPath}
	err := NewFileWriter().WriteTable(context.Background(), compileTable(t, "a.com"), dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit")

	data, err := os.ReadFile(rulesPath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "staged files must be cleaned up")
}

func TestFileWriter_RequiresRulesPath(t *testing.T) {
	err := NewFileWriter().WriteTable(context.Background(), domainruleset.Table{}, port.RuleTableDestination{})
	require.Error(t, err)
}

func TestFileTable_RuleCount(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")

	n, err := NewFileTable(path).RuleCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, NewFileWriter().WriteTable(ctx, compileTable(t, "a.com", "b.net", "c.org"),
		port.RuleTableDestination{RulesPath: path}))

	n, err = NewFileTable(path).RuleCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = NewFileTable(path).RuleCount(ctx)
	require.Error(t, err)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "array", doc["type"])
	assert.Equal(t, "TinyGuard rule table", doc["title"])
	assert.Contains(t, string(data), "urlFilter")
	assert.Contains(t, string(data), "webtransport")
}
