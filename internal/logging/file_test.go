package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(FileConfig{Dir: dir, Name: "test.log", MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	// Force a tiny limit so every write past the first rotates.
	r.maxSize = 16

	for range 5 {
		_, err := r.Write([]byte("0123456789abcdef\n"))
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	backups := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
		}
	}
	assert.Equal(t, 2, backups)
	assert.FileExists(t, r.Path())
}

func TestRotator_Compress(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(FileConfig{Dir: dir, Compress: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	r.maxSize = 4

	_, err = r.Write([]byte("first"))
	require.NoError(t, err)
	_, err = r.Write([]byte("second"))
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "tinyguard.log.*.gz"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json", Output: &stderr},
		FileConfig{Enabled: true, Dir: dir, WriteToStderr: true},
	)
	require.NoError(t, err)

	logger.Info().Str("component", "api").Msg("hello")
	logger.Debug().Msg("dropped")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "tinyguard.log"))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, stderr.String(), "hello")
	assert.NotContains(t, string(data), "dropped")
}

func TestNewWithFile_Disabled(t *testing.T) {
	_, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	cleanup()
}
