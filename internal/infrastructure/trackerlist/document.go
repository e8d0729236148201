// Package trackerlist reads and writes tracker list documents.
//
// A document is an object with a "trackers" array of domain strings, encoded
// as JSON, or as YAML when the file extension is .yaml or .yml.
package trackerlist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/domain/tracker"
	"github.com/bnema/tinyguard/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	trackersField = "trackers"
)

// Format identifies a document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the encoding from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Store loads and saves tracker list documents on disk.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// LoadFile reads the document at path.
func (s *Store) LoadFile(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tracker list: %w", err)
	}

	domains, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.FromContext(ctx).Debug().Str("path", path).Int("entries", len(domains)).Msg("tracker list decoded")
	return domains, nil
}

// WriteFile writes domains as a document at path, replacing it atomically.
func (s *Store) WriteFile(_ context.Context, path string, domains []string) error {
	data, err := Encode(domains, FormatForPath(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create tracker list dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".trackers.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return os.Rename(tmpName, path)
}

// Decode parses a document. A missing or non-array "trackers" field fails
// with tracker.ErrInvalidTrackerList, a non-string entry with
// tracker.ErrNonStringEntry.
func Decode(data []byte, format Format) ([]string, error) {
	if format == FormatYAML {
		return decodeYAML(data)
	}
	return decodeJSON(data)
}

func decodeJSON(data []byte) ([]string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", tracker.ErrInvalidTrackerList, err)
	}

	raw, ok := doc[trackersField]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q field", tracker.ErrInvalidTrackerList, trackersField)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: %q is not an array", tracker.ErrInvalidTrackerList, trackersField)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", tracker.ErrInvalidTrackerList, err)
	}

	out := make([]string, 0, len(entries))
	for i, e := range entries {
		var s string
		if err := json.Unmarshal(e, &s); err != nil {
			return nil, fmt.Errorf("%w: index %d holds %s", tracker.ErrNonStringEntry, i, string(e))
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeYAML(data []byte) ([]string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", tracker.ErrInvalidTrackerList, err)
	}

	raw, ok := doc[trackersField]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q field", tracker.ErrInvalidTrackerList, trackersField)
	}

	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a sequence", tracker.ErrInvalidTrackerList, trackersField)
	}

	out := make([]string, 0, len(entries))
	for i, e := range entries {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("%w: index %d holds %v", tracker.ErrNonStringEntry, i, e)
		}
		out = append(out, s)
	}
	return out, nil
}

type document struct {
	Trackers []string `json:"trackers" yaml:"trackers"`
}

// Encode renders domains as a document. JSON is indented with two spaces.
func Encode(domains []string, format Format) ([]byte, error) {
	if domains == nil {
		domains = []string{}
	}
	doc := document{Trackers: domains}

	if format == FormatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode tracker list: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode tracker list: %w", err)
		}
		return buf.Bytes(), nil
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tracker list: %w", err)
	}
	return append(data, '\n'), nil
}

var (
	_ port.TrackerListLoader = (*Store)(nil)
	_ port.TrackerListWriter = (*Store)(nil)
)
