package ruleset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/domain/entity"
)

// FileTable reads the rule table shipped alongside the service.
type FileTable struct {
	path string
}

// NewFileTable returns a source backed by the rules file at path.
func NewFileTable(path string) *FileTable {
	return &FileTable{path: path}
}

// RuleCount returns the number of rules in the file. A missing file counts as
// an empty table.
func (t *FileTable) RuleCount(_ context.Context) (int, error) {
	rules, err := t.Rules()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	return len(rules), nil
}

// Rules decodes the whole table.
func (t *FileTable) Rules() ([]entity.RuleRecord, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return nil, err
	}
	var rules []entity.RuleRecord
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("decode %s: %w", t.path, err)
	}
	return rules, nil
}

var _ port.RuleTableSource = (*FileTable)(nil)
