// Package ruleset stores compiled rule tables on disk.
package ruleset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/tinyguard/internal/application/port"
	"github.com/bnema/tinyguard/internal/domain/entity"
	domainruleset "github.com/bnema/tinyguard/internal/domain/ruleset"
	"github.com/bnema/tinyguard/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileWriter writes the rule table and the blocked domain list.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

type pendingFile struct {
	tmp  string
	dest string
}

// WriteTable stages every artifact in a temp file next to its destination
// and renames them only once all of them are written. The rules file is
// renamed last: if any rename fails it still holds the previous table, while
// the blocked list may already be the new one.
func (w *FileWriter) WriteTable(ctx context.Context, table domainruleset.Table, dest port.RuleTableDestination) (err error) {
	if dest.RulesPath == "" {
		return errors.New("rules path is required")
	}

	rules := table.Rules
	if rules == nil {
		rules = []entity.RuleRecord{}
	}
	rulesData, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}

	var staged []pendingFile
	defer func() {
		if err == nil {
			return
		}
		for _, p := range staged {
			_ = os.Remove(p.tmp)
		}
	}()

	p, err := stage(dest.RulesPath, append(rulesData, '\n'))
	if err != nil {
		return err
	}
	staged = append(staged, p)

	if dest.BlockedListPath != "" {
		var body string
		if len(table.Domains) > 0 {
			body = strings.Join(table.Domains, "\n") + "\n"
		}
		p, err := stage(dest.BlockedListPath, []byte(body))
		if err != nil {
			return err
		}
		staged = append(staged, p)
	}

	// Staged rules first, so commit in reverse.
	for i := len(staged) - 1; i >= 0; i-- {
		p := staged[i]
		if err = os.Rename(p.tmp, p.dest); err != nil {
			return fmt.Errorf("commit %s: %w", p.dest, err)
		}
	}

	logging.FromContext(ctx).Debug().
		Str("rules_path", dest.RulesPath).
		Str("blocked_path", dest.BlockedListPath).
		Int("rules", len(rules)).
		Msg("rule table written")
	return nil
}

func stage(dest string, data []byte) (pendingFile, error) {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return pendingFile{}, fmt.Errorf("create %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*")
	if err != nil {
		return pendingFile{}, fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return pendingFile{}, fmt.Errorf("write %s: %w", dest, err)
	}
	if err := f.Chmod(filePerm); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return pendingFile{}, fmt.Errorf("chmod %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return pendingFile{}, fmt.Errorf("close %s: %w", dest, err)
	}
	return pendingFile{tmp: name, dest: dest}, nil
}

var _ port.RuleTableWriter = (*FileWriter)(nil)
