package port

import (
	"context"

	"github.com/bnema/tinyguard/internal/domain/ruleset"
)

// RuleTableDestination names the artifacts of a compile run.
type RuleTableDestination struct {
	// RulesPath receives the JSON rule table.
	RulesPath string
	// BlockedListPath receives one blocked domain per line. Empty skips it.
	BlockedListPath string
}

// RuleTableWriter commits a compiled table. Either every artifact is
// written or none is.
type RuleTableWriter interface {
	WriteTable(ctx context.Context, table ruleset.Table, dest RuleTableDestination) error
}

// RuleTableSource reports on the table currently shipped to the enforcement engine.
type RuleTableSource interface {
	// RuleCount returns the number of rules in the active table.
	RuleCount(ctx context.Context) (int, error)
}
