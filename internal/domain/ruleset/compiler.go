// Package ruleset compiles a tracker domain list into a static block-rule table.
package ruleset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/tinyguard/internal/domain/entity"
)

// DefaultMaxRules is the default cap on emitted rules.
const DefaultMaxRules = 30_000

// ErrInvalidRuleCap is returned when the cap is not positive.
var ErrInvalidRuleCap = errors.New("max rules must be greater than zero")

// Options control a compile run.
type Options struct {
	// MaxRules caps the number of emitted records.
	MaxRules int
	// Priority domains are emitted first, in this order, when present in the input.
	Priority []string
}

// DefaultOptions returns the stock cap and priority list.
func DefaultOptions() Options {
	return Options{
		MaxRules: DefaultMaxRules,
		Priority: DefaultPriorityDomains(),
	}
}

// Table is the result of a compile run.
type Table struct {
	Rules []entity.RuleRecord
	// Domains lists the blocked domain of each rule, index-aligned with Rules.
	Domains []string
	Stats   Stats
}

// Compile trims, lowercases and deduplicates domains, moves priority domains to the
// front, truncates to the cap and emits one block rule per domain with ids
// starting at 1. The output depends only on its inputs.
func Compile(domains []string, opts Options) (Table, error) {
	if opts.MaxRules <= 0 {
		return Table{}, fmt.Errorf("%w: got %d", ErrInvalidRuleCap, opts.MaxRules)
	}

	stats := Stats{Input: len(domains)}

	unique := make([]string, 0, len(domains))
	seen := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			stats.Blank++
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}
	stats.Unique = len(unique)

	ordered := prioritize(unique, seen, opts.Priority)

	if len(ordered) > opts.MaxRules {
		ordered = ordered[:opts.MaxRules]
	}

	prioritySet := lowerSet(opts.Priority)
	rules := make([]entity.RuleRecord, len(ordered))
	for i, d := range ordered {
		if _, ok := prioritySet[d]; ok {
			stats.PriorityIncluded++
		}
		rules[i] = newBlockRule(i+1, d)
	}
	stats.Emitted = len(rules)

	return Table{Rules: rules, Domains: ordered, Stats: stats}, nil
}

// prioritize returns priority domains present in the input, in priority-list
// order, followed by the remaining domains in input order.
func prioritize(unique []string, present map[string]struct{}, priority []string) []string {
	out := make([]string, 0, len(unique))
	taken := make(map[string]struct{}, len(priority))

	for _, p := range priority {
		p = strings.ToLower(strings.TrimSpace(p))
		if _, ok := present[p]; !ok {
			continue
		}
		if _, dup := taken[p]; dup {
			continue
		}
		taken[p] = struct{}{}
		out = append(out, p)
	}

	for _, d := range unique {
		if _, ok := taken[d]; ok {
			continue
		}
		out = append(out, d)
	}
	return out
}

func newBlockRule(id int, domain string) entity.RuleRecord {
	return entity.RuleRecord{
		ID:       id,
		Priority: entity.RulePriority,
		Action:   entity.RuleAction{Type: entity.RuleActionBlock},
		Condition: entity.RuleCondition{
			URLFilter:     entity.MatchPattern(domain),
			ResourceTypes: entity.AllResourceTypes(),
		},
	}
}

func lowerSet(xs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		set[strings.ToLower(strings.TrimSpace(x))] = struct{}{}
	}
	return set
}
