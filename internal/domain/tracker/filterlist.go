package tracker

import (
	"bufio"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const maxFilterLineBytes = 1024 * 1024

var (
	// ||example.com^ style network rules.
	adblockDomainRule = regexp.MustCompile(`^\|\|([^/^*]+)\^`)
	// 0.0.0.0 example.com hosts entries.
	hostsEntry = regexp.MustCompile(`^.*0\.0\.0\.0\s+([a-zA-Z0-9.\-]+)`)
)

// ExtractDomains pulls blockable domains out of an EasyPrivacy-style filter
// list or a hosts file. Comments, section headers, exceptions and cosmetic
// rules are ignored. The result is lowercased, deduplicated and sorted.
// A line longer than the scanner limit fails the whole list.
func ExtractDomains(list string) ([]string, error) {
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(strings.NewReader(list))
	scanner.Buffer(make([]byte, 0, 64*1024), maxFilterLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "!") || strings.HasPrefix(line, "[") || strings.HasPrefix(line, "#") {
			continue
		}

		if m := adblockDomainRule.FindStringSubmatch(line); m != nil {
			seen[strings.ToLower(m[1])] = struct{}{}
			continue
		}

		if m := hostsEntry.FindStringSubmatch(line); m != nil {
			seen[strings.ToLower(m[1])] = struct{}{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedFilterList, err)
	}

	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out, nil
}

// MergeDomains unions several extracted lists into one sorted list.
func MergeDomains(lists ...[]string) []string {
	seen := make(map[string]struct{})
	for _, l := range lists {
		for _, d := range l {
			seen[d] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
