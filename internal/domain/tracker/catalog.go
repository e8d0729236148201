// Package tracker holds the known-tracker catalog and its lookup index.
package tracker

import (
	"strings"
	"sync/atomic"

	"github.com/armon/go-radix"
)

// snapshot is an immutable view of the catalog. Readers hold on to one
// snapshot for the duration of a query.
type snapshot struct {
	domains []string
	exact   map[string]struct{}
	suffix  *radix.Tree
}

func newSnapshot(domains []string) *snapshot {
	s := &snapshot{
		domains: make([]string, 0, len(domains)),
		exact:   make(map[string]struct{}, len(domains)),
		suffix:  radix.New(),
	}

	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if _, dup := s.exact[d]; dup {
			continue
		}
		s.exact[d] = struct{}{}
		s.domains = append(s.domains, d)
		s.suffix.Insert(reverseKey(d), d)
	}

	return s
}

// Catalog is the set of known tracker domains. Load swaps the whole set at
// once so concurrent queries see either the old or the new set, never a mix.
type Catalog struct {
	current atomic.Pointer[snapshot]
}

// NewCatalog returns a catalog preloaded with domains.
func NewCatalog(domains ...string) *Catalog {
	c := &Catalog{}
	c.current.Store(newSnapshot(domains))
	return c
}

// Load replaces the catalog with the trimmed, lowercased, deduplicated domains and
// returns the resulting size. Blank entries are skipped.
func (c *Catalog) Load(domains []string) int {
	next := newSnapshot(domains)
	c.current.Store(next)
	return len(next.domains)
}

// IsKnownTracker reports whether rootDomain is listed, hostname is listed, or
// hostname is a subdomain of a listed entry.
func (c *Catalog) IsKnownTracker(hostname, rootDomain string) bool {
	s := c.current.Load()

	if _, ok := s.exact[strings.ToLower(rootDomain)]; ok {
		return true
	}

	_, ok := s.match(strings.ToLower(hostname))
	return ok
}

// Match returns the catalog entry covering hostname, preferring the most
// specific one.
func (c *Catalog) Match(hostname string) (string, bool) {
	return c.current.Load().match(strings.ToLower(hostname))
}

func (s *snapshot) match(hostname string) (string, bool) {
	if hostname == "" {
		return "", false
	}
	if _, ok := s.exact[hostname]; ok {
		return hostname, true
	}
	_, v, ok := s.suffix.LongestPrefix(reverseKey(hostname))
	if !ok {
		return "", false
	}
	return v.(string), true
}

// contains reports exact membership.
func (c *Catalog) contains(domain string) bool {
	_, ok := c.current.Load().exact[strings.ToLower(domain)]
	return ok
}

// Size returns the number of distinct entries.
func (c *Catalog) Size() int {
	return len(c.current.Load().domains)
}

// Domains returns a copy of the entries in load order.
func (c *Catalog) Domains() []string {
	s := c.current.Load()
	out := make([]string, len(s.domains))
	copy(out, s.domains)
	return out
}

// reverseKey turns "ads.tracker.com" into "com.tracker.ads.". Every label is
// terminated by a dot, so a key is a prefix of another exactly when the
// first host equals the second or is a dot-suffix of it.
func reverseKey(host string) string {
	labels := strings.Split(host, ".")

	var b strings.Builder
	b.Grow(len(host) + 1)
	for i := len(labels) - 1; i >= 0; i-- {
		b.WriteString(labels[i])
		b.WriteByte('.')
	}
	return b.String()
}
