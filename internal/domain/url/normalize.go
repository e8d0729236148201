// Package url provides hostname and root-domain helpers used for classification.
package url

import (
	"net/url"
	"strings"
)

// RootDomain reduces a hostname to its last two labels.
//
// Empty labels are dropped first. Hostnames with two labels or fewer are
// returned lowercased and otherwise untouched. This is a naive heuristic and
// gets multi-label public suffixes wrong ("foo.co.uk" yields "co.uk"); see
// RegistrableDomain for the suffix-list answer.
func RootDomain(hostname string) string {
	lower := strings.ToLower(hostname)

	labels := make([]string, 0, 4)
	for _, label := range strings.Split(lower, ".") {
		if label != "" {
			labels = append(labels, label)
		}
	}

	if len(labels) <= 2 {
		return lower
	}

	return labels[len(labels)-2] + "." + labels[len(labels)-1]
}

// Hostname extracts the lowercased hostname of an absolute http(s) URL.
// Returns false for malformed, relative, protocol-relative or non-HTTP URLs.
func Hostname(rawURL string) (string, bool) {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}

	return host, true
}
