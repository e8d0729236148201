package url

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// RegistrableDomain returns the eTLD+1 of hostname according to the public
// suffix list. Classification never uses it; it exists so tooling can show
// where the RootDomain heuristic diverges.
func RegistrableDomain(hostname string) (string, bool) {
	host := strings.Trim(strings.ToLower(hostname), ".")
	if host == "" {
		return "", false
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", false
	}

	return domain, true
}

// HeuristicDiverges reports whether RootDomain and the suffix list disagree
// for hostname.
func HeuristicDiverges(hostname string) bool {
	registrable, ok := RegistrableDomain(hostname)
	if !ok {
		return false
	}
	return registrable != RootDomain(hostname)
}
