package filtering

import (
	"net/url"
	"path"
	"strings"

	"github.com/bnema/tinyguard/internal/application/port"
)

// EasyPrivacyURL is the upstream tracker filter list.
const EasyPrivacyURL = "https://easylist-downloads.adblockplus.org/easyprivacy.txt"

// DefaultSources returns the filter lists used when none are configured.
func DefaultSources() []port.FilterListSource {
	return []port.FilterListSource{
		{Name: "easyprivacy", Location: EasyPrivacyURL},
	}
}

// SourcesFromLocations names each location after its file name without
// extension. An empty input yields DefaultSources.
func SourcesFromLocations(locations []string) []port.FilterListSource {
	if len(locations) == 0 {
		return DefaultSources()
	}

	out := make([]port.FilterListSource, 0, len(locations))
	for _, loc := range locations {
		loc = strings.TrimSpace(loc)
		if loc == "" {
			continue
		}
		out = append(out, port.FilterListSource{Name: sourceName(loc), Location: loc})
	}
	return out
}

func sourceName(loc string) string {
	p := loc
	if u, err := url.Parse(loc); err == nil && u.Path != "" {
		p = u.Path
	}
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	name := strings.TrimSuffix(base, path.Ext(base))
	if name == "" || name == "." || name == "/" {
		return loc
	}
	return name
}
