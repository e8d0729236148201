package usecase

import (
	"github.com/bnema/tinyguard/internal/domain/entity"
	"github.com/bnema/tinyguard/internal/domain/tracker"
	domainurl "github.com/bnema/tinyguard/internal/domain/url"
)

// EventClassifier turns a raw request URL into a ClassifiedEvent.
type EventClassifier struct {
	catalog *tracker.Catalog
}

// NewEventClassifier creates an EventClassifier backed by catalog.
func NewEventClassifier(catalog *tracker.Catalog) *EventClassifier {
	return &EventClassifier{catalog: catalog}
}

// Classify returns false when rawURL has no usable hostname.
// A request is third party when the page hostname is known and the root
// domains differ.
func (c *EventClassifier) Classify(rawURL, pageHostname string) (entity.ClassifiedEvent, bool) {
	host, ok := domainurl.Hostname(rawURL)
	if !ok {
		return entity.ClassifiedEvent{}, false
	}

	root := domainurl.RootDomain(host)

	thirdParty := false
	if pageHostname != "" {
		thirdParty = domainurl.RootDomain(pageHostname) != root
	}

	return entity.ClassifiedEvent{
		RawURL:       rawURL,
		Hostname:     host,
		RootDomain:   root,
		IsTracker:    c.catalog.IsKnownTracker(host, root),
		IsThirdParty: thirdParty,
	}, true
}
