package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tinyguard/internal/application/usecase"
	"github.com/bnema/tinyguard/internal/domain/tracker"
)

func TestEventClassifier_Classify_ThirdPartyTracker(t *testing.T) {
	c := usecase.NewEventClassifier(tracker.NewCatalog("tracker.com"))

	ev, ok := c.Classify("https://ads.tracker.com/x", "shop.example.com")
	require.True(t, ok)

	assert.Equal(t, "ads.tracker.com", ev.Hostname)
	assert.Equal(t, "tracker.com", ev.RootDomain)
	assert.True(t, ev.IsTracker)
	assert.True(t, ev.IsThirdParty)
	assert.Equal(t, "https://ads.tracker.com/x", ev.RawURL)
}

func TestEventClassifier_Classify_FirstPartySubdomain(t *testing.T) {
	c := usecase.NewEventClassifier(tracker.NewCatalog())

	ev, ok := c.Classify("https://cdn.example.com/app.js", "www.example.com")
	require.True(t, ok)
	assert.False(t, ev.IsThirdParty)
	assert.False(t, ev.IsTracker)
}

func TestEventClassifier_Classify_RootDomainNotSubstring(t *testing.T) {
	c := usecase.NewEventClassifier(tracker.NewCatalog())

	// Substring containment would call this first party.
	ev, ok := c.Classify("https://example.com.evil.io/p", "example.com")
	require.True(t, ok)
	assert.True(t, ev.IsThirdParty)

	// And would call this third party.
	ev, ok = c.Classify("https://static.example.com/p", "shop.example.com")
	require.True(t, ok)
	assert.False(t, ev.IsThirdParty)
}

func TestEventClassifier_Classify_UnknownPage(t *testing.T) {
	c := usecase.NewEventClassifier(tracker.NewCatalog("tracker.com"))

	ev, ok := c.Classify("https://tracker.com/p", "")
	require.True(t, ok)
	assert.True(t, ev.IsTracker)
	assert.False(t, ev.IsThirdParty)
}

func TestEventClassifier_Classify_BadURL(t *testing.T) {
	c := usecase.NewEventClassifier(tracker.NewCatalog("tracker.com"))

	for _, raw := range []string{"", "/relative", "//tracker.com/x", "data:text/plain,hi", "not a url"} {
		_, ok := c.Classify(raw, "example.com")
		assert.False(t, ok, raw)
	}
}
