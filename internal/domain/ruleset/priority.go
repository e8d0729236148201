package ruleset

// DefaultPriorityDomains returns the curated list of high-traffic trackers
// that always get a rule before the cap is applied.
func DefaultPriorityDomains() []string {
	return []string{
		"doubleclick.net",
		"google-analytics.com",
		"googletagmanager.com",
		"googlesyndication.com",
		"googleadservices.com",
		"facebook.com",
		"connect.facebook.net",
		"facebook.net",
		"twitter.com",
		"linkedin.com",
		"scorecardresearch.com",
		"quantserve.com",
		"adnxs.com",
		"amazon-adsystem.com",
		"chartbeat.com",
		"criteo.com",
		"criteo.net",
		"outbrain.com",
		"taboola.com",
		"pubmatic.com",
		"rubiconproject.com",
		"openx.net",
		"adsafeprotected.com",
		"advertising.com",
		"bing.com",
		"yahoo.com",
		"pixel.facebook.com",
		"analytics.twitter.com",
		"ads-twitter.com",
		"mouseflow.com",
		"hotjar.com",
		"crazyegg.com",
		"luckyorange.com",
		"inspectlet.com",
		"segment.com",
		"segment.io",
		"amplitude.com",
		"mixpanel.com",
		"fullstory.com",
		"loggly.com",
		"newrelic.com",
		"nr-data.net",
		"optimizely.com",
		"pardot.com",
		"salesforce.com",
		"marketo.net",
		"eloqua.com",
		"hubspot.com",
		"doubleclick.com",
		"adservice.google.com",
		"googletag.pubads.com",
	}
}
