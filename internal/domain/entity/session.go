package entity

import "time"

// TabID identifies a browsing session. It mirrors the browser's numeric tab id.
type TabID int64

// SessionState is the aggregated view of one tab.
// Every list holds unique entries in first-seen order.
type SessionState struct {
	Trackers     []string `json:"trackers"`
	ThirdParties []string `json:"thirdParties"`
	Permissions  []string `json:"permissions"`
	Blocked      []string `json:"blocked"`
}

// NewSessionState returns an empty state with non-nil lists so it serializes as [] rather than null.
func NewSessionState() SessionState {
	return SessionState{
		Trackers:     []string{},
		ThirdParties: []string{},
		Permissions:  []string{},
		Blocked:      []string{},
	}
}

// BlockedDomains derives the blocked list from the tracker list.
// It is computed at read time and never stored.
func BlockedDomains(trackers []string, blockingEnabled bool) []string {
	if !blockingEnabled {
		return []string{}
	}
	out := make([]string, len(trackers))
	copy(out, trackers)
	return out
}

// ScanReport is the answer to a scan query for a single tab.
type ScanReport struct {
	TabID TabID `json:"tabId"`
	SessionState
	PrivacyScore
	BlockingEnabled bool `json:"blockingEnabled"`
	Settled         bool `json:"settled"`
}

// ScanSettled is emitted once a tab has been quiet for the settle delay.
type ScanSettled struct {
	TabID        TabID     `json:"tabId"`
	Trackers     []string  `json:"trackers"`
	ThirdParties []string  `json:"thirdParties"`
	At           time.Time `json:"at"`
}

// ScanRecord is a persisted settled scan.
type ScanRecord struct {
	ID           int64     `json:"id"`
	TabID        TabID     `json:"tabId"`
	Trackers     []string  `json:"trackers"`
	ThirdParties []string  `json:"thirdParties"`
	Score        int       `json:"score"`
	Grade        Grade     `json:"grade"`
	SettledAt    time.Time `json:"settledAt"`
}
