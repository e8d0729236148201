package entity

// ClassifiedEvent is one observed resource load after classification.
type ClassifiedEvent struct {
	RawURL       string `json:"rawUrl"`
	Hostname     string `json:"hostname"`
	RootDomain   string `json:"rootDomain"`
	IsTracker    bool   `json:"isTracker"`
	IsThirdParty bool   `json:"isThirdParty"`
}
