package entity

// RuleTypeStatic is reported for tables shipped as a static ruleset.
const RuleTypeStatic = "static"

// Diagnostics summarizes catalog and enforcement state.
type Diagnostics struct {
	TotalTrackers   int    `json:"totalTrackersInDB"`
	BlockingRules   int    `json:"blockingRulesCount"`
	BlockingEnabled bool   `json:"blockingEnabled"`
	RulesetActive   bool   `json:"rulesetActive"`
	RuleType        string `json:"ruleType"`
	Coverage        string `json:"coverage"`
}
