package ruleset

import "fmt"

// Stats describes how much of the input made it into the table.
type Stats struct {
	Input            int `json:"input"`
	Unique           int `json:"unique"`
	Blank            int `json:"blank"`
	PriorityIncluded int `json:"priorityIncluded"`
	Emitted          int `json:"emitted"`
}

// Coverage is the share of raw input entries that got a rule, in percent.
func (s Stats) Coverage() float64 {
	if s.Input == 0 {
		return 0
	}
	return float64(s.Emitted) / float64(s.Input) * 100
}

// CoverageString formats Coverage with one decimal, e.g. "65.2%".
func (s Stats) CoverageString() string {
	return FormatCoverage(s.Emitted, s.Input)
}

// Remaining counts input entries left to detection only.
func (s Stats) Remaining() int {
	return s.Input - s.Emitted
}

// Coverage ratings.
const (
	RatingExcellent = "excellent"
	RatingGreat     = "great"
	RatingGood      = "good"
	RatingLow       = "low"
)

// Rating buckets the coverage.
func (s Stats) Rating() string {
	c := s.Coverage()
	switch {
	case c >= 65:
		return RatingExcellent
	case c >= 50:
		return RatingGreat
	case c >= 30:
		return RatingGood
	default:
		return RatingLow
	}
}

// FormatCoverage renders rules/total as a one-decimal percentage.
func FormatCoverage(rules, total int) string {
	if total <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(rules)/float64(total)*100)
}
