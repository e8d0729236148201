package entity

// Grade is the letter attached to a privacy score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Score penalties per distinct entry.
const (
	TrackerPenalty    = 15
	ThirdPartyPenalty = 3
	PermissionPenalty = 10
)

// PrivacyScore is derived on demand and never persisted.
type PrivacyScore struct {
	Score int   `json:"score"`
	Grade Grade `json:"grade"`
}

// ComputeScore applies the linear penalty then clamps to [0,100].
func ComputeScore(state SessionState) PrivacyScore {
	score := 100 -
		TrackerPenalty*len(state.Trackers) -
		ThirdPartyPenalty*len(state.ThirdParties) -
		PermissionPenalty*len(state.Permissions)

	score = max(0, min(100, score))

	return PrivacyScore{Score: score, Grade: GradeFor(score)}
}

// GradeFor maps a score to its letter grade.
func GradeFor(score int) Grade {
	switch {
	case score >= 85:
		return GradeA
	case score >= 70:
		return GradeB
	case score >= 55:
		return GradeC
	case score >= 40:
		return GradeD
	default:
		return GradeF
	}
}
