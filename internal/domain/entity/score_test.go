package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func domains(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d.com", prefix, i)
	}
	return out
}

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name        string
		trackers    int
		thirdPartys int
		permissions int
		wantScore   int
		wantGrade   Grade
	}{
		{"clean page", 0, 0, 0, 100, GradeA},
		{"two trackers one third party", 2, 1, 0, 67, GradeC},
		{"one tracker", 1, 0, 0, 85, GradeA},
		{"boundary B", 2, 0, 0, 70, GradeB},
		{"boundary D", 4, 0, 0, 40, GradeD},
		{"below D", 4, 1, 0, 37, GradeF},
		{"permissions count", 0, 0, 3, 70, GradeB},
		{"clamped at zero", 10, 10, 5, 0, GradeF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := SessionState{
				Trackers:     domains("t", tt.trackers),
				ThirdParties: domains("p", tt.thirdPartys),
				Permissions:  domains("perm", tt.permissions),
			}
			got := ComputeScore(state)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantGrade, got.Grade)
		})
	}
}

func TestComputeScore_MonotonicAndClamped(t *testing.T) {
	prev := 101
	for n := 0; n < 20; n++ {
		score := ComputeScore(SessionState{ThirdParties: domains("p", n)}).Score
		assert.LessOrEqual(t, score, prev)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
		prev = score
	}
}

func TestGradeFor_Thresholds(t *testing.T) {
	assert.Equal(t, GradeA, GradeFor(85))
	assert.Equal(t, GradeB, GradeFor(84))
	assert.Equal(t, GradeB, GradeFor(70))
	assert.Equal(t, GradeC, GradeFor(69))
	assert.Equal(t, GradeC, GradeFor(55))
	assert.Equal(t, GradeD, GradeFor(54))
	assert.Equal(t, GradeD, GradeFor(40))
	assert.Equal(t, GradeF, GradeFor(39))
}

func TestBlockedDomains(t *testing.T) {
	trackers := []string{"a.com", "b.com"}

	blocked := BlockedDomains(trackers, true)
	assert.Equal(t, trackers, blocked)

	blocked[0] = "mutated.com"
	assert.Equal(t, "a.com", trackers[0], "blocked list must not alias trackers")

	assert.Empty(t, BlockedDomains(trackers, false))
	assert.NotNil(t, BlockedDomains(nil, false))
}
