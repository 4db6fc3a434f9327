package service

import (
	"testing"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
)

func TestCandidateMovable(t *testing.T) {
	existing := &model.Candidate{ID: "c1", PositionID: "p1"}

	tests := []struct {
		name       string
		positionID string
		votes      int
		want       bool
	}{
		{"same race, no votes", "p1", 0, true},
		{"same race, with votes", "p1", 5, true},
		{"new race, no votes", "p2", 0, true},
		{"new race, with votes", "p2", 1, false},
		{"new race, many votes", "p2", 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CandidateMovable(existing, tt.positionID, tt.votes); got != tt.want {
				t.Errorf("CandidateMovable(%q, %d) = %v, want %v", tt.positionID, tt.votes, got, tt.want)
			}
		})
	}
}
