package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Dharmub376/Digital-Chunab/internal/repository"
)

func TestPercentage_ZeroTotal(t *testing.T) {
	if got := Percentage(0, 0); got != 0 {
		t.Errorf("Percentage(0, 0) = %d, want 0", got)
	}
	if got := Percentage(5, 0); got != 0 {
		t.Errorf("Percentage(5, 0) = %d, want 0", got)
	}
}

func TestPercentage_Rounding(t *testing.T) {
	tests := []struct {
		count, total, want int
	}{
		{1, 1, 100},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{0, 7, 0},
		{7, 7, 100},
	}
	for _, tt := range tests {
		if got := Percentage(tt.count, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.count, tt.total, got, tt.want)
		}
	}
}

func sampleTally() []repository.TallyRow {
	return []repository.TallyRow{
		{PositionID: "p1", PositionTitle: "President", CandidateID: "c1", CandidateName: "Alice", StudentID: "S001", VoteCount: 3},
		{PositionID: "p1", PositionTitle: "President", CandidateID: "c2", CandidateName: "Bob", StudentID: "S002", VoteCount: 1},
		{PositionID: "p2", PositionTitle: "Treasurer", CandidateID: "c3", CandidateName: "Carol", StudentID: "S003", VoteCount: 0},
	}
}

func TestBuildResults_GroupsAndTotals(t *testing.T) {
	results := BuildResults(sampleTally())

	if len(results) != 2 {
		t.Fatalf("got %d positions, want 2", len(results))
	}

	president := results[0]
	if president.Position != "President" {
		t.Errorf("first position = %q, want President", president.Position)
	}
	if president.TotalVotes != 4 {
		t.Errorf("President total = %d, want 4", president.TotalVotes)
	}
	if len(president.Candidates) != 2 {
		t.Fatalf("President candidates = %d, want 2", len(president.Candidates))
	}
	// Input order (descending count) is preserved
	if president.Candidates[0].Name != "Alice" || president.Candidates[0].VoteCount != 3 {
		t.Errorf("leader = %+v, want Alice with 3", president.Candidates[0])
	}
	if president.Candidates[0].Percentage != 75 {
		t.Errorf("Alice percentage = %d, want 75", president.Candidates[0].Percentage)
	}
	if president.Candidates[1].Percentage != 25 {
		t.Errorf("Bob percentage = %d, want 25", president.Candidates[1].Percentage)
	}
}

func TestBuildResults_ZeroVotePosition(t *testing.T) {
	results := BuildResults(sampleTally())

	treasurer := results[1]
	if treasurer.TotalVotes != 0 {
		t.Errorf("Treasurer total = %d, want 0", treasurer.TotalVotes)
	}
	// No division by zero: 0 votes of 0 total is 0%
	if treasurer.Candidates[0].Percentage != 0 {
		t.Errorf("Carol percentage = %d, want 0", treasurer.Candidates[0].Percentage)
	}
}

func TestBuildResults_SumMatchesVoteRecords(t *testing.T) {
	rows := sampleTally()
	results := BuildResults(rows)

	// Sum of per-candidate counts must equal the tally row counts exactly
	var want, got int
	for _, r := range rows {
		want += r.VoteCount
	}
	for _, pos := range results {
		for _, c := range pos.Candidates {
			got += c.VoteCount
		}
	}
	if got != want {
		t.Errorf("summed candidate counts = %d, want %d", got, want)
	}
}

func TestBuildResults_Empty(t *testing.T) {
	results := BuildResults(nil)
	if len(results) != 0 {
		t.Errorf("got %d positions, want 0", len(results))
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, BuildResults(sampleTally())); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header + 3 candidates)", len(lines))
	}
	if lines[0] != "position,candidate,student_id,votes,percentage" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "President,Alice,S001,3,75" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[3] != "Treasurer,Carol,S003,0,0" {
		t.Errorf("last row = %q", lines[3])
	}
}
