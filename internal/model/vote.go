package model

import "time"

// Vote is an immutable record of one student's choice for one position.
// The (StudentID, PositionID) pair is unique at the storage layer; this
// index is the single authority on whether a student has voted.
type Vote struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	CandidateID string    `json:"candidateId"`
	PositionID  string    `json:"positionId"`
	CastAt      time.Time `json:"castAt"`
	IPAddress   string    `json:"-"`
}

// VoteRequest is the student request body for casting a vote.
type VoteRequest struct {
	PositionID  string `json:"positionId" validate:"required,uuid4"`
	CandidateID string `json:"candidateId" validate:"required,uuid4"`
}

// VoteReceipt confirms a recorded ballot back to the student.
type VoteReceipt struct {
	Position  string `json:"position"`
	Candidate string `json:"candidate"`
}

// CandidateResult is one row of a position tally.
type CandidateResult struct {
	CandidateID string `json:"candidateId"`
	Name        string `json:"name"`
	StudentID   string `json:"studentId"`
	VoteCount   int    `json:"voteCount"`
	Percentage  int    `json:"percentage"`
}

// PositionResult is the aggregated outcome of one race, candidates
// ordered by descending vote count.
type PositionResult struct {
	PositionID string            `json:"positionId"`
	Position   string            `json:"position"`
	TotalVotes int               `json:"totalVotes"`
	Candidates []CandidateResult `json:"candidates"`
}
