package model

import "time"

// Position represents an election race with a voting time window.
type Position struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PositionWithCandidates embeds the candidate list for listing endpoints.
type PositionWithCandidates struct {
	Position
	Candidates []Candidate `json:"candidates"`
}

// PositionWithStatus adds the caller's voting state, derived from the
// votes table rather than stored per student.
type PositionWithStatus struct {
	PositionWithCandidates
	HasVoted        bool  `json:"hasVoted"`
	TimeRemainingMS int64 `json:"timeRemaining"`
}

// PositionRequest is the admin request body for creating or updating a position.
type PositionRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	IsActive    *bool     `json:"isActive"`
}
