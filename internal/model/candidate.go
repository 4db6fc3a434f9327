package model

import "time"

// Candidate represents an entrant in exactly one position.
type Candidate struct {
	ID          string    `json:"id"`
	PositionID  string    `json:"positionId"`
	Name        string    `json:"name"`
	StudentID   string    `json:"studentId"`
	Description string    `json:"description"`
	Manifesto   string    `json:"manifesto"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CandidateWithPosition adds the race title for admin listings.
type CandidateWithPosition struct {
	Candidate
	PositionTitle string `json:"positionTitle"`
}

// CandidateRequest is the admin request body for creating or updating a candidate.
type CandidateRequest struct {
	Name        string `json:"name" validate:"required"`
	StudentID   string `json:"studentId" validate:"required"`
	PositionID  string `json:"positionId" validate:"required,uuid4"`
	Description string `json:"description" validate:"required"`
	Manifesto   string `json:"manifesto"`
	IsActive    *bool  `json:"isActive"`
}
