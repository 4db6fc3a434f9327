package model

import "time"

// Student represents a registered voter.
type Student struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"studentId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateStudentRequest is the admin request body for registering a student.
type CreateStudentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

// UpdateStudentRequest is the admin request body for editing a student.
// Password is optional; when empty the stored hash is kept.
type UpdateStudentRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"omitempty,min=6"`
}

// StudentListResponse is the paginated admin listing payload.
type StudentListResponse struct {
	Students    []Student `json:"students"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
	Total       int       `json:"total"`
}

// VotingHistoryEntry is one past ballot in a student's profile,
// derived from the votes table.
type VotingHistoryEntry struct {
	PositionID    string    `json:"positionId"`
	PositionTitle string    `json:"position"`
	CandidateID   string    `json:"candidateId"`
	CandidateName string    `json:"candidate"`
	VotedAt       time.Time `json:"votedAt"`
}

// StudentProfileResponse is the student-facing profile payload.
type StudentProfileResponse struct {
	ID            string               `json:"id"`
	StudentID     string               `json:"studentId"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	VotingHistory []VotingHistoryEntry `json:"votingHistory"`
}

// StudentDashboardResponse aggregates everything the student landing view needs.
type StudentDashboardResponse struct {
	Student    StudentSummary       `json:"student"`
	Positions  []PositionWithStatus `json:"positions"`
	TotalVotes int                  `json:"totalVotes"`
}

// StudentSummary is the abbreviated identity block on the dashboard.
type StudentSummary struct {
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	Email     string `json:"email"`
}
