package model

import "time"

// Actor types recorded in the audit trail.
const (
	ActorAdmin   = "Admin"
	ActorStudent = "Student"
)

// Audit actions.
const (
	ActionLogin           = "LOGIN"
	ActionCastVote        = "CAST_VOTE"
	ActionCreateStudent   = "CREATE_STUDENT"
	ActionUpdateStudent   = "UPDATE_STUDENT"
	ActionDeleteStudent   = "DELETE_STUDENT"
	ActionCreatePosition  = "CREATE_POSITION"
	ActionUpdatePosition  = "UPDATE_POSITION"
	ActionDeletePosition  = "DELETE_POSITION"
	ActionCreateCandidate = "CREATE_CANDIDATE"
	ActionUpdateCandidate = "UPDATE_CANDIDATE"
	ActionDeleteCandidate = "DELETE_CANDIDATE"
)

// ActivityLog is one append-only audit trail entry.
type ActivityLog struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actorId"`
	ActorType string    `json:"actorType"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// ActivityListResponse is the paginated audit log payload.
type ActivityListResponse struct {
	Entries     []ActivityLog `json:"entries"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	Total       int           `json:"total"`
}
