package model

import "time"

// Admin represents a privileged election administrator.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminDashboardResponse holds the admin landing-page aggregates.
type AdminDashboardResponse struct {
	TotalStudents   int           `json:"totalStudents"`
	TotalCandidates int           `json:"totalCandidates"`
	TotalPositions  int           `json:"totalPositions"`
	TotalVotes      int           `json:"totalVotes"`
	RecentActivity  []ActivityLog `json:"recentActivity"`
}
