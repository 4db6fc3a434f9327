package service

import (
	"context"
	"time"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
	"github.com/Dharmub376/Digital-Chunab/internal/repository"
)

type StudentService struct {
	students  *repository.StudentRepo
	positions *repository.PositionRepo
	votes     *repository.VoteRepo
}

func NewStudentService(students *repository.StudentRepo, positions *repository.PositionRepo, votes *repository.VoteRepo) *StudentService {
	return &StudentService{students: students, positions: positions, votes: votes}
}

// OpenPositions returns the races currently accepting votes, with the
// caller's voted status derived from the votes table.
func (s *StudentService) OpenPositions(ctx context.Context, studentID string) ([]model.PositionWithStatus, error) {
	now := time.Now()
	positions, err := s.positions.ListOpen(ctx, now)
	if err != nil {
		return nil, err
	}

	voted, err := s.votes.VotedPositionIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}

	out := make([]model.PositionWithStatus, 0, len(positions))
	for _, p := range positions {
		out = append(out, model.PositionWithStatus{
			PositionWithCandidates: p,
			HasVoted:               voted[p.ID],
			TimeRemainingMS:        p.EndTime.Sub(now).Milliseconds(),
		})
	}
	return out, nil
}

// Dashboard aggregates the student landing view: identity, open races with
// voted status, and the total number of ballots the student has cast.
func (s *StudentService) Dashboard(ctx context.Context, studentID string) (*model.StudentDashboardResponse, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	positions, err := s.OpenPositions(ctx, studentID)
	if err != nil {
		return nil, err
	}

	total, err := s.votes.CountByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &model.StudentDashboardResponse{
		Student: model.StudentSummary{
			Name:      student.Name,
			StudentID: student.StudentID,
			Email:     student.Email,
		},
		Positions:  positions,
		TotalVotes: total,
	}, nil
}

// Profile returns the student's identity and voting history. The history is
// a join over the votes table, not stored per-student state.
func (s *StudentService) Profile(ctx context.Context, studentID string) (*model.StudentProfileResponse, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	history, err := s.votes.History(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []model.VotingHistoryEntry{}
	}

	return &model.StudentProfileResponse{
		ID:            student.ID,
		StudentID:     student.StudentID,
		Name:          student.Name,
		Email:         student.Email,
		VotingHistory: history,
	}, nil
}
