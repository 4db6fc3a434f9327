package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
	"github.com/Dharmub376/Digital-Chunab/internal/repository"
	"github.com/Dharmub376/Digital-Chunab/pkg/hash"
)

// ErrCandidateLocked rejects moving a candidate who already holds recorded
// ballots. Ballots are pinned to the race they were cast in, so the tally
// for every position always matches its vote records.
var ErrCandidateLocked = errors.New("Cannot move a candidate with recorded votes to another position")

// AdminService orchestrates admin CRUD plus the audit trail entries every
// mutating action leaves behind.
type AdminService struct {
	students   *repository.StudentRepo
	positions  *repository.PositionRepo
	candidates *repository.CandidateRepo
	votes      *repository.VoteRepo
	activity   *repository.ActivityRepo
	cache      *CacheService
}

func NewAdminService(students *repository.StudentRepo, positions *repository.PositionRepo, candidates *repository.CandidateRepo, votes *repository.VoteRepo, activity *repository.ActivityRepo, cache *CacheService) *AdminService {
	return &AdminService{
		students:   students,
		positions:  positions,
		candidates: candidates,
		votes:      votes,
		activity:   activity,
		cache:      cache,
	}
}

// record appends an audit entry; failures are logged, never surfaced, so an
// audit hiccup cannot fail an otherwise-committed action.
func (s *AdminService) record(ctx context.Context, adminID, action, details, ip string) {
	if err := s.activity.Record(ctx, adminID, model.ActorAdmin, action, details, ip); err != nil {
		log.Printf("activity: record %s error: %v", action, err)
	}
}

func (s *AdminService) invalidateResults(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateResults(ctx); err != nil {
		log.Printf("cache: invalidate results error: %v", err)
	}
}

// Dashboard returns platform totals and the most recent audit entries.
func (s *AdminService) Dashboard(ctx context.Context) (*model.AdminDashboardResponse, error) {
	totalStudents, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalCandidates, err := s.candidates.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalPositions, err := s.positions.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalVotes, err := s.votes.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.activity.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &model.AdminDashboardResponse{
		TotalStudents:   totalStudents,
		TotalCandidates: totalCandidates,
		TotalPositions:  totalPositions,
		TotalVotes:      totalVotes,
		RecentActivity:  recent,
	}, nil
}

// ListStudents returns one page of students matching the search filter.
func (s *AdminService) ListStudents(ctx context.Context, search string, page, limit int) (*model.StudentListResponse, error) {
	students, total, err := s.students.List(ctx, search, page, limit)
	if err != nil {
		return nil, err
	}
	totalPages := (total + limit - 1) / limit
	return &model.StudentListResponse{
		Students:    students,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}, nil
}

func (s *AdminService) CreateStudent(ctx context.Context, adminID string, req model.CreateStudentRequest, ip string) (*model.Student, error) {
	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, err
	}
	student, err := s.students.Create(ctx, req.StudentID, req.Name, req.Email, hashed)
	if err != nil {
		return nil, err
	}
	s.record(ctx, adminID, model.ActionCreateStudent,
		fmt.Sprintf("Created student: %s (%s)", student.Name, student.StudentID), ip)
	return student, nil
}

func (s *AdminService) UpdateStudent(ctx context.Context, adminID, id string, req model.UpdateStudentRequest, ip string) (*model.Student, error) {
	hashed := ""
	if req.Password != "" {
		var err error
		hashed, err = hash.Password(req.Password)
		if err != nil {
			return nil, err
		}
	}
	student, err := s.students.Update(ctx, id, req.StudentID, req.Name, req.Email, hashed)
	if err != nil {
		return nil, err
	}
	s.record(ctx, adminID, model.ActionUpdateStudent,
		fmt.Sprintf("Updated student: %s (%s)", student.Name, student.StudentID), ip)
	return student, nil
}

func (s *AdminService) DeleteStudent(ctx context.Context, adminID, id, ip string) error {
	student, err := s.students.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.record(ctx, adminID, model.ActionDeleteStudent,
		fmt.Sprintf("Deleted student: %s (%s)", student.Name, student.StudentID), ip)
	s.invalidateResults(ctx)
	return nil
}

func (s *AdminService) ListPositions(ctx context.Context) ([]model.PositionWithCandidates, error) {
	return s.positions.ListAll(ctx)
}

func (s *AdminService) CreatePosition(ctx context.Context, adminID string, req model.PositionRequest, ip string) (*model.Position, error) {
	position, err := s.positions.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.record(ctx, adminID, model.ActionCreatePosition,
		fmt.Sprintf("Created position: %s", position.Title), ip)
	return position, nil
}

func (s *AdminService) UpdatePosition(ctx context.Context, adminID, id string, req model.PositionRequest, ip string) (*model.Position, error) {
	position, err := s.positions.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.record(ctx, adminID, model.ActionUpdatePosition,
		fmt.Sprintf("Updated position: %s", position.Title), ip)
	s.invalidateResults(ctx)
	return position, nil
}

func (s *AdminService) DeletePosition(ctx context.Context, adminID, id, ip string) error {
	position, err := s.positions.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.record(ctx, adminID, model.ActionDeletePosition,
		fmt.Sprintf("Deleted position: %s", position.Title), ip)
	s.invalidateResults(ctx)
	return nil
}

func (s *AdminService) ListCandidates(ctx context.Context) ([]model.CandidateWithPosition, error) {
	return s.candidates.ListAll(ctx)
}

// CreateCandidate registers a candidate under an existing position.
func (s *AdminService) CreateCandidate(ctx context.Context, adminID string, req model.CandidateRequest, ip string) (*model.Candidate, error) {
	if _, err := s.positions.FindByID(ctx, req.PositionID); err != nil {
		return nil, err
	}
	candidate, err := s.candidates.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.record(ctx, adminID, model.ActionCreateCandidate,
		fmt.Sprintf("Created candidate: %s (%s)", candidate.Name, candidate.StudentID), ip)
	s.invalidateResults(ctx)
	return candidate, nil
}

// CandidateMovable reports whether the candidate may be placed in the given
// race. Moving is only allowed while no ballots reference the candidate.
func CandidateMovable(existing *model.Candidate, positionID string, votes int) bool {
	return existing.PositionID == positionID || votes == 0
}

func (s *AdminService) UpdateCandidate(ctx context.Context, adminID, id string, req model.CandidateRequest, ip string) (*model.Candidate, error) {
	if _, err := s.positions.FindByID(ctx, req.PositionID); err != nil {
		return nil, err
	}

	existing, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.PositionID != req.PositionID {
		votes, err := s.votes.CountByCandidate(ctx, id)
		if err != nil {
			return nil, err
		}
		if !CandidateMovable(existing, req.PositionID, votes) {
			return nil, ErrCandidateLocked
		}
	}

	candidate, err := s.candidates.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.record(ctx, adminID, model.ActionUpdateCandidate,
		fmt.Sprintf("Updated candidate: %s (%s)", candidate.Name, candidate.StudentID), ip)
	s.invalidateResults(ctx)
	return candidate, nil
}

func (s *AdminService) DeleteCandidate(ctx context.Context, adminID, id, ip string) error {
	candidate, err := s.candidates.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.record(ctx, adminID, model.ActionDeleteCandidate,
		fmt.Sprintf("Deleted candidate: %s (%s)", candidate.Name, candidate.StudentID), ip)
	s.invalidateResults(ctx)
	return nil
}

// ActivityLog returns one page of the audit trail, newest first.
func (s *AdminService) ActivityLog(ctx context.Context, page, limit int) (*model.ActivityListResponse, error) {
	entries, total, err := s.activity.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	totalPages := (total + limit - 1) / limit
	return &model.ActivityListResponse{
		Entries:     entries,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}, nil
}
