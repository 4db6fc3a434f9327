package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
	"github.com/Dharmub376/Digital-Chunab/internal/repository"
)

// Vote rejection reasons, each a distinct failure mode of the casting
// sequence. Handlers map these to 400 responses verbatim.
var (
	ErrPositionUnavailable = errors.New("Position not found or inactive")
	ErrVotingClosed        = errors.New("Voting is not currently open for this position")
	ErrInvalidCandidate    = errors.New("Invalid candidate for this position")
	ErrAlreadyVoted        = errors.New("You have already voted for this position")
)

// Narrow store views used by the casting sequence.
type positionFinder interface {
	FindByID(ctx context.Context, id string) (*model.Position, error)
}

type candidateFinder interface {
	FindByID(ctx context.Context, id string) (*model.Candidate, error)
}

type ballotStore interface {
	CastBallot(ctx context.Context, studentID, candidateID, positionID, ip, details string) error
}

type VotingService struct {
	votes      ballotStore
	positions  positionFinder
	candidates candidateFinder
	cache      *CacheService
}

func NewVotingService(votes ballotStore, positions positionFinder, candidates candidateFinder, cache *CacheService) *VotingService {
	return &VotingService{votes: votes, positions: positions, candidates: candidates, cache: cache}
}

// VotingOpen reports whether now falls within the race's [start, end] window.
func VotingOpen(start, end, now time.Time) bool {
	return !now.Before(start) && !now.After(end)
}

// CandidateEligible reports whether the candidate may receive votes in the
// given position.
func CandidateEligible(c *model.Candidate, positionID string) bool {
	return c != nil && c.IsActive && c.PositionID == positionID
}

// Cast attempts to record one vote for the student.
//
// The position/window/candidate preconditions are advisory reads; the
// duplicate-vote precondition is not checked up front at all. It is folded
// into the ballot insert itself, which relies on the unique
// (student, position) index, so concurrent duplicate submissions resolve to
// exactly one recorded vote no matter how the requests interleave.
//
// Only a missing row maps to a domain rejection; any other store failure
// propagates unchanged so callers report it as a server error.
func (s *VotingService) Cast(ctx context.Context, studentID string, req model.VoteRequest, ip string) (*model.VoteReceipt, error) {
	position, err := s.positions.FindByID(ctx, req.PositionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPositionUnavailable
		}
		return nil, err
	}
	if !position.IsActive {
		return nil, ErrPositionUnavailable
	}

	if !VotingOpen(position.StartTime, position.EndTime, time.Now()) {
		return nil, ErrVotingClosed
	}

	candidate, err := s.candidates.FindByID(ctx, req.CandidateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCandidate
		}
		return nil, err
	}
	if !CandidateEligible(candidate, req.PositionID) {
		return nil, ErrInvalidCandidate
	}

	details := fmt.Sprintf("Voted for %s in %s", candidate.Name, position.Title)
	if err := s.votes.CastBallot(ctx, studentID, candidate.ID, position.ID, ip, details); err != nil {
		if errors.Is(err, repository.ErrAlreadyVoted) {
			return nil, ErrAlreadyVoted
		}
		return nil, err
	}

	// Tallies are derived from votes on read; only the cached aggregate
	// needs refreshing.
	if s.cache != nil {
		if err := s.cache.InvalidateResults(ctx); err != nil {
			log.Printf("cache: invalidate results error: %v", err)
		}
	}

	return &model.VoteReceipt{Position: position.Title, Candidate: candidate.Name}, nil
}
