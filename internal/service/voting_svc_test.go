package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
	"github.com/Dharmub376/Digital-Chunab/internal/repository"
)

func TestVotingOpen(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"before window", start.Add(-time.Minute), false},
		{"exactly at start", start, true},
		{"mid window", start.Add(4 * time.Hour), true},
		{"exactly at end", end, true},
		{"after window", end.Add(time.Second), false},
		{"long past end", end.Add(240 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VotingOpen(start, end, tt.now); got != tt.want {
				t.Errorf("VotingOpen(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestCandidateEligible(t *testing.T) {
	candidate := &model.Candidate{ID: "c1", PositionID: "p1", IsActive: true}

	if !CandidateEligible(candidate, "p1") {
		t.Error("active candidate of the same position should be eligible")
	}
	if CandidateEligible(candidate, "p2") {
		t.Error("candidate of a different position must be rejected")
	}
	if CandidateEligible(nil, "p1") {
		t.Error("nil candidate must be rejected")
	}

	inactive := &model.Candidate{ID: "c2", PositionID: "p1", IsActive: false}
	if CandidateEligible(inactive, "p1") {
		t.Error("inactive candidate must be rejected")
	}
}

type fakePositions struct {
	position *model.Position
	err      error
	calls    int
}

func (f *fakePositions) FindByID(ctx context.Context, id string) (*model.Position, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.position, nil
}

type fakeCandidates struct {
	candidate *model.Candidate
	err       error
	calls     int
}

func (f *fakeCandidates) FindByID(ctx context.Context, id string) (*model.Candidate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.candidate, nil
}

type fakeBallots struct {
	err   error
	calls int

	studentID   string
	candidateID string
	positionID  string
}

func (f *fakeBallots) CastBallot(ctx context.Context, studentID, candidateID, positionID, ip, details string) error {
	f.calls++
	f.studentID, f.candidateID, f.positionID = studentID, candidateID, positionID
	return f.err
}

func openRace() *model.Position {
	now := time.Now()
	return &model.Position{
		ID:        "p1",
		Title:     "President",
		IsActive:  true,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	}
}

func voteReq() model.VoteRequest {
	return model.VoteRequest{PositionID: "p1", CandidateID: "c1"}
}

func TestCast_Success(t *testing.T) {
	ballots := &fakeBallots{}
	svc := NewVotingService(ballots,
		&fakePositions{position: openRace()},
		&fakeCandidates{candidate: &model.Candidate{ID: "c1", PositionID: "p1", Name: "Alice", IsActive: true}},
		nil)

	receipt, err := svc.Cast(context.Background(), "s1", voteReq(), "10.0.0.1")
	if err != nil {
		t.Fatalf("Cast() error: %v", err)
	}
	if receipt.Position != "President" || receipt.Candidate != "Alice" {
		t.Errorf("receipt = %+v", receipt)
	}
	if ballots.calls != 1 {
		t.Fatalf("ballot store called %d times, want 1", ballots.calls)
	}
	if ballots.studentID != "s1" || ballots.candidateID != "c1" || ballots.positionID != "p1" {
		t.Errorf("ballot recorded (%s, %s, %s)", ballots.studentID, ballots.candidateID, ballots.positionID)
	}
}

func TestCast_AlreadyVoted(t *testing.T) {
	ballots := &fakeBallots{err: repository.ErrAlreadyVoted}
	svc := NewVotingService(ballots,
		&fakePositions{position: openRace()},
		&fakeCandidates{candidate: &model.Candidate{ID: "c1", PositionID: "p1", Name: "Alice", IsActive: true}},
		nil)

	_, err := svc.Cast(context.Background(), "s1", voteReq(), "10.0.0.1")
	if !errors.Is(err, ErrAlreadyVoted) {
		t.Errorf("err = %v, want ErrAlreadyVoted", err)
	}
}

func TestCast_MissingPosition(t *testing.T) {
	candidates := &fakeCandidates{}
	svc := NewVotingService(&fakeBallots{}, &fakePositions{err: pgx.ErrNoRows}, candidates, nil)

	_, err := svc.Cast(context.Background(), "s1", voteReq(), "10.0.0.1")
	if !errors.Is(err, ErrPositionUnavailable) {
		t.Errorf("err = %v, want ErrPositionUnavailable", err)
	}
	if candidates.calls != 0 {
		t.Error("candidate lookup must not run when the position is missing")
	}
}

func TestCast_InactivePosition(t *testing.T) {
	position := openRace()
	position.IsActive = false
	svc := NewVotingService(&fakeBallots{}, &fakePositions{position: position}, &fakeCandidates{}, nil)

	_, err := svc.Cast(context.Background(), "s1", voteReq(), "10.0.0.1")
	if !errors.Is(err, ErrPositionUnavailable) {
		t.Errorf("err = %v, want ErrPositionUnavailable", err)
	}
}

func TestCast_ClosedWindow(t *testing.T) {
	position := openRace()
	position.StartTime = time.Now().Add(-2 * time.Hour)
	position.EndTime = time.Now().Add(-time.Hour)
	candidates := &fakeCandidates{}
	svc := NewVotingService(&fakeBallots{}, &fakePositions{position: position}, candidates, nil)

	_, err := svc.Cast(context.Background(), "s1", voteReq(), "10.0.0.1")
	if !errors.Is(err, ErrVotingClosed) {
		t.Errorf("err = %v, want ErrVotingClosed", err)
	}
	if candidates.calls != 0 {
		t.Error("candidate lookup must not run when the window is closed")
	}
}

func TestCast_MissingCandidate(t *testing.T) {
	svc := NewVotingService(&fakeBallots{}, &fakePositions{position: openRace()},
		&fakeCandidates{err: pgx.ErrNoRows}, nil)

	_, err := svc.Cast(context.Background(), "s1", voteReq(), "10.0.0.1")
	if !errors.Is(err, ErrInvalidCandidate) {
		t.Errorf("err = %v, want ErrInvalidCandidate", err)
	}
}

func TestCast_WrongRaceCandidate(t *testing.T) {
	ballots := &fakeBallots{}
	svc := NewVotingService(ballots, &fakePositions{position: openRace()},
		&fakeCandidates{candidate: &model.Candidate{ID: "c1", PositionID: "p2", Name: "Bob", IsActive: true}},
		nil)

	_, err := svc.Cast(context.Background(), "s1", voteReq(), "10.0.0.1")
	if !errors.Is(err, ErrInvalidCandidate) {
		t.Errorf("err = %v, want ErrInvalidCandidate", err)
	}
	if ballots.calls != 0 {
		t.Error("ballot must not be recorded for a candidate in another race")
	}
}

// Store failures must surface as-is, never as a domain rejection the handler
// would turn into a 400.
func TestCast_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	t.Run("position lookup", func(t *testing.T) {
		svc := NewVotingService(&fakeBallots{}, &fakePositions{err: storeErr}, &fakeCandidates{}, nil)
		_, err := svc.Cast(context.Background(), "s1", voteReq(), "10.0.0.1")
		if !errors.Is(err, storeErr) {
			t.Errorf("err = %v, want the store error", err)
		}
		if errors.Is(err, ErrPositionUnavailable) {
			t.Error("store failure must not map to ErrPositionUnavailable")
		}
	})

	t.Run("candidate lookup", func(t *testing.T) {
		svc := NewVotingService(&fakeBallots{}, &fakePositions{position: openRace()},
			&fakeCandidates{err: storeErr}, nil)
		_, err := svc.Cast(context.Background(), "s1", voteReq(), "10.0.0.1")
		if !errors.Is(err, storeErr) {
			t.Errorf("err = %v, want the store error", err)
		}
		if errors.Is(err, ErrInvalidCandidate) {
			t.Error("store failure must not map to ErrInvalidCandidate")
		}
	})

	t.Run("ballot insert", func(t *testing.T) {
		svc := NewVotingService(&fakeBallots{err: storeErr}, &fakePositions{position: openRace()},
			&fakeCandidates{candidate: &model.Candidate{ID: "c1", PositionID: "p1", Name: "Alice", IsActive: true}},
			nil)
		_, err := svc.Cast(context.Background(), "s1", voteReq(), "10.0.0.1")
		if !errors.Is(err, storeErr) {
			t.Errorf("err = %v, want the store error", err)
		}
		if errors.Is(err, ErrAlreadyVoted) {
			t.Error("store failure must not map to ErrAlreadyVoted")
		}
	})
}
