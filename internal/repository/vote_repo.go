package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
)

// ErrAlreadyVoted is returned when the (student, position) ballot slot is
// already taken. Detected from the unique index, never from a prior read.
var ErrAlreadyVoted = errors.New("already voted for this position")

type VoteRepo struct {
	pool *pgxpool.Pool
}

func NewVoteRepo(pool *pgxpool.Pool) *VoteRepo {
	return &VoteRepo{pool: pool}
}

// CastBallot records a vote and its audit entry in a single transaction.
//
// The insert uses ON CONFLICT DO NOTHING against the unique
// (student_id, position_id) index, so the duplicate check and the write are
// one atomic step: under concurrent double-submission exactly one insert
// reports an affected row and every other attempt gets ErrAlreadyVoted.
// Nothing else is committed when that happens.
func (r *VoteRepo) CastBallot(ctx context.Context, studentID, candidateID, positionID, ip, details string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		INSERT INTO votes (id, student_id, candidate_id, position_id, ip_address)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, position_id) DO NOTHING`,
		uuid.NewString(), studentID, candidateID, positionID, ip)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyVoted
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO activity_logs (id, actor_id, actor_type, action, details, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), studentID, model.ActorStudent, model.ActionCastVote, details, ip)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Count returns the total number of ballots recorded.
func (r *VoteRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM votes`).Scan(&n)
	return n, err
}

// CountByCandidate returns the number of ballots recorded for a candidate.
func (r *VoteRepo) CountByCandidate(ctx context.Context, candidateID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM votes WHERE candidate_id = $1`, candidateID).Scan(&n)
	return n, err
}

// CountByStudent returns the number of ballots a student has cast.
func (r *VoteRepo) CountByStudent(ctx context.Context, studentID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM votes WHERE student_id = $1`, studentID).Scan(&n)
	return n, err
}

// VotedPositionIDs returns the set of positions the student has voted in.
// Voted status is always derived from votes, never stored on the student.
func (r *VoteRepo) VotedPositionIDs(ctx context.Context, studentID string) (map[string]bool, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT position_id FROM votes WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	voted := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		voted[id] = true
	}
	return voted, rows.Err()
}

// History returns a student's past ballots, newest first, joined to the
// race and candidate names.
func (r *VoteRepo) History(ctx context.Context, studentID string) ([]model.VotingHistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.position_id, p.title, v.candidate_id, c.name, v.cast_at
		FROM votes v
		JOIN positions p ON p.id = v.position_id
		JOIN candidates c ON c.id = v.candidate_id
		WHERE v.student_id = $1
		ORDER BY v.cast_at DESC`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []model.VotingHistoryEntry
	for rows.Next() {
		var e model.VotingHistoryEntry
		if err := rows.Scan(&e.PositionID, &e.PositionTitle, &e.CandidateID, &e.CandidateName, &e.VotedAt); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

// TallyRow is one (position, candidate, count) row of the raw tally.
type TallyRow struct {
	PositionID    string
	PositionTitle string
	CandidateID   string
	CandidateName string
	StudentID     string
	VoteCount     int
}

// TallyAll counts ballots per candidate across every position. Counts come
// from the votes table itself, so they can never drift from the authoritative
// records. The join matches ballots on both candidate and position, so a
// ballot only ever counts toward the race it was cast in. Rows arrive grouped
// by position, candidates by descending count (ties in creation order).
func (r *VoteRepo) TallyAll(ctx context.Context) ([]TallyRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.title, c.id, c.name, c.student_id, COUNT(v.id)
		FROM positions p
		JOIN candidates c ON c.position_id = p.id
		LEFT JOIN votes v ON v.candidate_id = c.id AND v.position_id = c.position_id
		GROUP BY p.id, p.title, p.created_at, c.id, c.name, c.student_id, c.created_at
		ORDER BY p.created_at, COUNT(v.id) DESC, c.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tally []TallyRow
	for rows.Next() {
		var t TallyRow
		if err := rows.Scan(&t.PositionID, &t.PositionTitle, &t.CandidateID, &t.CandidateName, &t.StudentID, &t.VoteCount); err != nil {
			return nil, err
		}
		tally = append(tally, t)
	}
	return tally, rows.Err()
}
