package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
)

const candidateColumns = `id, position_id, name, student_id, description, manifesto, is_active, created_at, updated_at`

type CandidateRepo struct {
	pool *pgxpool.Pool
}

func NewCandidateRepo(pool *pgxpool.Pool) *CandidateRepo {
	return &CandidateRepo{pool: pool}
}

func scanCandidate(row pgx.Row) (*model.Candidate, error) {
	var c model.Candidate
	err := row.Scan(&c.ID, &c.PositionID, &c.Name, &c.StudentID, &c.Description, &c.Manifesto, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepo) FindByID(ctx context.Context, id string) (*model.Candidate, error) {
	return scanCandidate(r.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id))
}

// ListAll returns every candidate joined to its race title, newest first.
func (r *CandidateRepo) ListAll(ctx context.Context) ([]model.CandidateWithPosition, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.position_id, c.name, c.student_id, c.description, c.manifesto,
		       c.is_active, c.created_at, c.updated_at, p.title
		FROM candidates c
		JOIN positions p ON p.id = c.position_id
		ORDER BY c.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []model.CandidateWithPosition{}
	for rows.Next() {
		var c model.CandidateWithPosition
		if err := rows.Scan(&c.ID, &c.PositionID, &c.Name, &c.StudentID, &c.Description, &c.Manifesto,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.PositionTitle); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (r *CandidateRepo) Create(ctx context.Context, req model.CandidateRequest) (*model.Candidate, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return scanCandidate(r.pool.QueryRow(ctx, `
		INSERT INTO candidates (id, position_id, name, student_id, description, manifesto, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+candidateColumns,
		uuid.NewString(), req.PositionID, req.Name, req.StudentID, req.Description, req.Manifesto, active))
}

func (r *CandidateRepo) Update(ctx context.Context, id string, req model.CandidateRequest) (*model.Candidate, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return scanCandidate(r.pool.QueryRow(ctx, `
		UPDATE candidates
		SET position_id = $2, name = $3, student_id = $4, description = $5,
		    manifesto = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING `+candidateColumns,
		id, req.PositionID, req.Name, req.StudentID, req.Description, req.Manifesto, active))
}

// Delete removes a candidate and (via FK cascade) votes referencing it.
func (r *CandidateRepo) Delete(ctx context.Context, id string) (*model.Candidate, error) {
	return scanCandidate(r.pool.QueryRow(ctx,
		`DELETE FROM candidates WHERE id = $1 RETURNING `+candidateColumns, id))
}

func (r *CandidateRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&n)
	return n, err
}
