package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
)

const positionColumns = `id, title, description, start_time, end_time, is_active, created_at, updated_at`

type PositionRepo struct {
	pool *pgxpool.Pool
}

func NewPositionRepo(pool *pgxpool.Pool) *PositionRepo {
	return &PositionRepo{pool: pool}
}

func scanPosition(row pgx.Row) (*model.Position, error) {
	var p model.Position
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.StartTime, &p.EndTime, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PositionRepo) FindByID(ctx context.Context, id string) (*model.Position, error) {
	return scanPosition(r.pool.QueryRow(ctx,
		`SELECT `+positionColumns+` FROM positions WHERE id = $1`, id))
}

// ListAll returns every position with its candidates, newest race first.
func (r *PositionRepo) ListAll(ctx context.Context) ([]model.PositionWithCandidates, error) {
	return r.list(ctx, `
		SELECT `+positionColumns+` FROM positions
		ORDER BY created_at DESC`)
}

// ListOpen returns active positions whose voting window contains now,
// with their active candidates embedded.
func (r *PositionRepo) ListOpen(ctx context.Context, now time.Time) ([]model.PositionWithCandidates, error) {
	return r.list(ctx, `
		SELECT `+positionColumns+` FROM positions
		WHERE is_active = TRUE AND start_time <= $1 AND end_time >= $1
		ORDER BY created_at DESC`, now)
}

func (r *PositionRepo) list(ctx context.Context, query string, args ...any) ([]model.PositionWithCandidates, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := []model.PositionWithCandidates{}
	index := map[string]int{}
	ids := []string{}
	for rows.Next() {
		var p model.Position
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.StartTime, &p.EndTime, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		index[p.ID] = len(positions)
		ids = append(ids, p.ID)
		positions = append(positions, model.PositionWithCandidates{Position: p, Candidates: []model.Candidate{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return positions, nil
	}

	crows, err := r.pool.Query(ctx, `
		SELECT `+candidateColumns+` FROM candidates
		WHERE position_id = ANY($1) AND is_active = TRUE
		ORDER BY created_at`, ids)
	if err != nil {
		return nil, err
	}
	defer crows.Close()

	for crows.Next() {
		var c model.Candidate
		if err := crows.Scan(&c.ID, &c.PositionID, &c.Name, &c.StudentID, &c.Description, &c.Manifesto, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[c.PositionID]; ok {
			positions[i].Candidates = append(positions[i].Candidates, c)
		}
	}
	return positions, crows.Err()
}

func (r *PositionRepo) Create(ctx context.Context, req model.PositionRequest) (*model.Position, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return scanPosition(r.pool.QueryRow(ctx, `
		INSERT INTO positions (id, title, description, start_time, end_time, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+positionColumns,
		uuid.NewString(), req.Title, req.Description, req.StartTime, req.EndTime, active))
}

func (r *PositionRepo) Update(ctx context.Context, id string, req model.PositionRequest) (*model.Position, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return scanPosition(r.pool.QueryRow(ctx, `
		UPDATE positions
		SET title = $2, description = $3, start_time = $4, end_time = $5,
		    is_active = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING `+positionColumns,
		id, req.Title, req.Description, req.StartTime, req.EndTime, active))
}

// Delete removes a position and (via FK cascade) its candidates and votes.
func (r *PositionRepo) Delete(ctx context.Context, id string) (*model.Position, error) {
	return scanPosition(r.pool.QueryRow(ctx,
		`DELETE FROM positions WHERE id = $1 RETURNING `+positionColumns, id))
}

func (r *PositionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM positions`).Scan(&n)
	return n, err
}
