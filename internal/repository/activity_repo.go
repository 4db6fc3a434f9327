package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
)

type ActivityRepo struct {
	pool *pgxpool.Pool
}

func NewActivityRepo(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

// Record appends one audit entry. Entries are never updated or deleted.
func (r *ActivityRepo) Record(ctx context.Context, actorID, actorType, action, details, ip string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO activity_logs (id, actor_id, actor_type, action, details, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.NewString(), actorID, actorType, action, details, ip)
	return err
}

// Recent returns the latest entries, newest first.
func (r *ActivityRepo) Recent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, actor_id, actor_type, action, details, ip_address, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.ActivityLog{}
	for rows.Next() {
		var e model.ActivityLog
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorType, &e.Action, &e.Details, &e.IPAddress, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// List returns a page of audit entries, newest first, with the total count.
func (r *ActivityRepo) List(ctx context.Context, page, limit int) ([]model.ActivityLog, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM activity_logs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, actor_id, actor_type, action, details, ip_address, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := []model.ActivityLog{}
	for rows.Next() {
		var e model.ActivityLog
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorType, &e.Action, &e.Details, &e.IPAddress, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}
