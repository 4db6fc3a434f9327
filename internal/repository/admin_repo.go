package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
)

type AdminRepo struct {
	pool *pgxpool.Pool
}

func NewAdminRepo(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

func (r *AdminRepo) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	var a model.Admin
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, password_hash, created_at
		FROM admins WHERE id = $1`, id).
		Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var a model.Admin
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, password_hash, created_at
		FROM admins WHERE email = LOWER($1)`, email).
		Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SeedDefault creates the bootstrap admin account if no admin exists yet.
// Returns true when a row was inserted.
func (r *AdminRepo) SeedDefault(ctx context.Context, email, name, passwordHash string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO admins (id, email, name, password_hash)
		SELECT $1, LOWER($2), $3, $4
		WHERE NOT EXISTS (SELECT 1 FROM admins)`,
		uuid.NewString(), email, name, passwordHash)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
