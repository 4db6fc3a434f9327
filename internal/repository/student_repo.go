package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
)

// ErrDuplicate is returned when a unique column (email, student number)
// already holds the given value.
var ErrDuplicate = errors.New("record already exists")

const studentColumns = `id, student_id, name, email, password_hash, created_at, updated_at`

type StudentRepo struct {
	pool *pgxpool.Pool
}

func NewStudentRepo(pool *pgxpool.Pool) *StudentRepo {
	return &StudentRepo{pool: pool}
}

func scanStudent(row pgx.Row) (*model.Student, error) {
	var s model.Student
	err := row.Scan(&s.ID, &s.StudentID, &s.Name, &s.Email, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepo) FindByID(ctx context.Context, id string) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

func (r *StudentRepo) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE email = LOWER($1)`, email))
}

// List returns a page of students, newest first, optionally filtered by a
// case-insensitive search over name, student number, and email.
func (r *StudentRepo) List(ctx context.Context, search string, page, limit int) ([]model.Student, int, error) {
	pattern := "%" + search + "%"

	var total int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM students
		WHERE $1 = '' OR name ILIKE $2 OR student_id ILIKE $2 OR email ILIKE $2`,
		search, pattern).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+studentColumns+` FROM students
		WHERE $1 = '' OR name ILIKE $2 OR student_id ILIKE $2 OR email ILIKE $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		search, pattern, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.StudentID, &s.Name, &s.Email, &s.PasswordHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

func (r *StudentRepo) Create(ctx context.Context, studentID, name, email, passwordHash string) (*model.Student, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO students (id, student_id, name, email, password_hash)
		VALUES ($1, $2, $3, LOWER($4), $5)
		RETURNING `+studentColumns,
		uuid.NewString(), studentID, name, email, passwordHash)

	s, err := scanStudent(row)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return s, nil
}

// Update edits a student's identity fields. passwordHash may be empty, in
// which case the stored hash is left untouched.
func (r *StudentRepo) Update(ctx context.Context, id, studentID, name, email, passwordHash string) (*model.Student, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE students
		SET student_id = $2, name = $3, email = LOWER($4),
		    password_hash = COALESCE(NULLIF($5, ''), password_hash),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+studentColumns,
		id, studentID, name, email, passwordHash)

	s, err := scanStudent(row)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}
	return s, nil
}

// Delete removes a student and (via FK cascade) their votes.
func (r *StudentRepo) Delete(ctx context.Context, id string) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`DELETE FROM students WHERE id = $1 RETURNING `+studentColumns, id))
}

func (r *StudentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&n)
	return n, err
}

// mapUniqueViolation converts a postgres 23505 error into ErrDuplicate.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}
