package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dmless/internal/database"
	"dmless/internal/domain/recruiter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RecruiterRepository struct {
	db database.DB
}

func NewRecruiterRepository(db database.DB) *RecruiterRepository {
	return &RecruiterRepository{db: db}
}

func (r *RecruiterRepository) Create(ctx context.Context, rec recruiter.Recruiter) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO recruiters (id, email, password_hash) VALUES ($1, $2, $3)`,
		rec.ID, rec.Email, rec.PasswordHash,
	)
	return err
}

func (r *RecruiterRepository) GetByID(ctx context.Context, id uuid.UUID) (recruiter.Recruiter, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM recruiters WHERE id = $1`,
		id,
	)
	return scanRecruiter(row)
}

func (r *RecruiterRepository) GetByEmail(ctx context.Context, email string) (recruiter.Recruiter, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM recruiters WHERE email = $1`,
		email,
	)
	return scanRecruiter(row)
}

func (r *RecruiterRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM recruiters WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type recruiterRow interface {
	Scan(dest ...any) error
}

func scanRecruiter(row recruiterRow) (recruiter.Recruiter, error) {
	var rec recruiter.Recruiter
	err := row.Scan(&rec.ID, &rec.Email, &rec.PasswordHash, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return recruiter.Recruiter{}, recruiter.ErrNotFound
		}
		return recruiter.Recruiter{}, err
	}
	return rec, nil
}
