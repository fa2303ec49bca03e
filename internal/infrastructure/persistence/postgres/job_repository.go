package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"dmless/internal/database"
	"dmless/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	quiz, err := json.Marshal(j.Quiz)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (id, recruiter_id, role, description, slug, quiz, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		j.ID, j.RecruiterID, j.Role, j.Description, j.Slug, quiz, j.CreatedAt,
	)
	return err
}

func (r *JobRepository) GetBySlug(ctx context.Context, slug string) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, recruiter_id, role, description, slug, quiz, created_at
		 FROM jobs
		 WHERE slug = $1`,
		slug,
	)
	return scanJob(row)
}

func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, recruiter_id, role, description, slug, quiz, created_at
		 FROM jobs
		 WHERE recruiter_id = $1
		 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

type jobRow interface {
	Scan(dest ...any) error
}

func scanJob(row jobRow) (job.Job, error) {
	var j job.Job
	var quiz []byte
	err := row.Scan(&j.ID, &j.RecruiterID, &j.Role, &j.Description, &j.Slug, &quiz, &j.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	if err := json.Unmarshal(quiz, &j.Quiz); err != nil {
		return job.Job{}, err
	}
	return j, nil
}
