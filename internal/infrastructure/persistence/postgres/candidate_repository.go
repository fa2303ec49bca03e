package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"dmless/internal/database"
	"dmless/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CandidateRepository struct {
	db database.DB
}

func NewCandidateRepository(db database.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// Insert writes one terminal record. session_id carries a UNIQUE constraint;
// on conflict the insert is a no-op and the id of the record stored by the
// first attempt is returned, which makes retried submissions safe.
func (r *CandidateRepository) Insert(ctx context.Context, rec candidate.Record) (uuid.UUID, error) {
	answers, err := json.Marshal(rec.Answers)
	if err != nil {
		return uuid.Nil, err
	}

	var name, email *string
	if rec.Identity != nil {
		name = &rec.Identity.Name
		email = &rec.Identity.Email
	}

	var resumeLocation *string
	if rec.ResumeLocation != "" {
		resumeLocation = &rec.ResumeLocation
	}

	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO candidates (id, job_id, session_id, name, email, status, answers, resume_location, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (session_id) DO NOTHING
		 RETURNING id`,
		id, rec.JobID, rec.SessionID, name, email, string(rec.Status), answers, resumeLocation, createdAt,
	)

	var inserted uuid.UUID
	if err := row.Scan(&inserted); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return r.idBySession(ctx, rec.SessionID)
		}
		return uuid.Nil, err
	}
	return inserted, nil
}

func (r *CandidateRepository) idBySession(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT id FROM candidates WHERE session_id = $1`, sessionID)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *CandidateRepository) StatusesByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]candidate.Status, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT status FROM candidates WHERE job_id = ANY($1)`,
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Status, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, candidate.Status(s))
	}
	return out, rows.Err()
}
