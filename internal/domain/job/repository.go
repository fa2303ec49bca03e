package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	// GetBySlug resolves a public apply link. Slugs are unique by
	// construction, so at most one job matches.
	GetBySlug(ctx context.Context, slug string) (Job, error)
	// ListByRecruiter returns the recruiter's jobs, newest first.
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Job, error)
}
