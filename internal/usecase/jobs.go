package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"dmless/internal/domain/job"

	"github.com/google/uuid"
)

// CreateJobInput is the authoring form: role, description and the fixed
// screening quiz. The quiz is immutable once the job is published.
type CreateJobInput struct {
	Role        string
	Description string
	Quiz        []job.Question
}

type JobsUsecase interface {
	Create(ctx context.Context, recruiterID uuid.UUID, in CreateJobInput) (job.Job, error)
}

type Jobs struct {
	jobs   job.Repository
	logger *log.Logger

	now func() time.Time
}

func NewJobsUsecase(jobs job.Repository, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, logger: logger, now: time.Now}
}

func (u *Jobs) Create(ctx context.Context, recruiterID uuid.UUID, in CreateJobInput) (job.Job, error) {
	j, err := job.New(recruiterID, in.Role, in.Description, in.Quiz, u.now())
	if err != nil {
		return job.Job{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] create failed | recruiter=%s err=%v", recruiterID, err)
		}
		return job.Job{}, ErrInternal
	}

	if u.logger != nil {
		u.logger.Printf("[Jobs] job published | id=%s slug=%s questions=%d", j.ID, j.Slug, len(j.Quiz))
	}
	return j, nil
}
