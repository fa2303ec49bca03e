package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dmless/internal/domain/job"

	"github.com/google/uuid"
)

type recordingJobRepo struct {
	created []job.Job
	err     error
}

func (m *recordingJobRepo) Create(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, j)
	return nil
}

func (m *recordingJobRepo) GetBySlug(context.Context, string) (job.Job, error) {
	return job.Job{}, job.ErrNotFound
}

func (m *recordingJobRepo) ListByRecruiter(context.Context, uuid.UUID) ([]job.Job, error) {
	return nil, nil
}

func authoringQuiz() []job.Question {
	return []job.Question{
		{Text: "q1", Options: []string{"a", "b", "c", "d"}, CorrectOption: 2},
	}
}

func TestJobsCreate_PublishesWithSlug(t *testing.T) {
	repo := &recordingJobRepo{}
	uc := NewJobsUsecase(repo, nil)
	uc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	recruiterID := uuid.New()
	j, err := uc.Create(context.Background(), recruiterID, CreateJobInput{
		Role:        "Frontend Developer Intern",
		Description: "Build UIs",
		Quiz:        authoringQuiz(),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if j.RecruiterID != recruiterID {
		t.Fatalf("job must be owned by its author")
	}
	if !strings.HasPrefix(j.Slug, "frontend-developer-intern-") {
		t.Fatalf("unexpected slug: %q", j.Slug)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted job, got %d", len(repo.created))
	}
}

func TestJobsCreate_InvalidQuiz(t *testing.T) {
	uc := NewJobsUsecase(&recordingJobRepo{}, nil)

	_, err := uc.Create(context.Background(), uuid.New(), CreateJobInput{
		Role:        "Backend Engineer",
		Description: "d",
		Quiz:        []job.Question{{Text: "q", Options: []string{"a", "b"}, CorrectOption: 0}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobsCreate_RepositoryError(t *testing.T) {
	uc := NewJobsUsecase(&recordingJobRepo{err: errors.New("boom")}, nil)

	_, err := uc.Create(context.Background(), uuid.New(), CreateJobInput{
		Role:        "Backend Engineer",
		Description: "d",
		Quiz:        authoringQuiz(),
	})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
