package usecase

import (
	"context"
	"errors"
	"testing"

	"dmless/internal/domain/candidate"
	"dmless/internal/domain/job"

	"github.com/google/uuid"
)

type mockDashboardJobRepo struct {
	jobs []job.Job
	err  error
}

func (m *mockDashboardJobRepo) Create(context.Context, job.Job) error { return nil }
func (m *mockDashboardJobRepo) GetBySlug(context.Context, string) (job.Job, error) {
	return job.Job{}, job.ErrNotFound
}

func (m *mockDashboardJobRepo) ListByRecruiter(context.Context, uuid.UUID) ([]job.Job, error) {
	return m.jobs, m.err
}

type mockCandidateRepo struct {
	statuses   []candidate.Status
	err        error
	queried    [][]uuid.UUID
	inserted   []candidate.Record
	insertErr  error
	existingID uuid.UUID
}

func (m *mockCandidateRepo) Insert(_ context.Context, r candidate.Record) (uuid.UUID, error) {
	if m.insertErr != nil {
		return uuid.Nil, m.insertErr
	}
	for _, prev := range m.inserted {
		if prev.SessionID == r.SessionID {
			return m.existingID, nil
		}
	}
	m.inserted = append(m.inserted, r)
	if m.existingID == uuid.Nil {
		m.existingID = uuid.New()
	}
	return m.existingID, nil
}

func (m *mockCandidateRepo) StatusesByJobIDs(_ context.Context, jobIDs []uuid.UUID) ([]candidate.Status, error) {
	m.queried = append(m.queried, jobIDs)
	return m.statuses, m.err
}

func TestDashboardStats_ZeroJobsShortCircuits(t *testing.T) {
	cands := &mockCandidateRepo{}
	uc := NewDashboardUsecase(&mockDashboardJobRepo{}, cands, nil, nil)

	stats, err := uc.Stats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats != (DashboardStats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
	if len(cands.queried) != 0 {
		t.Fatalf("zero jobs must not query candidates")
	}
}

func TestDashboardStats_ReducesAcrossJobs(t *testing.T) {
	recruiterID := uuid.New()
	j1 := job.Job{ID: uuid.New(), RecruiterID: recruiterID}
	j2 := job.Job{ID: uuid.New(), RecruiterID: recruiterID}

	cands := &mockCandidateRepo{statuses: []candidate.Status{
		candidate.StatusKnockedOut,
		candidate.StatusShortlisted,
	}}
	uc := NewDashboardUsecase(&mockDashboardJobRepo{jobs: []job.Job{j1, j2}}, cands, nil, nil)

	stats, err := uc.Stats(context.Background(), recruiterID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.Total != 2 || stats.Shortlisted != 1 || stats.KnockedOut != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Total != stats.Shortlisted+stats.KnockedOut {
		t.Fatalf("total must equal shortlisted + knocked out")
	}

	if len(cands.queried) != 1 || len(cands.queried[0]) != 2 {
		t.Fatalf("expected one query over both job ids, got %+v", cands.queried)
	}
}

func TestDashboardStats_RepositoryErrors(t *testing.T) {
	uc := NewDashboardUsecase(&mockDashboardJobRepo{err: errors.New("boom")}, &mockCandidateRepo{}, nil, nil)
	if _, err := uc.Stats(context.Background(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}

	uc = NewDashboardUsecase(
		&mockDashboardJobRepo{jobs: []job.Job{{ID: uuid.New()}}},
		&mockCandidateRepo{err: errors.New("boom")},
		nil, nil,
	)
	if _, err := uc.Stats(context.Background(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestDashboardStats_CacheHitSkipsRepositories(t *testing.T) {
	recruiterID := uuid.New()
	cache := newMockCache()
	jobs := &mockDashboardJobRepo{jobs: []job.Job{{ID: uuid.New()}}}
	cands := &mockCandidateRepo{statuses: []candidate.Status{candidate.StatusShortlisted}}
	uc := NewDashboardUsecase(jobs, cands, cacheWithStats{mockCache: cache, stats: DashboardStats{Total: 5, Shortlisted: 3, KnockedOut: 2}}, nil)

	stats, err := uc.Stats(context.Background(), recruiterID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stats.Total != 5 {
		t.Fatalf("expected cached stats, got %+v", stats)
	}
	if len(cands.queried) != 0 {
		t.Fatalf("cache hit must not query candidates")
	}
}

// cacheWithStats serves a fixed stats payload on GetJSON.
type cacheWithStats struct {
	*mockCache
	stats DashboardStats
}

func (c cacheWithStats) GetJSON(_ context.Context, _ string, out any) (bool, error) {
	if p, ok := out.(*DashboardStats); ok {
		*p = c.stats
		return true, nil
	}
	return false, nil
}
