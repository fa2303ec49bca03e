package usecase

import (
	"context"
	"log"
	"time"

	"dmless/internal/domain/candidate"
	"dmless/internal/domain/job"

	"github.com/google/uuid"
)

// DashboardStats are per-status counts over every candidate record belonging
// to one recruiter's jobs. Recomputed on demand; Total always equals
// Shortlisted + KnockedOut because no third status exists.
type DashboardStats struct {
	Total       int `json:"total"`
	Shortlisted int `json:"shortlisted"`
	KnockedOut  int `json:"knocked_out"`
}

const statsCacheTTL = 30 * time.Second

type DashboardUsecase interface {
	Stats(ctx context.Context, recruiterID uuid.UUID) (DashboardStats, error)
	Jobs(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error)
}

type Dashboard struct {
	jobs       job.Repository
	candidates candidate.Repository
	cache      Cache
	logger     *log.Logger
}

func NewDashboardUsecase(jobs job.Repository, candidates candidate.Repository, cache Cache, logger *log.Logger) *Dashboard {
	return &Dashboard{jobs: jobs, candidates: candidates, cache: cache, logger: logger}
}

func (u *Dashboard) Stats(ctx context.Context, recruiterID uuid.UUID) (DashboardStats, error) {
	key := dashboardStatsKey(recruiterID)
	if u.cache != nil {
		var cached DashboardStats
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	owned, err := u.jobs.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return DashboardStats{}, ErrInternal
	}
	if len(owned) == 0 {
		return DashboardStats{}, nil
	}

	jobIDs := make([]uuid.UUID, 0, len(owned))
	for _, j := range owned {
		jobIDs = append(jobIDs, j.ID)
	}

	statuses, err := u.candidates.StatusesByJobIDs(ctx, jobIDs)
	if err != nil {
		return DashboardStats{}, ErrInternal
	}

	stats := reduceStatuses(statuses)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, stats, statsCacheTTL)
	}
	return stats, nil
}

// Jobs lists the recruiter's postings, newest first, for the dashboard.
func (u *Dashboard) Jobs(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error) {
	owned, err := u.jobs.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, ErrInternal
	}
	return owned, nil
}

func reduceStatuses(statuses []candidate.Status) DashboardStats {
	var stats DashboardStats
	for _, s := range statuses {
		switch s {
		case candidate.StatusShortlisted:
			stats.Shortlisted++
		case candidate.StatusKnockedOut:
			stats.KnockedOut++
		default:
			continue
		}
		stats.Total++
	}
	return stats
}

func dashboardStatsKey(recruiterID uuid.UUID) string {
	return "dashboard:stats:" + recruiterID.String()
}
