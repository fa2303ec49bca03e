package dto

import (
	"time"

	"github.com/google/uuid"

	"dmless/internal/domain/job"
)

// JobResponse is the recruiter's view of one of their postings. The quiz is
// included with correct options because the recruiter authored it.
type JobResponse struct {
	ID          uuid.UUID      `json:"id"`
	Role        string         `json:"role"`
	Description string         `json:"description"`
	Slug        string         `json:"slug"`
	Quiz        []job.Question `json:"quiz"`
	CreatedAt   time.Time      `json:"created_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Role:        j.Role,
		Description: j.Description,
		Slug:        j.Slug,
		Quiz:        j.Quiz,
		CreatedAt:   j.CreatedAt,
	}
}

func NewJobListResponse(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
