package usecase

import (
	"context"
	"time"

	"dmless/internal/domain/candidate"

	"github.com/google/uuid"
)

// Cache is the JSON cache surface used for dashboard stats and submit locks.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
}

// ResumeStore persists resume blobs at a caller-chosen path and returns the
// location to reference from the candidate record.
type ResumeStore interface {
	Save(ctx context.Context, path string, data []byte) (string, error)
}

// FunnelNotifier fans out "a terminal record was written" to live dashboard
// listeners. Implementations must not block the screening flow.
type FunnelNotifier interface {
	CandidateRecorded(recruiterID, jobID uuid.UUID, status candidate.Status)
}
