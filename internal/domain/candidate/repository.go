package candidate

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Insert persists a terminal record. The insert is idempotent on
	// r.SessionID: a retry of the same logical submission returns the id of
	// the already-stored record instead of duplicating it.
	Insert(ctx context.Context, r Record) (uuid.UUID, error)
	// StatusesByJobIDs returns the status of every record belonging to the
	// given jobs. Only statuses are needed for funnel aggregation.
	StatusesByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]Status, error)
}
