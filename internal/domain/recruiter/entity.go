package recruiter

import (
	"time"

	"github.com/google/uuid"
)

// Recruiter owns jobs and sees the dashboard. Authentication yields its
// stable ID; the screening core only ever consumes that ID.
type Recruiter struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
