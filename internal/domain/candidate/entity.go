package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	// StatusKnockedOut marks a candidate who answered at least one screening
	// question incorrectly.
	StatusKnockedOut Status = "knocked_out"
	// StatusShortlisted marks a candidate who answered everything correctly
	// and submitted a resume.
	StatusShortlisted Status = "shortlisted"
)

// Identity is the applicant's self-reported name and email, collected only
// after the quiz is passed. Knocked-out candidates never supply one, so a
// Record may carry a nil Identity instead of placeholder strings.
type Identity struct {
	Name  string
	Email string
}

// Record is the durable, append-only outcome of one screening session.
// Exactly one record exists per completed session; SessionID is the
// idempotency key enforcing that.
type Record struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	SessionID uuid.UUID
	Identity  *Identity
	Status    Status
	// Answers is the session's answer snapshot at submission time, one
	// selected option index per quiz question.
	Answers []int
	// ResumeLocation is set only on shortlisted records.
	ResumeLocation string
	CreatedAt      time.Time
}
