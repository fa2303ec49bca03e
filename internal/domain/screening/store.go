package screening

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("screening session not found")

// Store keeps in-flight sessions between HTTP requests. Sessions are
// ephemeral: an expired or missing session surfaces as ErrSessionNotFound and
// the candidate starts over from the apply link.
type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
