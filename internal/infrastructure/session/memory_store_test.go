package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"dmless/internal/domain/screening"

	"github.com/google/uuid"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	st := NewMemoryStore()
	sess := screening.New()

	if err := st.Save(context.Background(), sess, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != sess.ID || got.Stage != screening.StageLoading {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	// stored value is a snapshot, not the live pointer
	sess.Stage = screening.StageNotFound
	got2, err := st.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got2.Stage != screening.StageLoading {
		t.Fatalf("store must not alias the saved session")
	}
}

func TestMemoryStore_MissingAndExpired(t *testing.T) {
	st := NewMemoryStore()

	if _, err := st.Get(context.Background(), uuid.New()); !errors.Is(err, screening.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	now := time.Now()
	st.now = func() time.Time { return now }

	sess := screening.New()
	if err := st.Save(context.Background(), sess, time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}

	st.now = func() time.Time { return now.Add(2 * time.Minute) }
	if _, err := st.Get(context.Background(), sess.ID); !errors.Is(err, screening.ErrSessionNotFound) {
		t.Fatalf("expected expiry, got %v", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	st := NewMemoryStore()
	sess := screening.New()
	_ = st.Save(context.Background(), sess, 0)

	if err := st.Delete(context.Background(), sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Get(context.Background(), sess.ID); !errors.Is(err, screening.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
