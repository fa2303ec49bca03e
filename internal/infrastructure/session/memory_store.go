package session

import (
	"context"
	"sync"
	"time"

	"dmless/internal/domain/screening"

	"github.com/google/uuid"
)

// MemoryStore is a process-local session store used in tests and as a
// single-instance fallback when Redis is not reachable at startup.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]entry

	now func() time.Time
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]entry),
		now:      time.Now,
	}
}

func (s *MemoryStore) Save(ctx context.Context, sess *screening.Session, ttl time.Duration) error {
	b, err := marshalSession(sess)
	if err != nil {
		return err
	}

	var exp time.Time
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.sessions[sess.ID] = entry{data: b, expiresAt: exp}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*screening.Session, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, screening.ErrSessionNotFound
	}
	if !e.expiresAt.IsZero() && s.now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, screening.ErrSessionNotFound
	}

	return unmarshalSession(e.data)
}

func (s *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
