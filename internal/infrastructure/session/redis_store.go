package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dmless/internal/domain/screening"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps in-flight screening sessions in Redis so any instance can
// serve the next request of a candidate's journey. Unlike the cache, a
// session store must not degrade silently: errors are surfaced.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(id uuid.UUID) string {
	return "screening:session:" + id.String()
}

func (s *RedisStore) Save(ctx context.Context, sess *screening.Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sess.ID), b, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*screening.Session, error) {
	b, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, screening.ErrSessionNotFound
		}
		return nil, err
	}

	var sess screening.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}
