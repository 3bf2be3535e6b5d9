// Package session provides the alternative server-side session stores.
package session

import (
	"context"
	"encoding/json"
	"time"

	"kampina/internal/domain/entity"
	"kampina/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "kampina:sess:"

// redisStore keeps each session under its own key with a TTL matching ExpiresAt.
type redisStore struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a session store on top of a redis client.
func NewRedisStore(client redis.Cmdable, keyPrefix string) repository.SessionStore {
	if keyPrefix == "" {
		keyPrefix = defaultRedisKeyPrefix
	}

	return &redisStore{
		client: client,
		prefix: keyPrefix,
		now:    time.Now,
	}
}

func (s *redisStore) key(id string) string {
	return s.prefix + id
}

// Get loads a live session.
func (s *redisStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "redis get session")
	}

	sess := &entity.Session{}
	if err := json.Unmarshal(data, sess); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}
	sess.ID = id

	// Key expiry has second granularity.
	if sess.Expired(s.now()) {
		return nil, repository.ErrSessionNotFound
	}

	return sess, nil
}

// Save writes the session with a TTL. Already expired sessions are removed instead.
func (s *redisStore) Save(ctx context.Context, session *entity.Session) error {
	ttl := session.TTL(s.now())
	if ttl <= 0 {
		return s.Delete(ctx, session.ID)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := s.client.Set(ctx, s.key(session.ID), data, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set session")
	}

	return nil
}

// Delete removes the session.
func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return errors.Wrap(err, "redis delete session")
	}

	return nil
}
