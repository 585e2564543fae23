package session

import (
	"context"
	"encoding/json"
	"time"

	"roster/internal/domain/entity"
	"roster/internal/domain/service"
	"roster/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "roster:"

// RedisStore keeps sessions in Redis with a key TTL, so every instance sees the same sessions.
type RedisStore struct {
	client *goredis.Client
	prefix string
}

// NewRedisStore creates a store on client. Keys are namespaced with prefix.
func NewRedisStore(client *goredis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisStore{client: client, prefix: prefix + "session:"}
}

var _ service.SessionStore = (*RedisStore)(nil)

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}

// Put registers token for claims for at most ttl.
func (s *RedisStore) Put(ctx context.Context, token string, claims entity.SessionClaims, ttl time.Duration) error {
	if ttl <= 0 {
		return service.ErrInvalidSessionTTL
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if err := s.client.Set(ctx, s.key(token), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}

// Get returns the claims registered for token.
func (s *RedisStore) Get(ctx context.Context, token string) (*entity.SessionClaims, error) {
	payload, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, service.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	var claims entity.SessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &claims, nil
}

// Remove revokes token.
func (s *RedisStore) Remove(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return errors.Wrap(err, "failed to remove session")
	}

	return nil
}
