package service

import (
	"context"
	"time"

	"roster/internal/domain/entity"
	"roster/internal/errors"
)

// ErrSessionNotFound is returned when a token has no live session.
var ErrSessionNotFound = errors.New("session not found")

// ErrInvalidSessionTTL is returned when a session is stored without a positive lifetime.
var ErrInvalidSessionTTL = errors.New("session ttl must be positive")

// SessionStore maps issued tokens to the identity they were issued for.
// A token that was removed or whose ttl elapsed must not be returned by Get.
type SessionStore interface {
	// Put registers token for claims for at most ttl.
	Put(ctx context.Context, token string, claims entity.SessionClaims, ttl time.Duration) error

	// Get returns the claims registered for token, or ErrSessionNotFound.
	Get(ctx context.Context, token string) (*entity.SessionClaims, error)

	// Remove revokes token. Removing an unknown token is not an error.
	Remove(ctx context.Context, token string) error
}
