package session

import (
	"context"
	"testing"
	"time"

	"roster/internal/domain/service"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore_RejectsNonPositiveTTL(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, "test:")

	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{name: "zero keeps the key forever", ttl: 0},
		{name: "negative keeps the previous ttl", ttl: goredis.KeepTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Put(context.Background(), "token", testClaims(), tt.ttl)
			assert.ErrorIs(t, err, service.ErrInvalidSessionTTL)
		})
	}
}
