//go:build integration

package session

import (
	"context"
	"testing"
	"time"

	"roster/internal/domain/service"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestIntegration_RedisStore(t *testing.T) {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err)

	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, "test:")
	claims := testClaims()

	require.NoError(t, store.Put(ctx, "token", claims, time.Hour))
	got, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, claims, *got)

	ttl, err := client.TTL(ctx, "test:session:token").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	require.NoError(t, store.Remove(ctx, "token"))
	_, err = store.Get(ctx, "token")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	require.NoError(t, store.Put(ctx, "short", claims, time.Second))
	time.Sleep(1500 * time.Millisecond)
	_, err = store.Get(ctx, "short")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}
