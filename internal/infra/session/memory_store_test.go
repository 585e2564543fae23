package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"roster/config"
	"roster/internal/domain/entity"
	"roster/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx/fxtest"
)

func testClaims() entity.SessionClaims {
	return entity.SessionClaims{
		AccountID:   primitive.NewObjectID(),
		ProfileID:   primitive.NewObjectID(),
		PhoneNumber: "0900000000",
		Role:        entity.RoleStaff,
	}
}

func TestMemoryStore_PutGetRemove(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	claims := testClaims()

	require.NoError(t, store.Put(ctx, "token", claims, time.Hour))

	got, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, claims, *got)

	require.NoError(t, store.Remove(ctx, "token"))
	_, err = store.Get(ctx, "token")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	assert.NoError(t, store.Remove(ctx, "unknown"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Put(ctx, "short", testClaims(), time.Minute))
	require.NoError(t, store.Put(ctx, "long", testClaims(), time.Hour))

	now = now.Add(2 * time.Minute)
	_, err := store.Get(ctx, "short")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
	assert.Equal(t, 1, store.Len())

	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Put(ctx, "token", testClaims(), time.Hour), context.Canceled)
	_, err := store.Get(ctx, "token")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_SelectsDriver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("defaults to memory and clears on stop", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		store, err := New(Params{Lifecycle: lc, Config: &config.Config{}, Logger: logger})
		require.NoError(t, err)

		mem, ok := store.(*MemoryStore)
		require.True(t, ok)

		lc.RequireStart()
		require.NoError(t, mem.Put(context.Background(), "token", testClaims(), time.Hour))
		lc.RequireStop()
		assert.Equal(t, 0, mem.Len())
	})

	t.Run("redis without client fails", func(t *testing.T) {
		cfg := &config.Config{Session: &config.SessionConfig{Store: config.SessionStoreRedis}}
		_, err := New(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		assert.Error(t, err)
	})

	t.Run("unknown driver fails", func(t *testing.T) {
		cfg := &config.Config{Session: &config.SessionConfig{Store: "memcached"}}
		_, err := New(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		assert.Error(t, err)
	})
}

func TestMemoryStore_RejectsNonPositiveTTL(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, ttl := range []time.Duration{0, -time.Second} {
		err := store.Put(ctx, "token", testClaims(), ttl)
		assert.ErrorIs(t, err, service.ErrInvalidSessionTTL)
	}

	_, err := store.Get(ctx, "token")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}
