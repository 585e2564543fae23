package session

import (
	"context"
	"log/slog"

	"roster/config"
	"roster/internal/domain/service"
	"roster/internal/errors"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Redis  *goredis.Client `optional:"true"`
}

// New selects the session store configured under session.store.
func New(params Params) (service.SessionStore, error) {
	driver := config.SessionStoreMemory
	if params.Config.Session != nil && params.Config.Session.Store != "" {
		driver = params.Config.Session.Store
	}

	switch driver {
	case config.SessionStoreRedis:
		if params.Redis == nil {
			return nil, errors.New("redis session store requires a redis client")
		}
		prefix := ""
		if params.Config.Redis != nil {
			prefix = params.Config.Redis.KeyPrefix
		}
		params.Logger.Info("Using redis session store")

		return NewRedisStore(params.Redis, prefix), nil

	case config.SessionStoreMemory:
		store := NewMemoryStore()
		sweepCtx, cancelSweep := context.WithCancel(context.Background())
		params.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				go store.runSweeper(sweepCtx, sweepInterval)

				return nil
			},
			OnStop: func(_ context.Context) error {
				cancelSweep()
				store.Clear()

				return nil
			},
		})
		params.Logger.Info("Using in-memory session store")

		return store, nil

	default:
		return nil, errors.Errorf("unknown session store %q", driver)
	}
}
