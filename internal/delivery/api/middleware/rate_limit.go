package middleware

import (
	"log/slog"
	"strconv"

	"roster/config"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/errors"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/fx"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// RateLimitParams holds dependencies for the rate limiter, injected by Fx.
type RateLimitParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *goredis.Client `optional:"true"`
}

// RateLimitMiddleware throttles the public credential endpoints per client IP.
type RateLimitMiddleware struct {
	limiter *limiter.Limiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware builds the limiter. Counters live in Redis when sessions do, so every
// instance shares them; otherwise they stay in process memory. A disabled limiter returns nil.
func NewRateLimitMiddleware(params RateLimitParams) (*RateLimitMiddleware, error) {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	rate, err := limiter.NewRateFromFormatted(cfg.Login)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rate limit %q", cfg.Login)
	}

	var store limiter.Store
	switch {
	case params.Redis != nil && params.Config.Session != nil && params.Config.Session.Store == config.SessionStoreRedis:
		prefix := "ratelimit"
		if params.Config.Redis != nil && params.Config.Redis.KeyPrefix != "" {
			prefix = params.Config.Redis.KeyPrefix + ":ratelimit"
		}
		store, err = redisstore.NewStoreWithOptions(params.Redis, limiter.StoreOptions{Prefix: prefix})
		if err != nil {
			params.Logger.Warn("Failed to create Redis store for rate limiting, falling back to memory", slog.Any("error", err))
			store = memorystore.NewStore()
		}
	default:
		store = memorystore.NewStore()
	}

	return NewRateLimitMiddlewareWithStore(store, rate, params.Logger), nil
}

// NewRateLimitMiddlewareWithStore builds a limiter on an explicit store.
func NewRateLimitMiddlewareWithStore(store limiter.Store, rate limiter.Rate, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter.New(store, rate),
		logger:  logger,
	}
}

// Limit counts the request against the caller IP and rejects it once the period budget is spent.
// A nil receiver lets every request through.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	if m == nil {
		return next
	}

	return func(c echo.Context) error {
		ctx := c.Request().Context()
		key := c.Path() + "|" + c.RealIP()

		limit, err := m.limiter.Get(ctx, key)
		if err != nil {
			// The limiter store being down should not lock users out.
			m.logger.WarnContext(ctx, "Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}

		header := c.Response().Header()
		header.Set(headerRateLimitLimit, strconv.FormatInt(limit.Limit, 10))
		header.Set(headerRateLimitRemaining, strconv.FormatInt(limit.Remaining, 10))
		header.Set(headerRateLimitReset, strconv.FormatInt(limit.Reset, 10))

		if limit.Reached {
			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}
