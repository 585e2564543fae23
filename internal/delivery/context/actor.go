package context

import (
	"log/slog"

	"roster/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	keyActor ContextKey = "actor"
	keyToken ContextKey = "token"
)

// SetActor stores the authenticated identity and the bearer token it was resolved from.
// The request-scoped logger, when present, is enriched with the actor.
func SetActor(c echo.Context, actor entity.SessionClaims, token string) {
	c.Set(string(keyActor), actor)
	c.Set(string(keyToken), token)

	ctx := c.Request().Context()
	if logger := GetLogger(ctx); logger != nil {
		logger = logger.With(slog.String("actor_profile_id", actor.ProfileID.Hex()), slog.String("actor_role", actor.Role.String()))
		c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
	}
}

// GetActor returns the identity stored by SetActor.
func GetActor(c echo.Context) (entity.SessionClaims, bool) {
	actor, ok := c.Get(string(keyActor)).(entity.SessionClaims)

	return actor, ok
}

// GetToken returns the bearer token stored by SetActor.
func GetToken(c echo.Context) (string, bool) {
	token, ok := c.Get(string(keyToken)).(string)

	return token, ok && token != ""
}
