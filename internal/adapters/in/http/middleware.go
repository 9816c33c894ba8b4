package http

import (
	"net/http"
	"time"

	"entregaloya/internal/core/application/usecases/queries"
	"entregaloya/internal/core/domain/model/session"
	"entregaloya/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "sesion"

const actorContextKey = "actor"

// SessionMiddleware resolves the session cookie into an Actor and stores
// it in the request context. Resolution is best-effort; enforcement is a
// separate, per-route concern so public routes share the same chain.
type SessionMiddleware struct {
	sessionActorHandler queries.GetSessionActorQueryHandler
}

// NewSessionMiddleware creates the middleware around the session lookup.
func NewSessionMiddleware(sessionActorHandler queries.GetSessionActorQueryHandler) *SessionMiddleware {
	return &SessionMiddleware{sessionActorHandler: sessionActorHandler}
}

// ResolveActor reads the session cookie, resolves it to an actor and puts
// the actor into the context. Requests without a cookie, or with a token
// that is unknown or expired, continue unauthenticated.
func (m *SessionMiddleware) ResolveActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		token, err := session.TokenFromString(cookie.Value)
		if err != nil {
			return next(c)
		}

		query, err := queries.NewGetSessionActorQuery(token, time.Now().UTC())
		if err != nil {
			return next(c)
		}

		actor, err := m.sessionActorHandler.Handle(c.Request().Context(), query)
		if err != nil {
			return next(c)
		}

		c.Set(actorContextKey, actor)
		return next(c)
	}
}

// RequireAuth rejects requests that carry no resolved actor.
func (m *SessionMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := actorFromContext(c); !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Msg: "No autenticado"})
		}
		return next(c)
	}
}

// RequireRole rejects authenticated actors of the wrong role. Must run
// after RequireAuth.
func (m *SessionMiddleware) RequireRole(role user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := actorFromContext(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Msg: "No autenticado"})
			}
			if actor.Role != role {
				return c.JSON(http.StatusForbidden, ErrorResponse{Msg: "Acceso denegado"})
			}
			return next(c)
		}
	}
}

func actorFromContext(c echo.Context) (session.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(session.Actor)
	return actor, ok
}
