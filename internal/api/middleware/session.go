package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glossario/glossary-api/internal/core/ports"
)

// Context keys injected by Session for downstream middleware and handlers.
const (
	ContextUsername = "username"
	ContextRole     = "role"
	ContextToken    = "session_token"
)

// Session resolves the opaque session cookie against the session store and
// injects the identity snapshot into context. Requests without a live session
// are rejected before the handler runs.
func Session(auth ports.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}

			session, err := auth.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set(ContextUsername, session.Identity.Username)
			c.Set(ContextRole, session.Identity.Role)
			c.Set(ContextToken, session.Token)

			return next(c)
		}
	}
}
