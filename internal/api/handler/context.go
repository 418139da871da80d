package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/glossario/glossary-api/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// performs a fast-fail check before any service call: a non-empty username
// and token prove the middleware ran on this route.
func ctxIdentity(c echo.Context) (username, token string, err error) {
	username, _ = c.Get(middleware.ContextUsername).(string)
	token, _ = c.Get(middleware.ContextToken).(string)
	if username == "" || token == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return username, token, nil
}
