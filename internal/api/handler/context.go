package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnector/api/internal/api/middleware"
)

// ctxUserID extracts the identity injected by the Auth middleware. A missing
// id on a protected route means the middleware did not run, so fail with 401
// before any service call.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
