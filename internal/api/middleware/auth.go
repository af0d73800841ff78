package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnector/api/internal/core/service"
)

// HeaderToken is the request header carrying the raw signed token.
const HeaderToken = "x-auth-token"

// ContextUserID is the echo context key the middleware populates.
const ContextUserID = "user_id"

// Auth verifies the token from the x-auth-token header and injects the
// resolved user id into the request context. Protected handlers read the
// identity from there and never re-verify.
func Auth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderToken)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token, authorization denied")
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
			}

			c.Set(ContextUserID, userID)
			return next(c)
		}
	}
}
