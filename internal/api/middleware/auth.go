package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/usersvc/users-api/internal/core/ports"
)

// UserKey is the echo context key under which Auth stores the resolved caller.
const UserKey = "user"

// Auth resolves the bearer token to a live user record and injects it into
// the request context. Every failure, from a missing header to a deleted
// subject, yields the same generic 401.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c)
			}

			user, err := auth.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return unauthorized(c)
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
}
