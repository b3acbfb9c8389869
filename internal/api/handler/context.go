package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/usersvc/users-api/internal/api/middleware"
	"github.com/usersvc/users-api/internal/core/domain"
)

// ctxUser extracts the caller resolved by the Auth middleware. Its presence
// proves the middleware ran; handlers reached without it reject with 401
// rather than acting on a missing identity.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
