package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/usersvc/users-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Authentication and
	// authorization failures both render 401 with a generic message; the
	// cause is never exposed.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrNotAdmin):
		return http.StatusUnauthorized, domain.ErrNotAdmin.Error()
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, domain.ErrEmailTaken.Error()
	case errors.Is(err, domain.ErrInvalidField):
		return http.StatusBadRequest, domain.ErrInvalidField.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		// Only escapes through authenticated paths whose subject vanished.
		return http.StatusUnauthorized, "could not validate credentials"
	}

	// Unexpected error (storage connectivity and the like): log the real
	// cause, fail the request, keep the process alive.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
