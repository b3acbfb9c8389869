package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/usersvc/users-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not admin", domain.ErrNotAdmin, http.StatusUnauthorized},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict},
		{"invalid field", domain.ErrInvalidField, http.StatusBadRequest},
		{"user not found", domain.ErrUserNotFound, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := renderError(t, errors.New("connection reset by peer"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// the real cause stays in the logs, not the response
	if body["error"] != "internal server error" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusNotFound, "not found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["error"] != "not found" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
