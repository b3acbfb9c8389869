package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/usersvc/users-api/internal/core/domain"
)

type stubAuthService struct {
	resolveFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Login(context.Context, string, string) (string, error) {
	return "", domain.ErrInvalidCredentials
}

func (s *stubAuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	return s.resolveFn(ctx, token)
}

func (s *stubAuthService) RequireAdmin(user *domain.User) error {
	if user == nil || user.Role != domain.RoleAdmin {
		return domain.ErrNotAdmin
	}
	return nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	resolved := &domain.User{ID: "user-1", Email: "alice@example.com", Role: domain.RoleCustomer}
	stub := &stubAuthService{
		resolveFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "token123" {
				t.Fatalf("unexpected token: %s", token)
			}
			return resolved, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(stub)(func(c echo.Context) error {
		called = true
		user, _ := c.Get(UserKey).(*domain.User)
		if user == nil || user.ID != "user-1" {
			t.Fatalf("resolved user not set in context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		resolveFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("resolve should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Fatalf("expected WWW-Authenticate header")
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		resolveFn: func(context.Context, string) (*domain.User, error) {
			t.Fatalf("resolve should not be called")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_UnresolvableToken(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		resolveFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired-or-deleted")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
