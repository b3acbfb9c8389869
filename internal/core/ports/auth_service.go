package ports

import (
	"context"

	"github.com/usersvc/users-api/internal/core/domain"
)

// AuthService is the authentication and authorization engine.
type AuthService interface {
	// Login verifies the credentials and returns a bearer token bound to the
	// user's id. Unknown email and wrong password are indistinguishable to
	// the caller: both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)

	// Resolve validates a bearer token and re-fetches the live user record.
	// A structurally valid token whose subject no longer exists fails the
	// same way as an invalid token.
	Resolve(ctx context.Context, token string) (*domain.User, error)

	// RequireAdmin is a pure predicate: nil for admins,
	// domain.ErrNotAdmin otherwise. Evaluated per operation, never cached.
	RequireAdmin(user *domain.User) error
}
