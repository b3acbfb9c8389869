package ports

import (
	"context"

	"github.com/usersvc/users-api/internal/core/domain"
)

// UserService defines the account lifecycle use-cases. Self-service
// operations act on the caller's resolved identity, never on an id supplied
// by the caller.
type UserService interface {
	// Register creates a CUSTOMER account from an email and plaintext
	// password. An existing email surfaces as domain.ErrEmailTaken.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// UpdateField updates a single mutable field on the caller's own record.
	// Only "email" is updatable; anything else is domain.ErrInvalidField.
	UpdateField(ctx context.Context, callerID, field, value string) (*domain.User, error)

	// Delete removes the caller's own record. Idempotent.
	Delete(ctx context.Context, callerID string) error

	// ListAll returns a page of users. Requires the caller to be an admin.
	ListAll(ctx context.Context, caller *domain.User, limit, skip int64) ([]domain.User, error)
}
