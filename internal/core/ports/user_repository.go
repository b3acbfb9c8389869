package ports

import (
	"context"

	"github.com/usersvc/users-api/internal/core/domain"
)

// UserRepository is the persistence boundary for user records.
//
// Email uniqueness is enforced by the storage layer itself, never by a
// read-then-write in application code: two concurrent Create calls with the
// same email yield exactly one success and one domain.ErrEmailTaken.
type UserRepository interface {
	// Create inserts a new user. The implementation assigns the id and
	// timestamps. A uniqueness violation on email surfaces as ErrEmailTaken.
	Create(ctx context.Context, email, credentialHash string, role domain.Role) (*domain.User, error)

	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateEmail atomically sets a new email for the given id, advancing
	// updated_at and preserving id and created_at. Missing id surfaces as
	// ErrUserNotFound, a collision with another user as ErrEmailTaken.
	UpdateEmail(ctx context.Context, id, newEmail string) (*domain.User, error)

	// Delete removes the user. Deleting a non-existent id is not an error.
	Delete(ctx context.Context, id string) error

	// List returns users ordered by id so pagination is stable across calls.
	// The role and credential hash are not part of the listing projection.
	List(ctx context.Context, limit, offset int64) ([]domain.User, error)

	// CredentialMaterial is the only accessor that returns the stored hash.
	// It exists exclusively for the auth engine's login path and must never
	// be reachable from an externally-facing read path.
	CredentialMaterial(ctx context.Context, email string) (id, credentialHash string, err error)
}
