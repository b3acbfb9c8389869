package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/usersvc/users-api/internal/core/domain"
	"github.com/usersvc/users-api/internal/core/ports"
)

const (
	defaultListLimit = 10
	updatableField   = "email"
)

// UserService implements the account lifecycle on top of the user store and
// the auth engine's authorization decisions.
type UserService struct {
	repo   ports.UserRepository
	hasher *Hasher
	auth   ports.AuthService
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *Hasher, auth ports.AuthService, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, auth: auth, logger: logger}
}

// Register creates a new CUSTOMER account. Role assignment is not exposed on
// the public registration path.
func (s *UserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, email, hash, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// UpdateField updates one field on the caller's own record. Only the email
// field is mutable through this path; the role in particular is not.
func (s *UserService) UpdateField(ctx context.Context, callerID, field, value string) (*domain.User, error) {
	if field != updatableField {
		return nil, domain.ErrInvalidField
	}
	return s.repo.UpdateEmail(ctx, callerID, value)
}

func (s *UserService) Delete(ctx context.Context, callerID string) error {
	if err := s.repo.Delete(ctx, callerID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", callerID).Msg("user deleted")
	return nil
}

// ListAll returns a page of users. The admin check is evaluated here, on
// every call, before the store is touched.
func (s *UserService) ListAll(ctx context.Context, caller *domain.User, limit, skip int64) ([]domain.User, error) {
	if err := s.auth.RequireAdmin(caller); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(ctx, limit, skip)
}
