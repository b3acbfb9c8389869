package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/usersvc/users-api/internal/core/domain"
	"github.com/usersvc/users-api/internal/core/ports"
)

// AuthService orchestrates login (verify credentials, issue token) and
// request authorization (validate token, resolve identity, check role).
type AuthService struct {
	repo   ports.UserRepository
	hasher *Hasher
	tokens *TokenService
	logger zerolog.Logger

	// dummyHash is compared against when the email does not exist, so the
	// miss costs the same as a real verification and timing does not reveal
	// whether an account exists.
	dummyHash string
}

func NewAuthService(repo ports.UserRepository, hasher *Hasher, tokens *TokenService, logger zerolog.Logger) *AuthService {
	dummy, err := hasher.Hash("decoy")
	if err != nil {
		// bcrypt only fails on an out-of-range cost, which NewHasher clamps.
		panic("auth: computing decoy hash: " + err.Error())
	}
	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
		dummyHash: dummy,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	id, hash, err := s.repo.CredentialMaterial(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, hash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(id)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", id).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	// Never trust stale claims beyond the identity binding: the live record
	// is re-fetched on every request. A subject deleted after issuance fails
	// exactly like an invalid token.
	user, err := s.repo.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) RequireAdmin(user *domain.User) error {
	if user == nil || user.Role != domain.RoleAdmin {
		return domain.ErrNotAdmin
	}
	return nil
}
