package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/usersvc/users-api/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenService issues and validates HS256 bearer tokens binding a subject id
// to an absolute expiry. Validation is a pure computation over the signature
// and expiry; it never consults the user store.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting {sub: subjectID, exp: now + ttl}.
func (t *TokenService) Issue(subjectID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": subjectID,
		"exp": time.Now().Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate returns the subject bound to the token. Malformed input, a bad or
// foreign signature, a missing subject, and an elapsed expiry all map to
// domain.ErrInvalidCredentials; Validate never panics on untrusted input.
func (t *TokenService) Validate(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidCredentials
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidCredentials
	}
	return sub, nil
}
