package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/usersvc/users-api/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", subject)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(expired); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for expired token, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Validate(tampered); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for tampered token, got %v", err)
	}
}

func TestTokenService_ForeignKey(t *testing.T) {
	other := NewTokenService("other-secret", time.Hour)
	token, err := other.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Validate(token); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for foreign signature, got %v", err)
	}
}

func TestTokenService_WrongAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(hs512); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong algorithm, got %v", err)
	}
}

func TestTokenService_MissingSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(token); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing subject, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(garbage); err != domain.ErrInvalidCredentials {
			t.Fatalf("expected ErrInvalidCredentials for %q, got %v", garbage, err)
		}
	}
}
