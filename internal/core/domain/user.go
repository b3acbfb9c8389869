package domain

import (
	"errors"
	"time"
)

// Role classifies an account for authorization decisions. It is assigned at
// creation and no code path changes it afterwards.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

var (
	// ErrInvalidCredentials covers every authentication failure: unknown
	// email, wrong password, and malformed, tampered or expired tokens.
	// Callers must not be able to tell these cases apart.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrNotAdmin           = errors.New("operation not allowed")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidField       = errors.New("field cannot be updated")
)

// User is the identity record stored for each account. The credential hash
// only crosses the store boundary on the login path and is never serialized.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	CredentialHash string    `json:"-"`
	Role           Role      `json:"user_type,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"-"`
}
