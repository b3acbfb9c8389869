package service

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "password" {
		t.Fatalf("expected password to be hashed")
	}
	if !h.Verify("password", hash) {
		t.Fatalf("correct password did not verify")
	}
	if h.Verify("other-password", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestHasher_SaltDivergence(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := h.Hash("password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password are identical; salt not random")
	}
	if !h.Verify("password", first) || !h.Verify("password", second) {
		t.Fatalf("both hashes should verify against the password")
	}
}

func TestHasher_MalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	for _, malformed := range []string{"", "not-a-bcrypt-hash", "$2a$nonsense"} {
		if h.Verify("password", malformed) {
			t.Fatalf("malformed hash %q verified", malformed)
		}
	}
}

func TestHasher_CostClamped(t *testing.T) {
	h := NewHasher(-1)

	hash, err := h.Hash("password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !h.Verify("password", hash) {
		t.Fatalf("hash from clamped cost did not verify")
	}
}
