package service

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted password hashes. The cost is injected
// at construction so tests can trade CPU for speed.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a self-describing bcrypt hash with an embedded random salt.
// Two calls with the same password yield different hashes, both of which
// verify against it.
func (h *Hasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether password matches hash. A malformed hash verifies
// false rather than failing.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
