package pinhash

import "golang.org/x/crypto/bcrypt"

// Hasher is a bcrypt adapter for one-time PINs. bcrypt's per-guess cost is
// what makes a 6-digit space expensive to brute-force offline; the cost
// factor is configurable so tests can run at bcrypt.MinCost.
type Hasher struct {
	cost int
}

func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt hash; two calls on the same PIN yield
// different hashes.
func (h *Hasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether candidate matches the stored hash. Any failure,
// including a malformed stored hash, is reported as a mismatch rather than
// an error.
func (h *Hasher) Verify(candidate, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}
