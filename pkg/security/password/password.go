// Package password wraps bcrypt behind a small hashing component so the
// auth use case stays free of crypto details.
package password

import "golang.org/x/crypto/bcrypt"

type Hasher struct {
	cost int
}

// NewHasher returns a bcrypt-backed hasher. Cost is the bcrypt work
// factor; values outside bcrypt's supported range fall back to the
// library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted hash from plaintext. A fresh random salt is
// generated per call, so hashing the same plaintext twice yields
// different outputs.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify recomputes the digest using the salt embedded in hashed and
// compares in constant time. Malformed input is a verification failure,
// not an error.
func (h *Hasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
