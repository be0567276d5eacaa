package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher is the bcrypt-backed implementation of [Hasher].
// The zero cost value falls back to bcrypt.DefaultCost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [BcryptHasher] with the given work factor.
// Costs outside the range supported by the bcrypt library are replaced with
// bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

// Hash implements [Hasher]. The returned digest embeds the generated salt
// and the cost parameter.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Verify implements [Hasher].
func (h *BcryptHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
