package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the work factor the stored hashes were created with.
const DefaultBcryptCost = 12

type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &Hasher{cost: cost}
}

// Hash applies the salted adaptive transform; equal inputs produce different
// outputs across calls because the salt is embedded in the result.
func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether password matches hash. A wrong password is false,
// never an error.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
