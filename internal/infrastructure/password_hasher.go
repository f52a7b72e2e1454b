package infrastructure

import "golang.org/x/crypto/bcrypt"

// PasswordHasher owns the hashing policy: salted bcrypt with a fixed cost.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check compares via bcrypt itself, which is constant-time on the digest.
func (h *PasswordHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsHash reports whether value is already a bcrypt hash. It backs the
// hash-once policy: a password is hashed exactly when its value changes, so
// an update flow carrying an already-hashed, unchanged password must detect
// it and skip re-hashing. No endpoint updates users yet; the check is here
// for the first flow that does.
func (h *PasswordHasher) IsHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}
