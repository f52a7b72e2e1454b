package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Email     string
	Password  string // bcrypt hash, never the raw password
}

// NewUser builds a user with a fresh identifier. The password must already
// be hashed by the caller; entities never carry raw credentials.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      name,
		Email:     email,
		Password:  passwordHash,
	}
}

func (u *User) validate() error {
	if u.Name == "" {
		return errors.New("name must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

// SetPassword replaces the stored hash. It is the single mutation point for
// the password field: an update flow that changes the password hashes the new
// value and calls this, while updates to other fields leave the stored hash
// untouched, so a hash is never hashed again. No endpoint updates users yet;
// the method keeps that contract explicit for the first one that does.
func (u *User) SetPassword(passwordHash string) {
	u.Password = passwordHash
	u.UpdatedAt = time.Now()
}
