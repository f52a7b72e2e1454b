package repositories

import (
	"context"

	"auth-service/internal/domain/entities"
)

// UserRepository is the credential store. Implementations must make
// Create atomic with respect to the email uniqueness check: two concurrent
// creates with the same email yield exactly one success, the other fails
// with domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
}
