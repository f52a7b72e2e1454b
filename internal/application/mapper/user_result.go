package mapper

import (
	"auth-service/internal/application/common"
	"auth-service/internal/domain/entities"
)

// NewUserResultFromEntity maps a stored user to its outward shape. The
// password hash never leaves the application layer.
func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		ID:        user.ID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
		Name:      user.Name,
		Email:     user.Email,
	}
}
