package interfaces

import (
	"context"

	"auth-service/internal/application/command"
	"auth-service/internal/application/query"
)

type AuthService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	VerifyToken(tokenString string) (string, error)
	GetProfile(ctx context.Context, id string) (*query.UserQueryResult, error)
}
