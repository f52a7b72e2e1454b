package services

import (
	"context"
	"errors"
	"log"

	"auth-service/internal/application/command"
	"auth-service/internal/application/interfaces"
	"auth-service/internal/application/mapper"
	"auth-service/internal/application/query"
	"auth-service/internal/domain"
	"auth-service/internal/domain/entities"
	"auth-service/internal/domain/repositories"
	"auth-service/internal/infrastructure"
)

type AuthService struct {
	userRepo   repositories.UserRepository
	hasher     *infrastructure.PasswordHasher
	jwtService *infrastructure.JWTService
	tokenCache *infrastructure.TokenCache
}

// NewAuthService wires the credential store, the hashing policy and the
// token signer. tokenCache may be nil, in which case issued tokens are not
// cached.
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher *infrastructure.PasswordHasher,
	jwtService *infrastructure.JWTService,
	tokenCache *infrastructure.TokenCache,
) interfaces.AuthService {
	return &AuthService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		tokenCache: tokenCache,
	}
}

func (s *AuthService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	// Check if a user with this email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, registerCommand.Email)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if existingUser != nil {
		return nil, domain.ErrUserExists
	}

	hashedPassword, err := s.hasher.Hash(registerCommand.Password)
	if err != nil {
		return nil, domain.Internal(err)
	}

	newUser := entities.NewUser(registerCommand.Name, registerCommand.Email, hashedPassword)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, domain.ErrCreateFailed
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		// A concurrent registration may win the unique-index race after
		// the lookup above; that is still a duplicate, not a store fault.
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, domain.ErrCreateFailed
	}

	token, err := s.jwtService.GenerateToken(createdUser.ID)
	if err != nil {
		return nil, domain.Internal(err)
	}

	s.cacheToken(token, createdUser.ID)

	return &command.RegisterUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if !s.hasher.Check(loginCommand.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, domain.Internal(err)
	}

	s.cacheToken(token, user.ID)

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

// VerifyToken returns the subject id of a valid token. Verification is
// stateless; the cache is never consulted.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	return s.jwtService.ValidateToken(tokenString)
}

func (s *AuthService) GetProfile(ctx context.Context, id string) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}

// cacheToken stores an issued token asynchronously. Failures are logged
// and never fail the request.
func (s *AuthService) cacheToken(token, userID string) {
	if s.tokenCache == nil {
		return
	}
	go func() {
		if err := s.tokenCache.SetToken(context.Background(), token, userID, s.jwtService.TTL()); err != nil {
			log.Printf("Failed to cache token: %v", err)
		}
	}()
}
