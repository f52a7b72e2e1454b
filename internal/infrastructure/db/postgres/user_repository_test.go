package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"auth-service/internal/domain"
	"auth-service/internal/domain/entities"
)

func newTestRepository(t *testing.T) *UserRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UserModel{}))

	return NewUserRepository(db).(*UserRepository)
}

func validatedUser(t *testing.T, name, email, passwordHash string) *entities.ValidatedUser {
	t.Helper()

	user, err := entities.NewValidatedUser(entities.NewUser(name, email, passwordHash))
	require.NoError(t, err)
	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, validatedUser(t, "Ana", "ana@x.com", "$2a$10$hash"))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	byEmail, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "Ana", byEmail.Name)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "ana@x.com", byID.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, validatedUser(t, "Ana", "ana@x.com", "$2a$10$hash"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, validatedUser(t, "Otra", "ana@x.com", "$2a$10$other"))
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserRepository_FindMissing(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user, err := repo.FindByEmail(ctx, "missing@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByID(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_EmailIsCaseSensitive(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, validatedUser(t, "Ana", "Ana@x.com", "$2a$10$hash"))
	require.NoError(t, err)

	user, err := repo.FindByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Nil(t, user, "emails are compared exactly as stored")
}
