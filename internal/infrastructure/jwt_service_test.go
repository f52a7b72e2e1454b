package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-service/internal/domain"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("super-secret", time.Hour)

	token, err := svc.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("super-secret", -1*time.Second)

	token, err := svc.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("right-secret", time.Hour).GenerateToken("user-123")
	require.NoError(t, err)

	_, err = NewJWTService("wrong-secret", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService("super-secret", time.Hour)

	token, err := svc.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := NewJWTService("super-secret", time.Hour)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_MissingSubject(t *testing.T) {
	svc := NewJWTService("super-secret", time.Hour)

	token, err := svc.GenerateToken("")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
