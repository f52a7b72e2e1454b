package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternal(t *testing.T) {
	cause := errors.New("store down")
	err := Internal(cause)

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "internal error: store down", err.Error())
	require.Equal(t, cause, Cause(err), "the cause must stay recoverable for diagnostics")
}

func TestCause_PassesThroughOtherErrors(t *testing.T) {
	assert.Equal(t, ErrUserExists, Cause(ErrUserExists))

	plain := errors.New("plain fault")
	assert.Equal(t, plain, Cause(plain))
}

func TestInternal_DoesNotMatchOtherKinds(t *testing.T) {
	err := Internal(errors.New("store down"))

	assert.NotErrorIs(t, err, ErrUserExists)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}
