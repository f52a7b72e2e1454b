package domain

import "errors"

// Authentication error taxonomy. Every request terminates with exactly one
// of these; nothing is retried internally.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrCreateFailed       = errors.New("user could not be created")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInternal           = errors.New("internal error")
)

type internalError struct {
	cause error
}

func (e *internalError) Error() string {
	return "internal error: " + e.cause.Error()
}

func (e *internalError) Is(target error) bool {
	return target == ErrInternal
}

func (e *internalError) Unwrap() error {
	return e.cause
}

// Internal wraps an unexpected fault. Callers match it with
// errors.Is(err, ErrInternal); the cause stays available through Cause for
// operator diagnostics and the response body.
func Internal(err error) error {
	return &internalError{cause: err}
}

// Cause returns the underlying fault of an internal error, or err itself
// when it is not one.
func Cause(err error) error {
	var ie *internalError
	if errors.As(err, &ie) {
		return ie.cause
	}
	return err
}
