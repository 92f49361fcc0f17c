package logic

import "errors"

var (
	// ErrMissingSigningKey means the issuer was built without key, issuer
	// or audience. Fatal at startup, never shown to callers.
	ErrMissingSigningKey = errors.New("missing token signing material")

	// ErrUnauthenticated means no identity could be resolved for the
	// request. Nothing is persisted when it is returned.
	ErrUnauthenticated = errors.New("user not authenticated")

	// ErrUsernameTaken is returned by Register for a duplicate username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidSenderType rejects a batch containing an unknown sender
	// classification before anything is written.
	ErrInvalidSenderType = errors.New("invalid sender type")
)
