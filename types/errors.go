package types

import "errors"

var (
	// ErrBadRequest is returned when a request is missing required fields
	ErrBadRequest = errors.New("bad request")

	// ErrInvalidUser is returned when a username is not in the static directory
	ErrInvalidUser = errors.New("invalid user")

	// ErrNotFound is returned when a mail is absent or not owned by the caller.
	// The two cases are deliberately conflated so the service never reveals
	// whether another user's mail exists.
	ErrNotFound = errors.New("not found")

	// ErrCorruptState is returned when the stored collection blob cannot be decoded
	ErrCorruptState = errors.New("corrupt collection state")

	// ErrInternal (for unhandled failures)
	ErrInternal = errors.New("internal error")
)
