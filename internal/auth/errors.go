package auth

import "errors"

var (
	// ErrEmailTaken is returned when a user with the email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)
