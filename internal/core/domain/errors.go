package domain

import "errors"

var (
	// ErrInvalidCredentials covers every authentication failure: wrong
	// password, malformed or expired token, bad signature. Callers must not
	// distinguish the cause to avoid credential probing.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	ErrPostNotFound = errors.New("post not found")
	// ErrForbidden is returned when an authenticated user acts on a post
	// they do not own.
	ErrForbidden = errors.New("access forbidden")
)
