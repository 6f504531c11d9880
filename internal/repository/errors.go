package repository

import "errors"

// Sentinel errors returned by repositories. Handlers map these onto HTTP
// statuses; anything else is treated as an internal failure.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)
