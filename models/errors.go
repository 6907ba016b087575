package models

import "errors"

// Domain errors shared by the repositories and handlers. Lookups that
// find no row return ErrNotFound instead of a driver error so callers
// can translate it to a 404 without inspecting store internals.
var (
	ErrNotFound           = errors.New("record not found")
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
