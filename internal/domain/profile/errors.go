package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidTheme    = errors.New("invalid theme")
)
