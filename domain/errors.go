package domain

import "errors"

// Credential errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Session errors. An expired session is observationally identical to an
// absent one, so there is no separate expired sentinel.
var (
	ErrSessionNotFound = errors.New("session not found")
)

// One-time token errors
var (
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token has expired")
	ErrTokenConsumed = errors.New("token already consumed")
)

// Hashing errors
var (
	ErrHashingUnavailable = errors.New("no usable password hashing algorithm")
)
