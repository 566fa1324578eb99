package domain

import "errors"

// Credential and session errors. Every failure inside the core resolves to
// one of these, wrapped with context where useful, and never to a panic.
var (
	ErrMalformedCredential = errors.New("malformed credential")
	ErrExpiredCredential   = errors.New("credential expired")
	ErrIncompleteClaims    = errors.New("credential claims incomplete")
	ErrNoCredential        = errors.New("no credential stored")
	ErrUnauthenticated     = errors.New("not authenticated")
	ErrForbidden           = errors.New("access forbidden")
	ErrUnknownResource     = errors.New("unknown resource")
)

// Login errors raised by authenticators.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidUser        = errors.New("invalid user")
)
