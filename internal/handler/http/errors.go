package http

import "errors"

// Sentinel errors used by the authentication middleware when resolving
// the session token from the request. Callers can match against them
// with [errors.Is].
var (
	// ErrNoTokenProvided is returned when the request carries neither an
	// "Authorization" header nor the session cookie.
	ErrNoTokenProvided = errors.New("no session token provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a Bearer scheme followed by a
	// token value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the resolved token value is an
	// empty string.
	ErrEmptyToken = errors.New("empty session token")
)
