package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrNoTokenSignKey is returned when no token signing key was
	// supplied by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is not specified")

	// ErrNoDatabaseDSN is returned when no database DSN was supplied
	// by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not specified")

	// ErrUnknownEnvironment is returned when APP_ENV is set to
	// something other than "development" or "production".
	ErrUnknownEnvironment = errors.New("unknown environment name")
)
