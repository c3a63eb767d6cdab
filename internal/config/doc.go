// Package config loads and validates the application configuration.
//
// Values are collected from three sources and merged in priority
// order: environment variables, command-line flags, and an optional
// JSON file whose path is itself taken from the first two sources.
// Validation supplies defaults for non-secret settings and fails fast
// when a secret (token sign key, database DSN) is missing.
package config
