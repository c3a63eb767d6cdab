// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, JWT token
// generation and validation, password hashing, slug derivation, and
// HTTP response writing.
package utils

import (
	"context"

	"github.com/jurnalresonansi/resonansi-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key
// collisions with other packages that may use string-based keys.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the verified caller identity
// (subject id plus role, exactly as embedded in the session token) is
// stored in the request context by the authentication middleware.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the verified identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the verified caller identity from
// the context.
//
// Returns the identity and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
