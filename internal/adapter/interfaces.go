// Package adapter provides outbound integrations with external identity
// providers.
//
// The primary abstraction is [GoogleProvider], which decouples the
// authentication service from the OAuth2 consent/exchange mechanics and
// the provider's userinfo endpoint.
package adapter

import (
	"context"

	"github.com/jurnalresonansi/resonansi-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/google_provider.go -package=mock

// GoogleProvider covers the two provider-side steps of the federated
// login flow: producing a consent URL and resolving an authorization
// code to a verified profile.
type GoogleProvider interface {
	// AuthCodeURL returns the provider consent page URL carrying the
	// given anti-forgery state value.
	AuthCodeURL(state string) string

	// FetchProfile exchanges the authorization code for an access token
	// and fetches the subject's profile from the userinfo endpoint.
	FetchProfile(ctx context.Context, code string) (models.GoogleProfile, error)
}
