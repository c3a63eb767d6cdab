package config

import "time"

// Defaults applied by validate for values not supplied by any source.
const (
	defaultEnvironment    = "development"
	defaultHTTPAddress    = ":8080"
	defaultTokenIssuer    = "resonansi-api"
	defaultTokenDuration  = 7 * 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// validate checks the merged configuration for completeness and fills
// in defaults. Secrets have no defaults: a missing token sign key or
// database DSN is a startup failure.
func (c *StructuredConfig) validate() error {
	if c.App.Environment == "" {
		c.App.Environment = defaultEnvironment
	}
	if c.App.Environment != "development" && c.App.Environment != "production" {
		return ErrUnknownEnvironment
	}

	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}

	if c.Auth.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = defaultTokenIssuer
	}
	if c.Auth.TokenDuration == 0 {
		c.Auth.TokenDuration = defaultTokenDuration
	}

	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}
