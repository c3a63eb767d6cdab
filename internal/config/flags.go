package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-env environment name (development/production)
//	-client-url frontend origin for OAuth redirects
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token validity window (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s")
//	-s3-endpoint, -s3-region, -s3-bucket blob store location
//	-google-client-id, -google-client-secret, -google-callback-url OAuth client
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var environment string
	var clientURL string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var s3Endpoint, s3Region, s3Bucket string
	var googleClientID, googleClientSecret, googleCallbackURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&environment, "env", "", "Environment name (development/production)")
	flag.StringVar(&clientURL, "client-url", "", "Frontend origin URL")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&s3Endpoint, "s3-endpoint", "", "Blob store endpoint override")
	flag.StringVar(&s3Region, "s3-region", "", "Blob store region")
	flag.StringVar(&s3Bucket, "s3-bucket", "", "Blob store bucket")
	flag.StringVar(&googleClientID, "google-client-id", "", "Google OAuth client id")
	flag.StringVar(&googleClientSecret, "google-client-secret", "", "Google OAuth client secret")
	flag.StringVar(&googleCallbackURL, "google-callback-url", "", "Google OAuth callback URL")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Environment: environment,
			ClientURL:   clientURL,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DBConfig{
				DSN: databaseDSN,
			},
			S3: S3{
				Endpoint: s3Endpoint,
				Region:   s3Region,
				Bucket:   s3Bucket,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		OAuth: OAuth{
			GoogleClientID:     googleClientID,
			GoogleClientSecret: googleClientSecret,
			GoogleCallbackURL:  googleCallbackURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range, checks IP correctness
// unless host is "localhost", and returns an error if the format or
// values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
