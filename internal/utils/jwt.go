package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jurnalresonansi/resonansi-api/models"
)

// GenerateJWTToken creates a signed HMAC-SHA256 session token for the
// given account.
//
// The token carries exactly the identity claim set:
//   - Subject   (sub):  the account id
//   - role:             the account role at issuance time
//   - Issuer    (iss):  identifies the service that issued the token
//   - IssuedAt  (iat):  the current time
//   - ExpiresAt (exp):  the current time plus tokenDuration
//
// The role claim is a snapshot: verification never re-fetches it from
// storage, so a role change in the database does not affect tokens
// already in circulation until they expire.
//
// All parameters are required. Returns an error if any of them are
// empty or zero.
func GenerateJWTToken(issuer, userID, role string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || role == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		Role:         role,
	}, nil
}

// ValidateAndParseJWTToken validates the given token string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) and role claim presence
//
// Verification is a pure cryptographic check: it performs no I/O and
// in particular never consults the credential store.
//
// Returns the decoded token or an error if validation fails or a
// required claim is missing.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	if claims.Role != models.RoleUser && claims.Role != models.RoleAdmin {
		return models.Token{}, errors.New("unknown role in token claims")
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		Role:         claims.Role,
	}, nil
}

// ParseBearerToken extracts the token value from a raw
// "Authorization" header of the standard "Bearer <token>" form.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
