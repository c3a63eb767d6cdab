package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT claim set issued by the token service: the
// standard registered claims plus the account role.
//
// The role is trusted as of issuance time and is not re-checked
// against storage on verification. A demoted admin therefore keeps
// admin privileges in already-issued tokens until they expire; this
// is an accepted tradeoff of the stateless session design, not a bug.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the account role embedded at issuance time.
	Role string `json:"role"`
}

// Token wraps a session credential with convenience accessors for
// authentication flows.
//
// SignedString holds the compact serialized form
// (header.payload.signature) ready to be carried in an Authorization
// header or an http-only cookie. UserID and Role are parsed copies of
// the "sub" and "role" claims populated during issuance or
// verification.
type Token struct {
	// Token is the underlying JWT used for signing and claim
	// inspection. Only the compact string form is meaningful outside
	// the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject account id extracted from the "sub" claim.
	UserID string `json:"-"`

	// Role is the account role extracted from the "role" claim.
	Role string `json:"-"`
}

// Identity returns the caller identity the token proves.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.UserID, Role: t.Role}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
