package models

import "time"

// Account roles. The set is closed; anything else is rejected at the
// validation boundary.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity providers an account can be linked to.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User represents an account entity used for authentication and
// authorization, local or federated.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the account (UUID string).
	UserID string `json:"id"`

	// Username is the unique handle, 3-20 characters,
	// case-insensitively unique.
	Username string `json:"username"`

	// Email is the unique, lowercase-normalized e-mail address.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the account password.
	// Federated accounts carry a random, undisclosed placeholder hash.
	// Never serialized in any response.
	Password string `json:"-"`

	// ProfilePicture is a URL to the account avatar.
	ProfilePicture string `json:"profilePicture"`

	// Role is either RoleUser or RoleAdmin.
	Role string `json:"role"`

	// GoogleID is the federated provider subject id. Empty for local
	// accounts; the store persists it as NULL so uniqueness applies
	// only to accounts that actually have one.
	GoogleID string `json:"-"`

	// AuthProvider is ProviderLocal or ProviderGoogle.
	AuthProvider string `json:"authProvider"`

	// IsActive gates authentication: a deactivated account is rejected
	// at sign-in time regardless of credential validity.
	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity is the verified caller identity attached to a request
// context after token verification: exactly the claims the token
// carries, nothing re-fetched from storage.
type Identity struct {
	UserID string
	Role   string
}

// UserUpdate is a presence-aware patch for account self-service
// updates. A nil field means "leave unchanged".
type UserUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Empty reports whether the patch carries no fields at all.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.Password == nil
}

// GoogleProfile is an externally-verified federated identity profile.
// Email is mandatory; its absence is a hard resolution failure.
type GoogleProfile struct {
	GoogleID string `json:"googleId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"photoUrl"`
}
