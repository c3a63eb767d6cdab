package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied to every stored password hash.
const bcryptCost = 10

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hashed), nil
}

// ComparePassword checks a plaintext password against a stored bcrypt
// hash. Returns true only on an exact match.
func ComparePassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// RandomPlaceholderPassword returns a bcrypt hash of 32 random bytes.
//
// Federated accounts structurally require a password hash but must
// never be able to sign in locally; the random input is discarded
// immediately and never disclosed, so no plaintext can ever satisfy
// the comparison.
func RandomPlaceholderPassword() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating placeholder password: %w", err)
	}
	return HashPassword(hex.EncodeToString(buf))
}

// GravatarURL returns the default identicon avatar URL for an e-mail
// address.
func GravatarURL(email string) string {
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=identicon", email)
}
