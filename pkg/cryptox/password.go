package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. The digest must stay deterministic for a given
// (password, salt) pair, so the salt is the only per-user variable.
const (
	iterations = 4096
	keyLength  = 32
)

// HashPassword derives a hex digest from the password keyed by salt using
// PBKDF2-HMAC-SHA256. Same inputs always produce the same digest; callers
// must pair every hash with a salt from NewSalt.
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword recomputes the digest and compares in constant time.
func VerifyPassword(password, storedDigest, salt string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDigest)) == 1
}

// NewSalt returns a fresh random salt. A salt is generated on every account
// creation and every password change; it is never shared between users or
// password generations.
func NewSalt() string {
	return uuid.NewString()
}

// GeneratePassword returns a random alphanumeric password for admin-driven
// resets.
func GeneratePassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 12
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}
