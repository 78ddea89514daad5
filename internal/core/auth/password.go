package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 100_000
	pbkdf2KeyLen     = 32
	saltLen          = 16
)

// HashPassword derives a PBKDF2-SHA256 hash from the password with a fresh
// random salt and returns it in "salt$hash" storage form.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha256.New)

	return base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(hash), nil
}

// VerifyPassword recomputes the hash from the stored "salt$hash" value and
// compares in constant time. Any malformed stored value fails closed.
func VerifyPassword(password, stored string) bool {
	saltStr, hashStr, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltStr)
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(hashStr)
	if err != nil || len(expected) == 0 {
		return false
	}

	hash := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(hash, expected) == 1
}
