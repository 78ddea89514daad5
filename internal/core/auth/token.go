package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// MintToken produces an opaque session token: a hex-encoded SHA-256 over
// the user id, 16 random bytes, the current time and the process secret.
// The hash makes the token non-reversible; the random component makes it
// unguessable even with a known secret.
func MintToken(userID int64, secret string) (string, error) {
	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate token nonce: %w", err)
	}

	raw := fmt.Sprintf("%d:%s:%d:%s", userID, hex.EncodeToString(nonce), time.Now().UnixNano(), secret)
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:]), nil
}
