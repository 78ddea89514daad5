package auth

import (
	"encoding/hex"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintToken_OpaqueHex(t *testing.T) {
	token, err := MintToken(42, "test-secret")
	require.NoError(t, err)

	assert.Len(t, token, 64, "sha256 hex digest")
	_, err = hex.DecodeString(token)
	assert.NoError(t, err)
}

func TestMintToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := MintToken(1, "test-secret")
		require.NoError(t, err)
		assert.False(t, seen[token], "tokens must never repeat")
		seen[token] = true
	}
}

func TestMintToken_NoRecoverableUserData(t *testing.T) {
	const userID = 987654321

	token, err := MintToken(userID, "test-secret")
	require.NoError(t, err)

	assert.False(t, strings.Contains(token, strconv.Itoa(userID)),
		"token must not embed the user id")
	assert.False(t, strings.Contains(token, "test-secret"),
		"token must not embed the secret")
}
