// Heftly | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordVerifyRoundtrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	valid, err := VerifyPassword("secret1", hash)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyPassword("secret2", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret1")
	require.NoError(t, err)

	second, err := HashPassword("secret1")
	require.NoError(t, err)

	// Per-record salt: equal passwords never share a digest, but
	// both verify.
	assert.NotEqual(t, first, second)

	for _, hash := range []string{first, second} {
		valid, verifyErr := VerifyPassword("secret1", hash)
		require.NoError(t, verifyErr)
		assert.True(t, valid)
	}
}

func TestVerifyPasswordRejectsGarbageHash(t *testing.T) {
	_, err := VerifyPassword("secret1", "not-a-phc-string")
	assert.Error(t, err)

	_, err = VerifyPassword("secret1", "$bcrypt$v=19$m=1,t=1,p=1$AAAA$BBBB")
	assert.Error(t, err)
}

func TestVerifyPasswordTimingSafeUnknownUser(t *testing.T) {
	valid, newHash, err := VerifyPasswordTimingSafe("whatever", nil)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Empty(t, newHash)

	empty := ""
	valid, newHash, err = VerifyPasswordTimingSafe("whatever", &empty)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Empty(t, newHash)
}

func TestVerifyPasswordWithRehashCurrentParams(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	valid, newHash, err := VerifyPasswordWithRehash("secret1", hash)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Empty(t, newHash, "fresh digest must not trigger a rehash")
}
