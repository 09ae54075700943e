// Heftly | 2026
// jwt_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heftly/backend/internal/config"
	"github.com/heftly/backend/internal/core"
)

func testJWTConfig(expire time.Duration) config.JWTConfig {
	return config.JWTConfig{
		Secret:      "test-secret",
		TokenExpire: expire,
		Issuer:      "heftly-test",
	}
}

func TestIssueVerifyRoundtrip(t *testing.T) {
	manager, err := NewJWTManager(testJWTConfig(2 * time.Hour))
	require.NoError(t, err)

	token, err := manager.IssueToken("42", "trainee", "01.09.2023")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.SubjectID)
	assert.Equal(t, "trainee", claims.Role)
	assert.Equal(t, "01.09.2023", claims.EnrollmentDate)
}

func TestVerifyTokenJustBeforeExpiry(t *testing.T) {
	manager, err := NewJWTManager(testJWTConfig(2 * time.Second))
	require.NoError(t, err)

	token, err := manager.IssueToken("42", "trainer", "15.01.2022")
	require.NoError(t, err)

	claims, err := manager.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "trainer", claims.Role)
}

func TestVerifyTokenExpired(t *testing.T) {
	manager, err := NewJWTManager(testJWTConfig(-time.Minute))
	require.NoError(t, err)

	token, err := manager.IssueToken("42", "trainee", "01.09.2023")
	require.NoError(t, err)

	_, err = manager.VerifyToken(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer, err := NewJWTManager(testJWTConfig(2 * time.Hour))
	require.NoError(t, err)

	verifier, err := NewJWTManager(config.JWTConfig{
		Secret:      "a-different-secret",
		TokenExpire: 2 * time.Hour,
		Issuer:      "heftly-test",
	})
	require.NoError(t, err)

	token, err := issuer.IssueToken("42", "admin", "01.01.2020")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(context.Background(), token)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyTokenMalformed(t *testing.T) {
	manager, err := NewJWTManager(testJWTConfig(2 * time.Hour))
	require.NoError(t, err)

	for _, garbage := range []string{
		"not-a-token",
		"a.b",
		"",
	} {
		_, verifyErr := manager.VerifyToken(context.Background(), garbage)
		require.Error(t, verifyErr)
		assert.ErrorIs(t, verifyErr, core.ErrTokenMalformed, "input %q", garbage)
	}
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	_, err := NewJWTManager(config.JWTConfig{TokenExpire: time.Hour})
	assert.Error(t, err)
}
