// Heftly | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/heftly/backend/internal/config"
	"github.com/heftly/backend/internal/core"
	"github.com/heftly/backend/internal/middleware"
)

// JWTManager mints and verifies the portal's access tokens. A token
// asserts exactly three claims - subjectId, role, enrollmentDate -
// is signed with the server secret, and expires two hours after
// issuance. There is no revocation state: validity is a pure
// function of the token bytes and the clock.
type JWTManager struct {
	key    jwk.Key
	config config.JWTConfig
}

func NewJWTManager(cfg config.JWTConfig) (*JWTManager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}

	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &JWTManager{key: key, config: cfg}, nil
}

func (m *JWTManager) IssueToken(
	subjectID, role, enrollmentDate string,
) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		Issuer(m.config.Issuer).
		Subject(subjectID).
		IssuedAt(now).
		Expiration(now.Add(m.config.TokenExpire)).
		Claim("subjectId", subjectID).
		Claim("role", role).
		Claim("enrollmentDate", enrollmentDate).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

// VerifyToken decodes a token and distinguishes the three failure
// modes: malformed bytes, a bad signature, and expiry.
func (m *JWTManager) VerifyToken(
	ctx context.Context,
	tokenString string,
) (*middleware.TokenClaims, error) {
	if _, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithVerify(false),
		jwt.WithValidate(false),
	); err != nil {
		return nil, fmt.Errorf("parse token: %w", core.ErrTokenMalformed)
	}

	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	var subjectID string
	if err := token.Get("subjectId", &subjectID); err != nil || subjectID == "" {
		return nil, fmt.Errorf(
			"verify token: missing subjectId claim: %w",
			core.ErrTokenInvalid,
		)
	}

	var role string
	if err := token.Get("role", &role); err != nil {
		return nil, fmt.Errorf(
			"verify token: missing role claim: %w",
			core.ErrTokenInvalid,
		)
	}

	var enrollmentDate string
	if err := token.Get("enrollmentDate", &enrollmentDate); err != nil {
		return nil, fmt.Errorf(
			"verify token: missing enrollmentDate claim: %w",
			core.ErrTokenInvalid,
		)
	}

	return &middleware.TokenClaims{
		SubjectID:      subjectID,
		Role:           role,
		EnrollmentDate: enrollmentDate,
	}, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}

var _ middleware.TokenVerifier = (*JWTManager)(nil)
