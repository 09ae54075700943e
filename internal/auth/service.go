// Heftly | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heftly/backend/internal/core"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. Callers must not distinguish the two; the login endpoint
// answers identically for either so usernames cannot be probed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserInfo is the slice of a directory record the login flow needs.
type UserInfo struct {
	ID           string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    string
}

type UserProvider interface {
	GetByName(ctx context.Context, name string) (*UserInfo, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type Service struct {
	users UserProvider
	jwt   *JWTManager
}

func NewService(users UserProvider, jwt *JWTManager) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login runs the verification flow: lookup by username, timing-safe
// password check, token issuance. Store or signing faults surface as
// plain errors; everything credential-shaped collapses into
// ErrInvalidCredentials.
func (s *Service) Login(
	ctx context.Context,
	username, password string,
) (string, error) {
	user, err := s.users.GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // burns the same hashing cost as a real verify
			_, _, _ = core.VerifyPasswordTimingSafe(password, nil)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		password,
		&user.PasswordHash,
	)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return "", ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.users.UpdatePassword(ctx, user.ID, newHash)
	}

	token, err := s.jwt.IssueToken(user.ID, user.Role, user.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
