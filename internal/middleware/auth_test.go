// Heftly | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heftly/backend/internal/core"
)

type stubVerifier struct {
	claims *TokenClaims
	err    error
}

func (v *stubVerifier) VerifyToken(
	_ context.Context,
	_ string,
) (*TokenClaims, error) {
	return v.claims, v.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatorMissingToken(t *testing.T) {
	handler := Authenticator(&stubVerifier{})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorExpiredToken(t *testing.T) {
	verifier := &stubVerifier{err: core.ErrTokenExpired}
	handler := Authenticator(verifier)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
}

func TestAuthenticatorMalformedToken(t *testing.T) {
	verifier := &stubVerifier{err: core.ErrTokenMalformed}
	handler := Authenticator(verifier)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatorPopulatesContext(t *testing.T) {
	verifier := &stubVerifier{claims: &TokenClaims{
		SubjectID:      "7",
		Role:           "trainer",
		EnrollmentDate: "15.01.2022",
	}}

	var captured context.Context
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Context()
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticator(verifier)(inner)

	req := httptest.NewRequest(http.MethodGet, "/user/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7", GetUserID(captured))
	assert.Equal(t, "trainer", GetUserRole(captured))
	assert.Equal(t, "15.01.2022", GetEnrollmentDate(captured))
	require.NotNil(t, GetClaims(captured))
	assert.False(t, IsAdmin(captured))
}

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/user/create", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	handler := RequireAdmin(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole("admin"))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminForbidsTrainee(t *testing.T) {
	handler := RequireAdmin(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole("trainee"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdminUnauthenticated(t *testing.T) {
	handler := RequireAdmin(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/user/create", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractToken(t *testing.T) {
	cases := map[string]struct {
		header string
		want   string
	}{
		"bearer":           {"Bearer abc.def.ghi", "abc.def.ghi"},
		"lowercase scheme": {"bearer abc", "abc"},
		"wrong scheme":     {"Basic abc", ""},
		"no header":        {"", ""},
		"scheme only":      {"Bearer", ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			assert.Equal(t, tc.want, ExtractToken(req))
		})
	}
}
