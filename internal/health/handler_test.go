// Heftly | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (c *stubChecker) Ping(_ context.Context) error {
	return c.err
}

func setupHealthTest(t *testing.T, h *Handler) *chi.Mux {
	t.Helper()
	router := chi.NewRouter()
	h.RegisterRoutes(router)
	return router
}

func TestLiveness(t *testing.T) {
	router := setupHealthTest(t, NewHandler())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}

func TestLivenessDuringShutdown(t *testing.T) {
	h := NewHandler()
	h.SetShutdown(true)
	router := setupHealthTest(t, h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "shutting_down", body.Status)
}

func TestReadinessAllHealthy(t *testing.T) {
	h := NewHandler()
	h.AddCheck("database", &stubChecker{})
	h.AddCheck("redis", &stubChecker{})
	router := setupHealthTest(t, h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	require.Len(t, body.Checks, 2)
	assert.True(t, body.Checks[0].Healthy)
	assert.True(t, body.Checks[1].Healthy)
}

func TestReadinessDegradedOnFailingCheck(t *testing.T) {
	h := NewHandler()
	h.AddCheck("database", &stubChecker{})
	h.AddCheck("redis", &stubChecker{err: errors.New("connection refused")})
	router := setupHealthTest(t, h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body ReadinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)

	byName := make(map[string]Check, len(body.Checks))
	for _, check := range body.Checks {
		byName[check.Name] = check
	}
	assert.True(t, byName["database"].Healthy)
	assert.False(t, byName["redis"].Healthy)
	assert.Equal(t, "ping failed", byName["redis"].Message)
}

func TestReadinessNotReady(t *testing.T) {
	h := NewHandler()
	h.SetReady(false)
	router := setupHealthTest(t, h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_ready", body.Status)
}
