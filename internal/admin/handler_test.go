// Heftly | 2026
// handler_test.go

package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthrough(next http.Handler) http.Handler {
	return next
}

func setupAdminTest(t *testing.T, cfg HandlerConfig) *chi.Mux {
	t.Helper()
	router := chi.NewRouter()
	NewHandler(cfg).RegisterRoutes(router, passthrough, passthrough)
	return router
}

func TestGetSystemStats(t *testing.T) {
	router := setupAdminTest(t, HandlerConfig{
		DBStats: func() sql.DBStats {
			return sql.DBStats{
				MaxOpenConnections: 25,
				OpenConnections:    3,
				InUse:              1,
				Idle:               2,
				WaitDuration:       50 * time.Millisecond,
			}
		},
		RedisStats: func() *redis.PoolStats {
			return &redis.PoolStats{Hits: 10, TotalConns: 4, IdleConns: 2}
		},
		DBPing:    func(_ context.Context) error { return nil },
		RedisPing: func(_ context.Context) error { return nil },
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body SystemStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Database.Healthy)
	require.NotNil(t, body.Database.Stats)
	assert.Equal(t, 25, body.Database.Stats.MaxOpenConnections)
	assert.Equal(t, 3, body.Database.Stats.OpenConnections)

	assert.True(t, body.Redis.Healthy)
	require.NotNil(t, body.Redis.Stats)
	assert.Equal(t, uint32(10), body.Redis.Stats.Hits)

	assert.NotEmpty(t, body.Runtime.GoVersion)
	assert.Positive(t, body.Runtime.NumCPU)
}

func TestGetSystemStatsUnhealthyDatabase(t *testing.T) {
	router := setupAdminTest(t, HandlerConfig{
		DBPing:    func(_ context.Context) error { return errors.New("down") },
		RedisPing: func(_ context.Context) error { return nil },
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body SystemStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Database.Healthy)
	assert.True(t, body.Redis.Healthy)
	assert.Nil(t, body.Database.Stats)
}

func TestGetRuntimeStats(t *testing.T) {
	router := setupAdminTest(t, HandlerConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(
		rec,
		httptest.NewRequest(http.MethodGet, "/admin/stats/runtime", nil),
	)

	require.Equal(t, http.StatusOK, rec.Code)

	var body RuntimeStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.GoVersion)
	assert.Positive(t, body.NumGoroutine)
}
