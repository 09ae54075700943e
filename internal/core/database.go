// Heftly | 2026
// database.go

package core

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/heftly/backend/internal/config"
)

type Database struct {
	DB *sqlx.DB
}

// NewDatabase opens the single process-lifetime pool. Every service
// shares it; it is released only at shutdown.
func NewDatabase(
	ctx context.Context,
	cfg config.DatabaseConfig,
) (*Database, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(jitteredDuration(cfg.ConnMaxLifetime))
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close() //nolint:errcheck // cleanup on connection failure
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Bootstrap ensures the users table exists before the first request.
// record_id is the store's own key; id is the client-supplied
// identifier every lookup filters on, so it must be unique or a
// delete by id could take out more than one record; created_at keeps
// the DD.MM.YYYY enrollment date verbatim.
func (d *Database) Bootstrap(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			record_id        UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			id               TEXT NOT NULL UNIQUE,
			name             TEXT NOT NULL UNIQUE,
			role             TEXT NOT NULL,
			password_hash    TEXT NOT NULL,
			department       TEXT NOT NULL DEFAULT '',
			assigned_trainer TEXT NOT NULL DEFAULT '',
			created_at       TEXT NOT NULL
		)`

	if _, err := d.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("bootstrap users table: %w", err)
	}

	return nil
}

func (d *Database) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

func (d *Database) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.DB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

func (d *Database) Stats() sql.DBStats {
	return d.DB.Stats()
}

type DBTX interface {
	sqlx.ExtContext
	sqlx.ExecerContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(
		ctx context.Context,
		dest any,
		query string,
		args ...any,
	) error
}

func jitteredDuration(base time.Duration) time.Duration {
	if base/7 <= 0 {
		return base
	}
	//nolint:gosec // G404: non-security-sensitive jitter for connection pool
	jitter := time.Duration(rand.Int64N(int64(base / 7)))
	return base + jitter
}
