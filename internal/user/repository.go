// Heftly | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heftly/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, name, role, password_hash, department,
		                   assigned_trainer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING record_id`

	err := r.db.GetContext(ctx, &user.RecordID, query,
		user.ID,
		user.Name,
		user.Role,
		user.PasswordHash,
		user.Department,
		user.AssignedTrainer,
		user.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByID resolves the client-supplied id field, never record_id.
func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT record_id, id, name, role, password_hash, department,
		       assigned_trainer, created_at
		FROM users
		WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByName(
	ctx context.Context,
	name string,
) (*User, error) {
	query := `
		SELECT record_id, id, name, role, password_hash, department,
		       assigned_trainer, created_at
		FROM users
		WHERE name = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by name: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by name: %w", err)
	}

	return &user, nil
}

func (r *repository) ExistsByName(
	ctx context.Context,
	name string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE name = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, fmt.Errorf("check name exists: %w", err)
	}

	return exists, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := `
		SELECT record_id, id, name, role, password_hash, department,
		       assigned_trainer, created_at
		FROM users
		ORDER BY name`

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) Update(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET name = $2, role = $3, password_hash = $4, department = $5,
		    assigned_trainer = $6
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Role,
		user.PasswordHash,
		user.Department,
		user.AssignedTrainer,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("update user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

// Delete removes the single record whose id field matches.
func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete user: %w", core.ErrNotFound)
	}

	return nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
