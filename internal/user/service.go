// Heftly | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heftly/backend/internal/auth"
	"github.com/heftly/backend/internal/core"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the candidate against the directory invariants,
// hashes the password, stamps the enrollment date and persists. The
// uniqueness checks run first so a taken name or id never mutates
// state.
func (s *Service) Create(
	ctx context.Context,
	req CreateUserRequest,
) (*User, error) {
	if !ValidRole(req.Role) {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, core.ErrInvalidInput)
	}

	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("create user %q: %w", req.Name, core.ErrDuplicateKey)
	}

	// id is the key every later lookup filters on; a collision would
	// make update and delete ambiguous.
	if _, err := s.repo.GetByID(ctx, req.ID); err == nil {
		return nil, fmt.Errorf("create user: id %q taken: %w", req.ID, core.ErrDuplicateKey)
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	user := &User{
		ID:              req.ID,
		Name:            req.Name,
		Role:            req.Role,
		Department:      req.Department,
		AssignedTrainer: req.AssignedTrainer,
	}

	// assignedTrainer carries no meaning outside the trainee role.
	if !user.IsTrainee() {
		user.AssignedTrainer = ""
	}

	if err := s.checkTraineeInvariant(ctx, user); err != nil {
		return nil, err
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = passwordHash

	user.CreatedAt = s.now().Format(CreatedAtLayout)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Update merges the patch into the record matching the client id.
// A password in the patch is always routed through the hasher; the
// source wrote plaintext patches verbatim, which this deliberately
// does not replicate.
func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.AssignedTrainer != nil {
		user.AssignedTrainer = *req.AssignedTrainer
	}
	if !ValidRole(user.Role) {
		return nil, fmt.Errorf("unknown role %q: %w", user.Role, core.ErrInvalidInput)
	}
	if !user.IsTrainee() {
		user.AssignedTrainer = ""
	}

	if req.Password != nil && *req.Password != "" {
		passwordHash, hashErr := core.HashPassword(*req.Password)
		if hashErr != nil {
			return nil, fmt.Errorf("hash password: %w", hashErr)
		}
		user.PasswordHash = passwordHash
	}

	if err := s.checkTraineeInvariant(ctx, user); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// checkTraineeInvariant enforces that a trainee references exactly
// one existing trainer. The check and the following write are not
// transactional; the store guarantees per-row atomicity only.
func (s *Service) checkTraineeInvariant(ctx context.Context, user *User) error {
	if !user.IsTrainee() {
		return nil
	}

	if user.AssignedTrainer == "" {
		return fmt.Errorf(
			"trainee %q requires an assigned trainer: %w",
			user.Name,
			core.ErrInvalidInput,
		)
	}

	trainer, err := s.repo.GetByID(ctx, user.AssignedTrainer)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf(
				"assigned trainer %q does not exist: %w",
				user.AssignedTrainer,
				core.ErrInvalidInput,
			)
		}
		return err
	}

	if !trainer.IsTrainer() {
		return fmt.Errorf(
			"assigned trainer %q has role %q: %w",
			user.AssignedTrainer,
			trainer.Role,
			core.ErrInvalidInput,
		)
	}

	return nil
}

// GetByName hands the login flow the credential slice it verifies
// against.
func (s *Service) GetByName(
	ctx context.Context,
	name string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return &auth.UserInfo{
		ID:           user.ID,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
	}, nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, id, passwordHash)
}

var _ auth.UserProvider = (*Service)(nil)
