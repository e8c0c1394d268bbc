package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopcore/ecommerce-api/internal/core/domain"
	"github.com/shopcore/ecommerce-api/internal/core/ports"
)

// UserService implements the user CRUD use cases.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// List returns every stored user in store-defined order.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}
	return users, nil
}

// GetByID returns the user or domain.ErrUserNotFound.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByEmail returns the first user with the given email, or
// domain.ErrUserNotFound. No uniqueness is enforced at write time, so
// with duplicate emails the winner is store-defined.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Create persists a new account. Accounts always start enabled, and the
// password is stored exactly as received.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	user := &domain.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		Enabled:  true,
	}

	if err := s.repo.Save(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}

// Update overwrites every mutable field of an existing user (full
// replace, including Enabled). When id matches nothing,
// domain.ErrUserNotFound is returned and nothing is written.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.Email = input.Email
	user.Password = input.Password
	user.Role = input.Role
	user.Enabled = input.Enabled

	if err := s.repo.Save(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")
	return user, nil
}

// Delete removes the user when present and reports whether it existed.
// Absent ids are an idempotent no-op.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to check user existence")
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return false, err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return true, nil
}
