package ports

import (
	"context"

	"github.com/shopcore/ecommerce-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted at registration. Enabled is
// not part of the input: new accounts always start enabled. The password
// is stored exactly as received.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the complete set of mutable user fields for a
// full-replace update.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Enabled  bool
}

// UserService defines the user use-case operations.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// Update returns domain.ErrUserNotFound without writing when no record
	// matches id.
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes an existing record and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}
