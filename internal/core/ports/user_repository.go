package ports

import (
	"context"

	"github.com/shopcore/ecommerce-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Lookups that match nothing return domain.ErrUserNotFound.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail returns the first account with the given email.
	// Duplicates are possible (no uniqueness constraint); which one wins
	// is store-defined.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Save inserts the user when its ID is empty (the store assigns one
	// and writes it back) and replaces the stored document otherwise.
	Save(ctx context.Context, u *domain.User) error
	DeleteByID(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}
