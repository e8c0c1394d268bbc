package ports

import (
	"context"

	"github.com/shopcore/ecommerce-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
// Lookups that match nothing return domain.ErrProductNotFound rather than
// a nil record.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindByCategory returns every product in the category, store-defined
	// order. An unknown category yields an empty slice, not an error.
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	// Save inserts the product when its ID is empty (the store assigns one
	// and writes it back) and replaces the stored document otherwise.
	Save(ctx context.Context, p *domain.Product) error
	DeleteByID(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}
