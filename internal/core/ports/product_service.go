package ports

import (
	"context"

	"github.com/shopcore/ecommerce-api/internal/core/domain"
)

// CreateProductInput carries the fields accepted when creating a product.
// Values are taken as given; nothing is validated at this layer.
type CreateProductInput struct {
	Name        string
	Description string
	Price       int
	Quantity    int
	Category    string
}

// UpdateProductInput carries the complete set of mutable product fields.
// An update is a full replace: every field overwrites the stored value,
// including zero values.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       int
	Quantity    int
	Category    string
}

// ProductService defines the product use-case operations.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	// Update returns domain.ErrProductNotFound without writing when no
	// record matches id.
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	// Delete reports whether the record existed. Deleting an absent id is
	// a no-op, not an error.
	Delete(ctx context.Context, id string) (bool, error)
}
