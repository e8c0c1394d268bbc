package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopcore/ecommerce-api/internal/core/domain"
	"github.com/shopcore/ecommerce-api/internal/core/ports"
)

// ProductService implements the product CRUD use cases. It holds no state
// of its own; everything lives in the repository.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// List returns every stored product in store-defined order.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, err
	}
	return products, nil
}

// ListByCategory returns every product in the given category.
func (s *ProductService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list products by category")
		return nil, err
	}
	return products, nil
}

// GetByID returns the product or domain.ErrProductNotFound.
func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new product and returns it with the store-assigned ID.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Category:    input.Category,
	}

	if err := s.repo.Save(ctx, product); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", product.ID).Str("category", product.Category).Msg("product created")
	return product, nil
}

// Update overwrites every mutable field of an existing product. It is a
// full replace, not a merge: supplied zero values win. When id matches
// nothing, domain.ErrProductNotFound is returned and nothing is written.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Quantity = input.Quantity
	product.Category = input.Category

	if err := s.repo.Save(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

// Delete removes the product when present. Absent ids are a no-op
// reported as existed=false, so repeated deletes are idempotent.
func (s *ProductService) Delete(ctx context.Context, id string) (bool, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to check product existence")
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return false, err
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return true, nil
}
